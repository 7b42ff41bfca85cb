package codec

import (
	"fmt"
	"io"

	"github.com/agentstation/gamemage/pkg/catalogs"
	"github.com/agentstation/gamemage/pkg/constants"
	"github.com/agentstation/gamemage/pkg/errors"
)

// Report describes what a lenient decode kept and what it dropped.
type Report struct {
	Decoded int
	Skipped []Skip
}

// Skip records one object that could not be decoded.
type Skip struct {
	Offset int
	Err    error
}

// Clean reports whether every object in the document was decoded.
func (r Report) Clean() bool {
	return len(r.Skipped) == 0
}

// String summarizes the report.
func (r Report) String() string {
	return fmt.Sprintf("%d decoded, %d skipped", r.Decoded, len(r.Skipped))
}

// Decode extracts entries from a document. Objects found at the top level or
// directly inside the top-level array become entries in document order. An
// object that cannot be parsed is skipped and recorded in the report; the
// scan resumes after its closing brace. Decode never fails.
func Decode(data []byte) ([]catalogs.Entry, *Report) {
	d := &decoder{data: data, lex: newLexer(data), report: &Report{Skipped: []Skip{}}}
	return d.decode(), d.report
}

// Load reads the whole document from r and decodes it.
func Load(r io.Reader) ([]catalogs.Entry, *Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return []catalogs.Entry{}, &Report{Skipped: []Skip{}}, errors.NewIOError("read", "", err)
	}
	entries, report := Decode(data)
	return entries, report, nil
}

type decoder struct {
	data   []byte
	lex    *lexer
	report *Report
}

func (d *decoder) decode() []catalogs.Entry {
	entries := []catalogs.Entry{}
	// containers open outside of entry objects
	var open []tokenType

	for {
		tok := d.lex.next()
		switch tok.typ {
		case tokenEOF:
			d.report.Decoded = len(entries)
			return entries
		case tokenLBrace:
			if len(open) == 0 || (len(open) == 1 && open[0] == tokenLBracket) {
				if entry, ok := d.decodeEntry(tok.pos); ok {
					entries = append(entries, entry)
				}
				continue
			}
			open = append(open, tok.typ)
		case tokenLBracket:
			open = append(open, tok.typ)
		case tokenRBrace, tokenRBracket:
			if len(open) > 0 {
				open = open[:len(open)-1]
			}
		}
	}
}

// decodeEntry parses the object opening at start and leaves the lexer just
// past it. On failure it records a skip and resynchronizes.
func (d *decoder) decodeEntry(start int) (catalogs.Entry, bool) {
	d.lex.seek(start)
	p := newParser(d.lex, constants.MaxDepth)
	v, err := p.parseValue(0)
	if err == nil {
		d.lex.seek(p.end)
		return entryFromValue(v), true
	}

	d.report.Skipped = append(d.report.Skipped, Skip{Offset: start, Err: err})

	resume := matchingBrace(d.data, start)
	if resume < 0 {
		// never closed: continue from where parsing broke down
		resume = start + 1
		var pErr *errors.ParseError
		if errors.As(err, &pErr) && pErr.Offset > start {
			resume = pErr.Offset
		}
	}
	d.lex.seek(resume)
	return catalogs.Entry{}, false
}

// entryFromValue extracts each known field independently. A field of the
// wrong kind is treated as absent.
func entryFromValue(v Value) catalogs.Entry {
	return catalogs.Entry{
		Title:           lookupText(v, fieldTitle),
		Developer:       lookupText(v, fieldDeveloper),
		Publisher:       lookupText(v, fieldPublisher),
		Genres:          lookupStrings(v, fieldGenres),
		Platforms:       lookupStrings(v, fieldPlatforms),
		Translators:     lookupStrings(v, fieldTranslators),
		SteamID:         lookupInt(v, fieldSteamID),
		ReleaseYear:     lookupInt(v, fieldReleaseYear),
		Language:        lookupText(v, fieldLanguage),
		Rating:          lookupFloat(v, fieldRating),
		Tags:            lookupStrings(v, fieldTags),
		CoverImagePath:  lookupText(v, fieldCoverImagePath),
		DescriptionPath: lookupText(v, fieldDescriptionPath),
	}
}

func lookupText(obj Value, key string) *string {
	if f, ok := obj.Lookup(key); ok {
		if s, ok := f.Text(); ok {
			return &s
		}
	}
	return nil
}

func lookupInt(obj Value, key string) *int {
	if f, ok := obj.Lookup(key); ok {
		if n, ok := f.Int(); ok {
			return &n
		}
	}
	return nil
}

func lookupFloat(obj Value, key string) *float64 {
	if f, ok := obj.Lookup(key); ok {
		if n, ok := f.Float(); ok {
			return &n
		}
	}
	return nil
}

func lookupStrings(obj Value, key string) []string {
	if f, ok := obj.Lookup(key); ok {
		return f.Strings()
	}
	return []string{}
}
