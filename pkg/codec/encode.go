package codec

import (
	"bytes"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/agentstation/gamemage/pkg/catalogs"
	"github.com/agentstation/gamemage/pkg/errors"
)

// Field names of the backing document, in canonical order.
const (
	fieldTitle           = "title"
	fieldDeveloper       = "developer"
	fieldPublisher       = "publisher"
	fieldGenres          = "genres"
	fieldPlatforms       = "platforms"
	fieldTranslators     = "translators"
	fieldSteamID         = "steamId"
	fieldReleaseYear     = "releaseYear"
	fieldLanguage        = "language"
	fieldRating          = "rating"
	fieldTags            = "tags"
	fieldCoverImagePath  = "coverImagePath"
	fieldDescriptionPath = "descriptionPath"
)

// FieldOrder lists the document fields in the order Encode writes them.
var FieldOrder = []string{
	fieldTitle, fieldDeveloper, fieldPublisher,
	fieldGenres, fieldPlatforms, fieldTranslators,
	fieldSteamID, fieldReleaseYear, fieldLanguage, fieldRating,
	fieldTags, fieldCoverImagePath, fieldDescriptionPath,
}

const (
	entryIndent = "  "
	fieldIndent = "    "
)

// Encode serializes entries into the canonical document. The output is
// deterministic: equal inputs produce byte-identical documents.
func Encode(entries []catalogs.Entry) []byte {
	if len(entries) == 0 {
		return []byte("[]")
	}

	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i, e := range entries {
		if i > 0 {
			buf.WriteString(",\n")
		}
		encodeEntry(&buf, e)
	}
	buf.WriteString("\n]")
	return buf.Bytes()
}

// Write streams the canonical document for entries to w.
func Write(w io.Writer, entries []catalogs.Entry) error {
	if _, err := w.Write(Encode(entries)); err != nil {
		return errors.NewIOError("write", "", err)
	}
	return nil
}

func encodeEntry(buf *bytes.Buffer, e catalogs.Entry) {
	values := []string{
		encodeText(e.Title),
		encodeText(e.Developer),
		encodeText(e.Publisher),
		encodeList(e.Genres),
		encodeList(e.Platforms),
		encodeList(e.Translators),
		encodeInt(e.SteamID),
		encodeInt(e.ReleaseYear),
		encodeText(e.Language),
		encodeRating(e.Rating),
		encodeList(e.Tags),
		encodeText(e.CoverImagePath),
		encodeText(e.DescriptionPath),
	}

	buf.WriteString(entryIndent + "{\n")
	for i, key := range FieldOrder {
		buf.WriteString(fieldIndent)
		buf.WriteString(quote(key))
		buf.WriteString(" : ")
		buf.WriteString(values[i])
		if i < len(FieldOrder)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteString(entryIndent + "}")
}

func encodeText(s *string) string {
	if s == nil {
		return "null"
	}
	return quote(*s)
}

func encodeInt(n *int) string {
	if n == nil {
		return "null"
	}
	return strconv.Itoa(*n)
}

// encodeRating always writes a fractional part so 8 reads back as a real.
func encodeRating(r *float64) string {
	if r == nil || math.IsNaN(*r) || math.IsInf(*r, 0) {
		return "null"
	}
	s := strconv.FormatFloat(*r, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

func encodeList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = quote(item)
	}
	return "[ " + strings.Join(quoted, ", ") + " ]"
}

const hexDigits = "0123456789abcdef"

// quote writes s as a string literal, escaping quotes, backslashes and
// control characters.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if c < 0x20 {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[c>>4])
				b.WriteByte(hexDigits[c&0xF])
				continue
			}
			b.WriteByte(c)
		}
	}
	b.WriteByte('"')
	return b.String()
}
