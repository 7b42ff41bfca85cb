package codec

import (
	"fmt"

	"github.com/agentstation/gamemage/pkg/errors"
)

// parser builds a value tree from the token stream, refusing containers
// nested deeper than maxDepth.
type parser struct {
	lex      *lexer
	tok      token
	end      int // offset just past the last consumed token
	maxDepth int
}

func newParser(l *lexer, maxDepth int) *parser {
	p := &parser{lex: l, maxDepth: maxDepth}
	p.advance()
	return p
}

func (p *parser) advance() {
	p.end = p.lex.pos
	p.tok = p.lex.next()
}

func (p *parser) errorf(format string, args ...any) error {
	return errors.NewParseError("json", p.tok.pos, fmt.Sprintf(format, args...))
}

func (p *parser) unexpected(want string) error {
	if p.tok.typ == tokenIllegal {
		return p.errorf("%s", p.tok.value)
	}
	return p.errorf("expected %s, found %s", want, p.tok.typ)
}

// parseValue parses the value at the current token. depth is the number of
// containers already open around it.
func (p *parser) parseValue(depth int) (Value, error) {
	switch p.tok.typ {
	case tokenLBrace:
		return p.parseObject(depth + 1)
	case tokenLBracket:
		return p.parseArray(depth + 1)
	case tokenString:
		v := Value{Kind: KindString, Str: p.tok.value}
		p.advance()
		return v, nil
	case tokenNumber:
		v := Value{Kind: KindNumber, Number: p.tok.value}
		p.advance()
		return v, nil
	case tokenTrue, tokenFalse:
		v := Value{Kind: KindBool, Bool: p.tok.typ == tokenTrue}
		p.advance()
		return v, nil
	case tokenNull:
		p.advance()
		return Value{Kind: KindNull}, nil
	default:
		return Value{}, p.unexpected("value")
	}
}

func (p *parser) checkDepth(depth int) error {
	if p.maxDepth > 0 && depth > p.maxDepth {
		return p.errorf("nesting depth %d exceeds supported depth %d", depth, p.maxDepth)
	}
	return nil
}

func (p *parser) parseObject(depth int) (Value, error) {
	if err := p.checkDepth(depth); err != nil {
		return Value{}, err
	}
	p.advance() // '{'

	obj := Value{Kind: KindObject, Fields: []Field{}}
	if p.tok.typ == tokenRBrace {
		p.advance()
		return obj, nil
	}
	for {
		if p.tok.typ != tokenString {
			return Value{}, p.unexpected("field name")
		}
		key := p.tok.value
		p.advance()

		if p.tok.typ != tokenColon {
			return Value{}, p.unexpected("':'")
		}
		p.advance()

		val, err := p.parseValue(depth)
		if err != nil {
			return Value{}, err
		}
		obj.Fields = append(obj.Fields, Field{Key: key, Value: val})

		switch p.tok.typ {
		case tokenComma:
			p.advance()
		case tokenRBrace:
			p.advance()
			return obj, nil
		default:
			return Value{}, p.unexpected("',' or '}'")
		}
	}
}

func (p *parser) parseArray(depth int) (Value, error) {
	if err := p.checkDepth(depth); err != nil {
		return Value{}, err
	}
	p.advance() // '['

	arr := Value{Kind: KindArray, Items: []Value{}}
	if p.tok.typ == tokenRBracket {
		p.advance()
		return arr, nil
	}
	for {
		val, err := p.parseValue(depth)
		if err != nil {
			return Value{}, err
		}
		arr.Items = append(arr.Items, val)

		switch p.tok.typ {
		case tokenComma:
			p.advance()
		case tokenRBracket:
			p.advance()
			return arr, nil
		default:
			return Value{}, p.unexpected("',' or ']'")
		}
	}
}

// Parse strictly parses data as a single value with unlimited nesting.
func Parse(data []byte) (Value, error) {
	p := newParser(newLexer(data), 0)
	v, err := p.parseValue(0)
	if err != nil {
		return Value{}, err
	}
	if p.tok.typ != tokenEOF {
		return Value{}, p.unexpected("end of input")
	}
	return v, nil
}
