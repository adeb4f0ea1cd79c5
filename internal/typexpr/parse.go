package typexpr

import (
	"fmt"
	"strings"
	"unicode"
)

// Parse parses an OCaml-like type signature such as
// "int -> 'a list -> string * int option" into a Type.
func Parse(input string) (*Type, error) {
	toks, err := tokenize(input)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if !p.done() {
		return nil, fmt.Errorf("unexpected token %q in type %q", p.peek(), input)
	}
	return t, nil
}

// MustParse parses a signature and panics on error. For tests and fixtures.
func MustParse(input string) *Type {
	t, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return t
}

func tokenize(input string) ([]string, error) {
	var toks []string
	i := 0
	for i < len(input) {
		c := input[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n':
			i++
		case c == '(' || c == ')' || c == ',' || c == '*' || c == '_':
			toks = append(toks, string(c))
			i++
		case c == '-':
			if i+1 >= len(input) || input[i+1] != '>' {
				return nil, fmt.Errorf("stray '-' in type %q", input)
			}
			toks = append(toks, "->")
			i += 2
		case c == '\'' || isIdentStart(rune(c)):
			j := i + 1
			for j < len(input) && isIdentPart(rune(input[j])) {
				j++
			}
			toks = append(toks, input[i:j])
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q in type %q", c, input)
		}
	}
	return toks, nil
}

func isIdentStart(r rune) bool {
	return unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' || r == '.' || r == '\''
}

type parser struct {
	toks []string
	pos  int
}

func (p *parser) done() bool { return p.pos >= len(p.toks) }

func (p *parser) peek() string {
	if p.done() {
		return ""
	}
	return p.toks[p.pos]
}

func (p *parser) next() string {
	t := p.peek()
	p.pos++
	return t
}

// parseType := tuple ( "->" type )?
func (p *parser) parseType() (*Type, error) {
	left, err := p.parseTuple()
	if err != nil {
		return nil, err
	}
	if p.peek() == "->" {
		p.next()
		right, err := p.parseType()
		if err != nil {
			return nil, err
		}
		return Arrow(left, right), nil
	}
	return left, nil
}

// parseTuple := app ( "*" app )*
func (p *parser) parseTuple() (*Type, error) {
	first, err := p.parseApp()
	if err != nil {
		return nil, err
	}
	elems := []*Type{first}
	for p.peek() == "*" {
		p.next()
		e, err := p.parseApp()
		if err != nil {
			return nil, err
		}
		elems = append(elems, e)
	}
	if len(elems) == 1 {
		return first, nil
	}
	return Tuple(elems...), nil
}

// parseApp := atom ident*
// Postfix idents apply constructors: "int list option".
func (p *parser) parseApp() (*Type, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	result := atom
	for isIdent(p.peek()) {
		name := p.next()
		if grp, ok := result.(argGroup); ok {
			result = single{Constr(name, grp...)}
		} else {
			result = single{Constr(name, result.(single).t)}
		}
	}
	switch r := result.(type) {
	case single:
		return r.t, nil
	case argGroup:
		if len(r) == 1 {
			return r[0], nil
		}
		// A bare parenthesized group with no constructor: treat as tuple.
		return Tuple(r...), nil
	}
	return nil, fmt.Errorf("internal: unhandled parse result")
}

// atomResult distinguishes a single type from a parenthesized argument group
// "(a, b)" awaiting a constructor name.
type atomResult interface{ isAtomResult() }

type single struct{ t *Type }

func (single) isAtomResult() {}

type argGroup []*Type

func (argGroup) isAtomResult() {}

// parseAtom := "_" | "'" ident | ident | "(" type ("," type)* ")"
func (p *parser) parseAtom() (atomResult, error) {
	tok := p.peek()
	switch {
	case tok == "":
		return nil, fmt.Errorf("unexpected end of type")
	case tok == "_":
		p.next()
		return single{Any()}, nil
	case strings.HasPrefix(tok, "'"):
		p.next()
		return single{Var(strings.TrimPrefix(tok, "'"))}, nil
	case tok == "(":
		p.next()
		var elems []*Type
		for {
			t, err := p.parseType()
			if err != nil {
				return nil, err
			}
			elems = append(elems, t)
			if p.peek() != "," {
				break
			}
			p.next()
		}
		if p.next() != ")" {
			return nil, fmt.Errorf("missing closing parenthesis")
		}
		if len(elems) == 1 {
			return single{elems[0]}, nil
		}
		return argGroup(elems), nil
	case isIdent(tok):
		p.next()
		return single{Constr(tok)}, nil
	default:
		return nil, fmt.Errorf("unexpected token %q", tok)
	}
}

func isIdent(tok string) bool {
	if tok == "" || tok == "_" || strings.HasPrefix(tok, "'") {
		return false
	}
	return isIdentStart(rune(tok[0]))
}
