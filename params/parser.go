package params

import (
	"strings"

	"github.com/dzonerzy/go-params/internal/fuzzy"
	"github.com/dzonerzy/go-params/internal/intern"
)

// parseState represents the current state of the parser state machine.
type parseState int

const (
	stateScanning parseState = iota
	statePositionalOnly
)

// cursor is the transient per-parse state: the current token index, the
// state machine position, and how many positional descriptors have been
// consumed. Nothing here survives the Parse call.
type cursor struct {
	pos            int
	state          parseState
	nextPositional int
}

// Parse consumes the token stream left to right, classifying each token
// and routing it to the matching descriptor. It is single-pass and
// fail-fast: the first error aborts the scan, leaving any slots written
// before the failing token in place. After the stream is exhausted the
// required-parameter audit runs. A Set must not be shared between
// concurrent Parse calls.
func (s *Set) Parse(tokens []string) error {
	var c cursor

	for c.pos < len(tokens) {
		tok := tokens[c.pos]

		switch {
		case c.state == stateScanning && tok == "--":
			// Terminator: any following tokens are positional, even if
			// they begin with the option marker.
			c.state = statePositionalOnly
			c.pos++

		case c.state == statePositionalOnly || tok == "" || tok == "-" || tok[0] != '-':
			if err := s.parsePositional(&c, tok); err != nil {
				return err
			}

		case len(tok) >= 2 && tok[1] == '-':
			if err := s.parseLong(&c, tokens, tok); err != nil {
				return err
			}

		default:
			if err := s.parseShortCluster(&c, tokens, tok); err != nil {
				return err
			}
		}
	}

	return s.auditRequired()
}

// parsePositional binds a token to the next positional descriptor in
// registration order. Consumption is always a single token.
func (s *Set) parsePositional(c *cursor, tok string) error {
	if c.nextPositional >= len(s.positionals) {
		if s.strict {
			return &ParseError{
				Type:    ErrorTypeConfiguration,
				Message: "unexpected positional argument: " + tok,
			}
		}
		c.pos++
		return nil
	}

	d := s.defs[s.positionals[c.nextPositional]]
	c.nextPositional++

	if err := d.assign(tok); err != nil {
		return err
	}
	c.pos++
	return nil
}

// parseLong handles --name and --name=value tokens. The alias is the part
// left of the first '='. Boolean options ignore any attached text.
func (s *Set) parseLong(c *cursor, tokens []string, tok string) error {
	eq := strings.IndexByte(tok, '=')
	name := tok
	if eq >= 0 {
		name = tok[:eq]
	}

	d, ok := s.Lookup(name)
	if !ok {
		if s.strict {
			return s.unknownOptionError(name)
		}
		c.pos++
		return nil
	}

	if !d.RequiresValue() {
		if err := d.assign(""); err != nil {
			return err
		}
		c.pos++
		return nil
	}

	value, consumed, err := resolveLong(tokens, c.pos, eq, name)
	if err != nil {
		return err
	}
	if err := d.assign(value); err != nil {
		return err
	}
	c.pos += consumed
	return nil
}

// parseShortCluster scans the characters of a -xyz token one by one,
// forming single-character aliases. Boolean matches contribute no extra
// consumption and the scan continues; the first value-consuming match
// terminates the scan, taking either the remainder of the token or the
// following token as its value. The cursor always advances by at least
// the cluster token itself.
func (s *Set) parseShortCluster(c *cursor, tokens []string, tok string) error {
	consumed := 0

	for ci := 1; ci < len(tok); ci++ {
		name := intern.ShortName(tok[ci])

		d, ok := s.Lookup(name)
		if !ok {
			if s.strict {
				return s.unknownOptionError(name)
			}
			continue
		}

		if !d.RequiresValue() {
			if err := d.assign(""); err != nil {
				return err
			}
			continue
		}

		value, n, err := resolveShort(tokens, c.pos, ci, name)
		if err != nil {
			return err
		}
		if err := d.assign(value); err != nil {
			return err
		}
		consumed = n
		break
	}

	if consumed < 1 {
		consumed = 1
	}
	c.pos += consumed
	return nil
}

// unknownOptionError builds a strict-mode error for an unmatched option,
// with a fuzzy-matched suggestion when a registered alias is close.
func (s *Set) unknownOptionError(name string) *ParseError {
	return &ParseError{
		Type:       ErrorTypeUnknownOption,
		Message:    "unknown option: " + name,
		Param:      name,
		Suggestion: fuzzy.FindBestOption(name, s.optionNames(), 2),
	}
}
