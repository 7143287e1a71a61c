package args

// Option is a callback that is used to modify the behaviour of a Parser.
type Option func(p *Parser) *Parser

// ErrorHandler configures a handler that is called with the position and
// message of each failed parse.
func ErrorHandler(errh func(arg int, msg string)) Option {
	return func(p *Parser) *Parser {
		p.errh = errh
		return p
	}
}

// Parser builds argument lists from text. A Parser holds no state between
// calls and is safe for concurrent use.
type Parser struct {
	errh func(arg int, msg string)
}

// NewParser returns a new parser configured with the given options.
func NewParser(opts ...Option) *Parser {
	p := &Parser{}

	for _, opt := range opts {
		p = opt(p)
	}
	return p
}

var defaultParser = NewParser()

// Parse parses the comma separated arguments in s against the packed
// descriptor m.
func Parse(s string, m Mask) (*List, error) {
	return defaultParser.Parse(s, m.Decode())
}

// ParseMask is like Parse but uses the parser's configuration.
func (p *Parser) ParseMask(s string, m Mask) (*List, error) {
	return p.Parse(s, m.Decode())
}

// Parse parses the comma separated arguments in s against the descriptor d.
// Fields are not trimmed, and an empty field is passed on to the conversion
// for its position. On success the returned list holds d.Max()+1 arguments,
// of which the first N are filled. Positions between N and d.Max() are
// optional arguments that were not given. As with a Mask, the positions
// end at the first Stop type or after MaxArgs positions.
func (p *Parser) Parse(s string, d Descriptor) (*List, error) {
	d.Types = d.positions()
	max := d.Max()

	// Without positions any input is accepted and none of it is parsed.
	if max == 0 || (s == "" && d.Min == 0) {
		return &List{End: len(s)}, nil
	}

	sc := newScanner(s)

	// An empty input holds no argument at all, rather than a single empty
	// one.
	if s == "" {
		return nil, p.fail(&Error{
			Code: CodeMissing,
			Type: d.TypeAt(0),
			Min:  d.Min,
		})
	}

	args := make([]Arg, max+1)
	pos := 0

	for pos < max {
		sc.next()

		typ := d.Types[pos]
		conv, ok := convtab[typ]

		if !ok {
			return nil, p.fail(&Error{
				Code:   CodeConversion,
				Arg:    pos,
				Offset: sc.pos,
				Field:  sc.lit,
				Type:   typ,
			})
		}

		arg, err := conv(sc.lit)

		if err != nil {
			code := CodeConversion

			if err == errUnsupported {
				code = CodeUnsupported
			}

			return nil, p.fail(&Error{
				Code:   code,
				Arg:    pos,
				Offset: sc.pos,
				Field:  sc.lit,
				Type:   typ,
				Err:    err,
			})
		}

		args[pos] = arg
		pos++

		if sc.eof() || pos >= max {
			break
		}
		sc.skip()
	}

	if pos < d.Min {
		return nil, p.fail(&Error{
			Code:   CodeMissing,
			Arg:    pos,
			Offset: sc.pos,
			Type:   d.TypeAt(pos),
			Min:    d.Min,
		})
	}

	if !sc.eof() {
		return nil, p.fail(&Error{
			Code:   CodeTooMany,
			Arg:    pos,
			Offset: sc.pos,
			Field:  sc.rest(),
			Type:   Stop,
		})
	}

	return &List{
		Args: args,
		N:    pos,
		End:  sc.pos,
	}, nil
}

func (p *Parser) fail(err *Error) error {
	if p.errh != nil {
		p.errh(err.Arg, err.Error())
	}
	return err
}
