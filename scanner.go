package args

// scanner splits the input into the fields between separators.
type scanner struct {
	src string

	pos int    // offset of the next unread byte
	beg int    // offset of the current field
	lit string // text of the current field
}

func newScanner(src string) *scanner {
	return &scanner{
		src: src,
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// eof reports whether all of the input has been read.
func (sc *scanner) eof() bool {
	return sc.pos >= len(sc.src)
}

// next reads the field starting at the current offset up to, but excluding,
// the next separator or the end of input.
func (sc *scanner) next() {
	sc.beg = sc.pos

	for sc.pos < len(sc.src) && sc.src[sc.pos] != ',' {
		sc.pos++
	}
	sc.lit = sc.src[sc.beg:sc.pos]
}

// skip consumes the separator that ended the current field.
func (sc *scanner) skip() {
	if sc.pos < len(sc.src) {
		sc.pos++
	}
}

// rest returns the input that has not been read, excluding a leading
// separator. A lone trailing separator is returned as is.
func (sc *scanner) rest() string {
	rest := sc.src[sc.pos:]

	if len(rest) > 1 && rest[0] == ',' {
		rest = rest[1:]
	}
	return rest
}
