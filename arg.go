package args

import (
	"net/netip"
	"strconv"
)

// Arg is a single parsed argument. Which of the value fields is set depends on
// the Type of the argument:
//
//   - UInt sets Uint, this is also the resulting type for Time (milliseconds)
//     and Size (bytes) positions, and for unsigned values given to SInt
//     positions.
//   - SInt sets Sint.
//   - Str and the deferred kinds set Str.
//   - IPv4 and IPv6 set Addr, this is also the resulting type for Msk4
//     positions.
type Arg struct {
	Type Type

	Uint uint64
	Sint int64
	Str  string
	Addr netip.Addr
}

func (a Arg) String() string {
	switch a.Type {
	case UInt:
		return strconv.FormatUint(a.Uint, 10)
	case SInt:
		return strconv.FormatInt(a.Sint, 10)
	case IPv4, IPv6:
		return a.Addr.String()
	case Stop:
		return ""
	}
	return a.Str
}

// List is the result of parsing an argument list.
type List struct {
	// Args holds one argument per position declared by the descriptor
	// followed by a Stop argument. Positions at or beyond N were not supplied
	// and hold the zero Arg. Args is nil if the descriptor declares no
	// positions or if an empty input was accepted.
	Args []Arg

	// N is the number of positions that were filled.
	N int

	// End is the offset of the first byte of input that was not consumed.
	End int
}

// Valid returns the arguments that were filled during parsing.
func (l *List) Valid() []Arg {
	if l == nil || l.Args == nil {
		return nil
	}
	return l.Args[:l.N]
}
