package args

import (
	"errors"
	"math"
	"math/bits"
	"net/netip"
	"strconv"
	"strings"
	"time"
)

var (
	errEmpty       = errors.New("empty value")
	errSign        = errors.New("invalid sign")
	errRange       = errors.New("value out of range")
	errNotIPv4     = errors.New("not an IPv4 address")
	errNotIPv6     = errors.New("not an IPv6 address")
	errUnsupported = errors.New("conversion not implemented")
)

var (
	sizb  uint64 = 1
	sizkb uint64 = sizb << 10
	sizmb uint64 = sizkb << 10
	sizgb uint64 = sizmb << 10
	siztb uint64 = sizgb << 10

	siztab = map[string]uint64{
		"":   sizb,
		"B":  sizb,
		"K":  sizkb,
		"KB": sizkb,
		"M":  sizmb,
		"MB": sizmb,
		"G":  sizgb,
		"GB": sizgb,
		"T":  siztb,
		"TB": siztb,
	}

	timetab = map[string]time.Duration{
		"":   time.Millisecond,
		"us": time.Microsecond,
		"ms": time.Millisecond,
		"s":  time.Second,
		"m":  time.Minute,
		"h":  time.Hour,
		"d":  24 * time.Hour,
	}
)

type convertFunc func(s string) (Arg, error)

var convtab map[Type]convertFunc

func init() {
	convtab = map[Type]convertFunc{
		UInt:     convertUint,
		SInt:     convertSint,
		Str:      convertStr(Str),
		IPv4:     convertIPv4,
		Msk4:     convertMsk4,
		IPv6:     convertIPv6,
		Msk6:     convertMsk6,
		Time:     convertTime,
		Size:     convertSize,
		Frontend: convertStr(Frontend),
		Backend:  convertStr(Backend),
		Table:    convertStr(Table),
		Server:   convertStr(Server),
		UserList: convertStr(UserList),
	}
}

// parseUint parses a string made only of decimal digits.
func parseUint(s string) (uint64, error) {
	if s == "" {
		return 0, errEmpty
	}

	// ParseUint would accept a leading sign.
	if !isDigit(rune(s[0])) {
		return 0, strconv.ErrSyntax
	}
	return strconv.ParseUint(s, 10, 64)
}

// splitUnit splits s into its leading digits and the unit that follows.
func splitUnit(s string) (uint64, string, error) {
	i := 0

	for i < len(s) && isDigit(rune(s[i])) {
		i++
	}

	if i == 0 {
		return 0, "", strconv.ErrSyntax
	}

	n, err := strconv.ParseUint(s[:i], 10, 64)

	if err != nil {
		return 0, "", err
	}
	return n, s[i:], nil
}

func convertUint(s string) (Arg, error) {
	n, err := parseUint(s)

	if err != nil {
		return Arg{}, err
	}
	return Arg{Type: UInt, Uint: n}, nil
}

func convertSint(s string) (Arg, error) {
	if s == "" {
		return Arg{}, errEmpty
	}

	if isDigit(rune(s[0])) {
		return convertUint(s)
	}

	sign := s[0]

	if sign != '+' && sign != '-' {
		return Arg{}, errSign
	}

	n, err := parseUint(s[1:])

	if err != nil {
		return Arg{}, err
	}

	if sign == '-' {
		if n > math.MaxInt64+1 {
			return Arg{}, errRange
		}
		return Arg{Type: SInt, Sint: int64(-n)}, nil
	}

	if n > math.MaxInt64 {
		return Arg{}, errRange
	}
	return Arg{Type: SInt, Sint: int64(n)}, nil
}

func convertStr(typ Type) convertFunc {
	return func(s string) (Arg, error) {
		return Arg{Type: typ, Str: s}, nil
	}
}

func convertIPv4(s string) (Arg, error) {
	if s == "" {
		return Arg{}, errEmpty
	}

	addr, err := netip.ParseAddr(s)

	if err != nil {
		return Arg{}, err
	}

	if !addr.Is4() {
		return Arg{}, errNotIPv4
	}
	return Arg{Type: IPv4, Addr: addr}, nil
}

// convertMsk4 accepts either a dotted mask or a prefix length. The result is
// an IPv4 argument holding the mask.
func convertMsk4(s string) (Arg, error) {
	if s == "" {
		return Arg{}, errEmpty
	}

	if strings.IndexByte(s, '.') >= 0 {
		return convertIPv4(s)
	}

	n, err := parseUint(s)

	if err != nil {
		return Arg{}, err
	}

	if n > 32 {
		return Arg{}, errRange
	}

	mask := uint32(0)

	if n > 0 {
		mask = ^uint32(0) << (32 - n)
	}

	var b [4]byte

	b[0] = byte(mask >> 24)
	b[1] = byte(mask >> 16)
	b[2] = byte(mask >> 8)
	b[3] = byte(mask)

	return Arg{Type: IPv4, Addr: netip.AddrFrom4(b)}, nil
}

func convertIPv6(s string) (Arg, error) {
	if s == "" {
		return Arg{}, errEmpty
	}

	addr, err := netip.ParseAddr(s)

	if err != nil {
		return Arg{}, err
	}

	if !addr.Is6() || addr.Zone() != "" {
		return Arg{}, errNotIPv6
	}
	return Arg{Type: IPv6, Addr: addr}, nil
}

func convertMsk6(string) (Arg, error) {
	return Arg{}, errUnsupported
}

// convertTime parses a delay into milliseconds. A delay without a unit is
// taken as milliseconds, delays below a millisecond are truncated.
func convertTime(s string) (Arg, error) {
	if s == "" {
		return Arg{}, errEmpty
	}

	n, unit, err := splitUnit(s)

	if err != nil {
		return Arg{}, err
	}

	d, ok := timetab[unit]

	if !ok {
		return Arg{}, errors.New("unrecognized delay unit " + unit)
	}

	var ms uint64

	if d < time.Millisecond {
		ms = n / uint64(time.Millisecond/d)
	} else {
		hi, lo := bits.Mul64(n, uint64(d/time.Millisecond))

		if hi != 0 {
			return Arg{}, errRange
		}
		ms = lo
	}
	return Arg{Type: UInt, Uint: ms}, nil
}

// convertSize parses a size into bytes. Units are binary multiples and are
// case insensitive.
func convertSize(s string) (Arg, error) {
	if s == "" {
		return Arg{}, errEmpty
	}

	n, unit, err := splitUnit(s)

	if err != nil {
		return Arg{}, err
	}

	siz, ok := siztab[strings.ToUpper(unit)]

	if !ok {
		return Arg{}, errors.New("unrecognized size unit " + unit)
	}

	hi, lo := bits.Mul64(n, siz)

	if hi != 0 {
		return Arg{}, errRange
	}
	return Arg{Type: UInt, Uint: lo}, nil
}
