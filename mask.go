package args

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxArgs is the maximum number of positions a Descriptor can declare.
const MaxArgs = 8

// MaxMaskArgs is the maximum number of positions a Mask can declare. The low
// 4 bits of the mask hold the minimum, which leaves room for 7 types.
const MaxMaskArgs = 7

// Mask is a packed descriptor. The low 4 bits hold the number of mandatory
// arguments, and each following group of 4 bits holds the Type expected at
// position 0, 1, 2 and so on. A zero group ends the positions.
type Mask uint32

// Descriptor is the unpacked form of a Mask.
type Descriptor struct {
	Min   int
	Types []Type
}

// MakeMask packs the given minimum and position types into a Mask. It panics
// if more than MaxMaskArgs types are given, or if min does not fit in 4 bits.
func MakeMask(min int, types ...Type) Mask {
	m, err := Descriptor{Min: min, Types: types}.Mask()

	if err != nil {
		panic("args: " + err.Error())
	}
	return m
}

// Decode unpacks the mask.
func (m Mask) Decode() Descriptor {
	d := Descriptor{
		Min: int(m & 0xf),
	}

	m >>= 4

	for i := 0; i < MaxMaskArgs; i++ {
		typ := Type((m >> (i * 4)) & 0xf)

		if typ == Stop {
			break
		}
		d.Types = append(d.Types, typ)
	}
	return d
}

func (m Mask) String() string {
	return fmt.Sprintf("0x%08x", uint32(m))
}

// validate checks the descriptor against the given number of positions.
func (d Descriptor) validate(max int) error {
	if d.Min < 0 || d.Min > 0xf {
		return fmt.Errorf("minimum %d out of range", d.Min)
	}

	if len(d.Types) > max {
		return fmt.Errorf("too many positions %d, at most %d supported", len(d.Types), max)
	}

	for i, typ := range d.Types {
		if typ == Stop || typ > 0xf {
			return fmt.Errorf("invalid type %s at position %d", typ, i)
		}
	}
	return nil
}

// Mask packs the descriptor. Descriptors with more than MaxMaskArgs
// positions cannot be packed.
func (d Descriptor) Mask() (Mask, error) {
	if err := d.validate(MaxMaskArgs); err != nil {
		return 0, err
	}

	m := Mask(d.Min)

	for i, typ := range d.Types {
		m |= Mask(typ) << (4 * (i + 1))
	}
	return m, nil
}

// positions returns the types declared before the first Stop, at most
// MaxArgs of them.
func (d Descriptor) positions() []Type {
	types := d.Types

	if len(types) > MaxArgs {
		types = types[:MaxArgs]
	}

	for i, typ := range types {
		if typ == Stop {
			return types[:i]
		}
	}
	return types
}

// Max returns the number of positions declared.
func (d Descriptor) Max() int {
	return len(d.Types)
}

// TypeAt returns the type expected at the given position, or Stop if the
// position is not declared.
func (d Descriptor) TypeAt(pos int) Type {
	if pos < 0 || pos >= len(d.Types) {
		return Stop
	}
	return d.Types[pos]
}

// String returns the signature form of the descriptor, as accepted by
// ParseSignature.
func (d Descriptor) String() string {
	var buf strings.Builder

	buf.WriteString(strconv.Itoa(d.Min))
	buf.WriteByte(':')

	for i, typ := range d.Types {
		if i > 0 {
			buf.WriteByte(',')
		}

		key := typ.Key()

		if key == "" {
			key = strconv.Itoa(int(typ))
		}
		buf.WriteString(key)
	}
	return buf.String()
}

var errEmptySignature = errors.New("empty signature")

// ParseSignature parses the textual form of a descriptor. This is either a
// packed mask as a decimal or 0x prefixed hexadecimal number, or a list of
// type keys optionally prefixed with the minimum:
//
//	2:uint,uint,uint
//	ipv4,msk4
//
// If no minimum is given then every position is mandatory. A signature may
// declare up to MaxArgs positions, only MaxMaskArgs of which can be packed
// into a Mask.
func ParseSignature(s string) (Descriptor, error) {
	var d Descriptor

	if s == "" {
		return d, errEmptySignature
	}

	if isDigit(rune(s[0])) && !strings.ContainsAny(s, ":,") {
		m, err := strconv.ParseUint(s, 0, 32)

		if err != nil {
			return d, fmt.Errorf("invalid mask %q: %w", s, err)
		}
		return Mask(m).Decode(), nil
	}

	min := -1
	list := s

	if before, after, ok := strings.Cut(s, ":"); ok {
		n, err := strconv.Atoi(before)

		if err != nil {
			return d, fmt.Errorf("invalid minimum %q in signature", before)
		}
		min = n
		list = after
	}

	if list != "" {
		for _, key := range strings.Split(list, ",") {
			typ, ok := LookupType(strings.TrimSpace(key))

			if !ok {
				return d, fmt.Errorf("unknown type %q in signature", key)
			}
			d.Types = append(d.Types, typ)
		}
	}

	d.Min = min

	if min < 0 {
		d.Min = len(d.Types)
	}

	if err := d.validate(MaxArgs); err != nil {
		return d, err
	}
	return d, nil
}
