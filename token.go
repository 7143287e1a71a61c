// Package args builds typed argument lists from comma separated text, as
// found in the parameters of configuration directives.
package args

// Type identifies the kind of value expected at a position of an argument
// list.
type Type uint8

//go:generate stringer -type Type -linecomment
const (
	Stop     Type = iota // end of arguments
	UInt                 // unsigned integer
	SInt                 // signed integer
	Str                  // string
	IPv4                 // IPv4 address
	Msk4                 // IPv4 mask
	IPv6                 // IPv6 address
	Msk6                 // IPv6 mask
	Time                 // delay
	Size                 // size
	Frontend             // frontend
	Backend              // backend
	Table                // table
	Server               // server
	UserList             // user list
)

var typekeys = map[Type]string{
	UInt:     "uint",
	SInt:     "sint",
	Str:      "str",
	IPv4:     "ipv4",
	Msk4:     "msk4",
	IPv6:     "ipv6",
	Msk6:     "msk6",
	Time:     "time",
	Size:     "size",
	Frontend: "fe",
	Backend:  "be",
	Table:    "tab",
	Server:   "srv",
	UserList: "usr",
}

var keytypes = func() map[string]Type {
	m := make(map[string]Type, len(typekeys))

	for typ, key := range typekeys {
		m[key] = typ
	}
	return m
}()

// Deferred reports whether values of the type name an object that is resolved
// after parsing. Such values are kept as strings.
func (t Type) Deferred() bool {
	switch t {
	case Frontend, Backend, Table, Server, UserList:
		return true
	}
	return false
}

// Key returns the short key used for the type in signatures, for example
// "uint" or "msk4". The empty string is returned for Stop and unassigned
// tags.
func (t Type) Key() string {
	return typekeys[t]
}

// LookupType returns the type for the given signature key.
func LookupType(key string) (Type, bool) {
	t, ok := keytypes[key]
	return t, ok
}
