package rest

import "errors"

// Params holds the key/value pairs of one parameter group: query string,
// form body, or JSON body.
type Params map[string]any

// unset is the type of the Unset sentinel. It is unexported so the only
// value of this type a caller can ever hold is Unset itself.
type unset struct{}

// Unset marks a parameter the caller did not supply. It is distinct from
// every valid value, including absence of the key, and is always stripped
// before a group is serialized into a wire payload or merged into a job
// descriptor.
var Unset unset

// MarshalJSON guards the invariant that the sentinel never reaches a wire
// payload. Groups must be passed through [TrimUnset] first.
func (unset) MarshalJSON() ([]byte, error) {
	return nil, errors.New("rest: unset sentinel must be stripped before serialization")
}

// TrimUnset returns a copy of p without the entries whose value is [Unset].
// The result is never nil, so callers can merge groups without nil checks.
// Trimming an already-trimmed group yields an equal group.
func TrimUnset(p Params) Params {
	trimmed := make(Params, len(p))
	for k, v := range p {
		if _, skip := v.(unset); skip {
			continue
		}
		trimmed[k] = v
	}

	return trimmed
}

// OptString returns s, or [Unset] when s is empty.
func OptString(s string) any {
	if s == "" {
		return Unset
	}
	return s
}

// OptInt returns n, or [Unset] when n is zero.
func OptInt(n int) any {
	if n == 0 {
		return Unset
	}
	return n
}

// OptMap returns m, or [Unset] when m is nil.
func OptMap[K comparable, V any](m map[K]V) any {
	if m == nil {
		return Unset
	}
	return m
}
