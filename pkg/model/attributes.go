package model

// AttrClass and AttrRole are the attribute keys the role conflict resolver
// inspects; every other key passes through untouched.
const (
	AttrClass = "class"
	AttrRole  = "role"
)

// Attributes is the attribute set the host computes for a loop/container
// wrapper element. The class entry, when present, holds an ordered list of
// class tokens.
type Attributes map[string]any

// Classes returns the class token list and whether the class entry is a
// proper ordered collection of strings. Hosts decoding from JSON often hand
// over []any; that shape is accepted when every element is a string.
func (a Attributes) Classes() ([]string, bool) {
	if a == nil {
		return nil, false
	}
	switch v := a[AttrClass].(type) {
	case []string:
		return v, true
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	}
	return nil, false
}

// Clone returns a shallow copy so callers can mutate the result without
// touching the host-owned input.
func (a Attributes) Clone() Attributes {
	if a == nil {
		return nil
	}
	out := make(Attributes, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
