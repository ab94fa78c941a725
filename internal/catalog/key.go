package catalog

import "strings"

// KeySeparator delimits the segments of a project key.
const KeySeparator = ":"

// KeyParts is a project key split into its hierarchical segments.
type KeyParts struct {
	Group     string
	Organ     string
	Component string
	Branch    string
	// Optionals holds segments after the branch, in key order.
	Optionals []string
}

// Decompose splits key on ":". Missing segments are empty strings; it never
// fails, not even for an empty key.
func Decompose(key string) KeyParts {
	segs := strings.Split(key, KeySeparator)
	at := func(i int) string {
		if i < len(segs) {
			return segs[i]
		}
		return ""
	}

	parts := KeyParts{
		Group:     at(0),
		Organ:     at(1),
		Component: at(2),
		Branch:    at(3),
	}
	if len(segs) > 4 {
		parts.Optionals = append([]string(nil), segs[4:]...)
	}
	return parts
}
