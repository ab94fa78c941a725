package catalog

import "strings"

// Filter keeps the entries whose key or name contains term, ignoring case.
// A blank term keeps everything. The result is a new slice in input order.
func Filter(entries []Entry, term string) []Entry {
	if strings.TrimSpace(term) == "" {
		return append([]Entry(nil), entries...)
	}

	needle := strings.ToLower(term)
	var out []Entry
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Key), needle) {
			out = append(out, e)
			continue
		}
		if e.Name != "" && strings.Contains(strings.ToLower(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}
