package catalog

import (
	"fmt"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortPolicy selects how entries are ordered for display.
type SortPolicy string

const (
	// SortDefault keeps the server order.
	SortDefault SortPolicy = "default"
	// SortComponentBranch orders by component, then branch.
	SortComponentBranch SortPolicy = "component_branch"
	// SortGroupComponentBranch orders by group, then component, then branch.
	SortGroupComponentBranch SortPolicy = "group_component_branch"
)

// SortPolicies lists the accepted policy names.
var SortPolicies = []SortPolicy{SortDefault, SortComponentBranch, SortGroupComponentBranch}

// ParseSortPolicy validates a policy name. The empty string means SortDefault.
func ParseSortPolicy(s string) (SortPolicy, error) {
	if s == "" {
		return SortDefault, nil
	}
	p := SortPolicy(s)
	if !slices.Contains(SortPolicies, p) {
		return "", fmt.Errorf("unknown sort policy %q (want one of %v)", s, SortPolicies)
	}
	return p, nil
}

// Sort returns a new slice ordered by policy. Segment comparison uses the
// collation rules of locale; equal entries keep their relative order.
// SortDefault and unknown policies return the entries unchanged.
func Sort(entries []Entry, policy SortPolicy, locale language.Tag) []Entry {
	out := append([]Entry(nil), entries...)

	var fields func(KeyParts) []string
	switch policy {
	case SortComponentBranch:
		fields = func(p KeyParts) []string { return []string{p.Component, p.Branch} }
	case SortGroupComponentBranch:
		fields = func(p KeyParts) []string { return []string{p.Group, p.Component, p.Branch} }
	default:
		return out
	}

	col := collate.New(locale)
	slices.SortStableFunc(out, func(a, b Entry) int {
		fa, fb := fields(Decompose(a.Key)), fields(Decompose(b.Key))
		for i := range fa {
			if c := col.CompareString(fa[i], fb[i]); c != 0 {
				return c
			}
		}
		return 0
	})
	return out
}
