// Package selection merges the operator's choice with the previously saved
// project selection.
package selection

import "sort"

// Set is a set of project keys.
type Set map[string]bool

// NewSet builds a set from keys, dropping duplicates.
func NewSet(keys []string) Set {
	s := make(Set, len(keys))
	for _, k := range keys {
		s[k] = true
	}
	return s
}

// Has reports whether key is in the set.
func (s Set) Has(key string) bool {
	return s[key]
}

// Sorted returns the keys in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Hidden returns the prior keys that are not in visible: saved choices the
// operator could not see this run. Sorted and deduplicated.
func Hidden(prior, visible []string) []string {
	shown := NewSet(visible)
	out := make(Set, len(prior))
	for _, k := range prior {
		if !shown.Has(k) {
			out[k] = true
		}
	}
	return out.Sorted()
}

// Reconcile computes the selection to persist.
//
// Keys the operator could see are decided by the current choice alone: a
// visible key is kept only if chosen, even when it was saved before. Saved
// keys that were not visible (filtered out of this run) carry over
// untouched. Chosen keys outside visible are ignored.
//
// The result is Hidden(prior, visible) ∪ (chosen ∩ visible), deduplicated
// and sorted so repeated runs write identical output.
func Reconcile(prior, visible, chosen []string) []string {
	result := NewSet(Hidden(prior, visible))
	shown := NewSet(visible)
	for _, k := range chosen {
		if shown.Has(k) {
			result[k] = true
		}
	}
	return result.Sorted()
}
