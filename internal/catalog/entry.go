// Package catalog holds the project entries returned by SonarQube and the
// pure stages (filter, sort, label) applied to them before selection.
package catalog

import "fmt"

// Entry is one project in the SonarQube catalog.
type Entry struct {
	Key          string `json:"key"`
	Name         string `json:"name,omitempty"`
	Qualifier    string `json:"qualifier,omitempty"`
	AnalysisDate string `json:"analysisDate,omitempty"`
}

// Keys returns the keys of entries in order.
func Keys(entries []Entry) []string {
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// Label returns the display label for the entry at the given zero-based
// position, e.g. "3. Billing API (acme:pay:billing-api:main)".
// Entries without a name are shown by their component segment.
func Label(index int, e Entry) string {
	name := e.Name
	if name == "" {
		name = Decompose(e.Key).Component
	}
	if name == "" {
		return fmt.Sprintf("%d. %s", index+1, e.Key)
	}
	return fmt.Sprintf("%d. %s (%s)", index+1, name, e.Key)
}
