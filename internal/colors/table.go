package colors

import (
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Rule maps a keyword found in a project key to a color name.
type Rule struct {
	Keyword string
	Color   string
}

// Table is an ordered list of rules. Declaration order is match priority:
// the first rule whose keyword occurs in the key wins.
type Table []Rule

// UnmarshalYAML decodes a mapping while keeping document order, which a Go
// map would lose.
func (t *Table) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: colors must be a mapping of keyword to color", node.Line)
	}
	rules := make(Table, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		var r Rule
		if err := node.Content[i].Decode(&r.Keyword); err != nil {
			return err
		}
		if err := node.Content[i+1].Decode(&r.Color); err != nil {
			return err
		}
		rules = append(rules, r)
	}
	*t = rules
	return nil
}

// MarshalYAML encodes the table as a mapping in rule order.
func (t Table) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, r := range t {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Keyword},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: r.Color},
		)
	}
	return node, nil
}

// Unknown returns the color names in t that Parse does not recognise.
func (t Table) Unknown() []string {
	var out []string
	for _, r := range t {
		if _, ok := Parse(r.Color); !ok {
			out = append(out, r.Color)
		}
	}
	return out
}

// Match returns the color of the first rule whose keyword is contained in
// key, ignoring case. A first match with an unknown color yields no color;
// later rules are not consulted.
func Match(key string, t Table) (Color, bool) {
	k := strings.ToLower(key)
	for _, r := range t {
		if !strings.Contains(k, strings.ToLower(r.Keyword)) {
			continue
		}
		c, ok := Parse(r.Color)
		if !ok {
			return "", false
		}
		return c, true
	}
	return "", false
}

// Tag renders label in the color matched for key, or returns it unchanged.
func Tag(label, key string, t Table) string {
	c, ok := Match(key, t)
	if !ok {
		return label
	}
	style, _ := Lookup(string(c))
	return style.Render(label)
}
