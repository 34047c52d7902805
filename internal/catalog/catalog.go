package catalog

import (
	"strings"
)

// Catalog holds the ordered set of known tools. Order is significant:
// selection menus, install runs, and summaries all iterate in catalog order.
type Catalog struct {
	tools  []Tool
	byName map[string]*Tool
}

// New creates a catalog from a list of tools.
func New(tools []Tool) *Catalog {
	c := &Catalog{
		tools:  tools,
		byName: make(map[string]*Tool, len(tools)),
	}
	for i := range c.tools {
		c.byName[c.tools[i].Name] = &c.tools[i]
	}
	return c
}

// All returns all tools in catalog order.
func (c *Catalog) All() []Tool {
	return c.tools
}

// Len returns the number of tools.
func (c *Catalog) Len() int {
	return len(c.tools)
}

// Get returns a tool by name, or nil if not found.
func (c *Catalog) Get(name string) *Tool {
	return c.byName[name]
}

// Names returns all tool names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.tools))
	for i, t := range c.tools {
		names[i] = t.Name
	}
	return names
}

// Search finds tools matching a query against name, crate, command, and description.
func (c *Catalog) Search(query string) []Tool {
	q := strings.ToLower(query)
	var results []Tool
	for _, t := range c.tools {
		if matches(t, q) {
			results = append(results, t)
		}
	}
	return results
}

func matches(t Tool, query string) bool {
	if strings.Contains(strings.ToLower(t.Name), query) {
		return true
	}
	if strings.Contains(strings.ToLower(t.CrateName()), query) {
		return true
	}
	if strings.Contains(strings.ToLower(t.CommandName()), query) {
		return true
	}
	return strings.Contains(strings.ToLower(t.Description), query)
}
