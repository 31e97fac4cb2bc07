// Package character holds the fixed demo character roster served by the
// story server.
//
// The roster is built once at process start and never mutated. Lookups for
// unknown names return the NotFound sentinel string instead of an error;
// callers cannot distinguish a missing character from one whose text happens
// to equal the sentinel. This matches the server's historical behavior and is
// kept for client compatibility.
package character

// NotFound is returned by Backstory and Superpower for unknown names.
const NotFound = "Character not found."

// Character is one immutable roster entry.
type Character struct {
	Name       string
	Backstory  string
	Superpower string
}

// Table is the read-only character roster. Safe for concurrent use; nothing
// mutates it after construction.
type Table struct {
	names   []string
	entries map[string]Character
}

// NewTable builds the demo roster.
func NewTable() *Table {
	t := &Table{entries: make(map[string]Character)}
	for _, c := range []Character{
		{
			Name:       "Jack",
			Backstory:  "Jack is a former spy who now lives as a covert hero.",
			Superpower: "Invisibility and telepathy",
		},
		{
			Name:       "Ram",
			Backstory:  "Ram is an ancient warrior reborn in the modern world to fight for peace.",
			Superpower: "Invincible body and immense strength",
		},
		{
			Name:       "Robert",
			Backstory:  "Robert is a scientist who became part machine after a lab accident.",
			Superpower: "Power fused with advanced technology",
		},
	} {
		t.names = append(t.names, c.Name)
		t.entries[c.Name] = c
	}
	return t
}

// Names returns the character names in roster order.
func (t *Table) Names() []string {
	names := make([]string, len(t.names))
	copy(names, t.names)
	return names
}

// Backstory returns the backstory for name, or NotFound for unknown names.
func (t *Table) Backstory(name string) string {
	c, ok := t.entries[name]
	if !ok {
		return NotFound
	}
	return c.Backstory
}

// Superpower returns the superpower for name, or NotFound for unknown names.
func (t *Table) Superpower(name string) string {
	c, ok := t.entries[name]
	if !ok {
		return NotFound
	}
	return c.Superpower
}
