// Package catalog holds the static reference data the simulation is
// parameterized by: the item catalog and the customer templates. The
// core never defines content itself; it looks items up through this
// package, which ships built-in defaults and can load overrides from
// a YAML file.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ItemType classifies catalog entries.
type ItemType string

const (
	TypeWeapon     ItemType = "weapon"
	TypeArmor      ItemType = "armor"
	TypeConsumable ItemType = "consumable"
)

// Item is one immutable catalog entry, looked up by ID everywhere else.
type Item struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Price       int      `yaml:"price"` // List price in gold.
	Type        ItemType `yaml:"type"`
	Attack      int      `yaml:"attack,omitempty"`
	Defense     int      `yaml:"defense,omitempty"`
	Description string   `yaml:"description,omitempty"`
}

// CustomerTemplate describes one kind of generated customer. Rounds is
// the number of counter-offer exchanges the customer tolerates (0-3);
// a 0-round customer takes the listed price or walks.
type CustomerTemplate struct {
	ID             string   `yaml:"id"`
	Name           string   `yaml:"name"`
	PreferredItems []string `yaml:"preferred_items"`
	Rounds         int      `yaml:"rounds"`
	Dialogues      []string `yaml:"dialogues"` // %s is replaced with the wanted item's name.
}

// Catalog is an immutable lookup over items and customer templates.
type Catalog struct {
	items     map[string]Item
	order     []string
	templates []CustomerTemplate
}

// Item looks up a catalog entry by ID.
func (c *Catalog) Item(id string) (Item, bool) {
	it, ok := c.items[id]
	return it, ok
}

// Items returns all entries in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Templates returns all customer templates.
func (c *Catalog) Templates() []CustomerTemplate {
	out := make([]CustomerTemplate, len(c.templates))
	copy(out, c.templates)
	return out
}

// file is the YAML document shape for LoadFile.
type file struct {
	Items     []Item             `yaml:"items"`
	Customers []CustomerTemplate `yaml:"customers"`
}

// LoadFile reads a catalog definition from a YAML file.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var f file
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return build(f.Items, f.Customers)
}

func build(items []Item, templates []CustomerTemplate) (*Catalog, error) {
	c := &Catalog{items: make(map[string]Item, len(items))}
	for _, it := range items {
		if it.ID == "" || it.Name == "" {
			return nil, fmt.Errorf("item %q: id and name required", it.ID)
		}
		if it.Price <= 0 {
			return nil, fmt.Errorf("item %q: price must be positive", it.ID)
		}
		switch it.Type {
		case TypeWeapon, TypeArmor, TypeConsumable:
		default:
			return nil, fmt.Errorf("item %q: unknown type %q", it.ID, it.Type)
		}
		if _, dup := c.items[it.ID]; dup {
			return nil, fmt.Errorf("item %q: duplicate id", it.ID)
		}
		c.items[it.ID] = it
		c.order = append(c.order, it.ID)
	}

	for _, tpl := range templates {
		if tpl.ID == "" || tpl.Name == "" {
			return nil, fmt.Errorf("customer %q: id and name required", tpl.ID)
		}
		if tpl.Rounds < 0 || tpl.Rounds > 3 {
			return nil, fmt.Errorf("customer %q: rounds %d out of range 0-3", tpl.ID, tpl.Rounds)
		}
		if len(tpl.PreferredItems) == 0 {
			return nil, fmt.Errorf("customer %q: at least one preferred item required", tpl.ID)
		}
		for _, id := range tpl.PreferredItems {
			if _, ok := c.items[id]; !ok {
				return nil, fmt.Errorf("customer %q: unknown preferred item %q", tpl.ID, id)
			}
		}
		if len(tpl.Dialogues) == 0 {
			tpl.Dialogues = defaultDialogues
		}
		c.templates = append(c.templates, tpl)
	}
	if len(c.templates) == 0 {
		return nil, fmt.Errorf("catalog: at least one customer template required")
	}
	return c, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := build(defaultItems, defaultTemplates)
	if err != nil {
		// Built-in data is validated by tests; a failure here is a bug.
		panic(err)
	}
	return c
}
