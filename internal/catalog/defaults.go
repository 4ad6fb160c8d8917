package catalog

// Built-in content: ten items across the three categories and seven
// customer templates with 0-3 haggling rounds each.

var defaultItems = []Item{
	{ID: "copper_sword", Name: "Copper Sword", Price: 100, Type: TypeWeapon, Attack: 5, Description: "A beginner's blade"},
	{ID: "iron_sword", Name: "Iron Sword", Price: 500, Type: TypeWeapon, Attack: 15, Description: "A sword forged from iron"},
	{ID: "steel_sword", Name: "Steel Sword", Price: 1500, Type: TypeWeapon, Attack: 30, Description: "A keen steel blade"},
	{ID: "leather_shield", Name: "Leather Shield", Price: 80, Type: TypeArmor, Defense: 3, Description: "A shield of hardened leather"},
	{ID: "iron_shield", Name: "Iron Shield", Price: 300, Type: TypeArmor, Defense: 10, Description: "A shield forged from iron"},
	{ID: "cloth_clothes", Name: "Cloth Clothes", Price: 50, Type: TypeArmor, Defense: 2, Description: "Plain cloth garments"},
	{ID: "chain_mail", Name: "Chain Mail", Price: 800, Type: TypeArmor, Defense: 18, Description: "Armor of woven chain links"},
	{ID: "herb", Name: "Herb", Price: 10, Type: TypeConsumable, Description: "Restores a little health"},
	{ID: "antidote", Name: "Antidote", Price: 15, Type: TypeConsumable, Description: "Cures poison"},
	{ID: "chimera_wing", Name: "Chimera Wing", Price: 30, Type: TypeConsumable, Description: "A wing that carries you home"},
}

var defaultDialogues = []string{
	"I'm looking for a %s...",
	"Do you have a %s?",
	"A %s, please!",
	"I've been searching for a %s.",
}

var defaultTemplates = []CustomerTemplate{
	{
		ID:             "town_girl",
		Name:           "Town Girl",
		PreferredItems: []string{"cloth_clothes", "herb", "antidote"},
		Rounds:         1,
	},
	{
		ID:             "traveling_warrior",
		Name:           "Traveling Warrior",
		PreferredItems: []string{"copper_sword", "iron_sword", "iron_shield", "chain_mail"},
		Rounds:         2,
	},
	{
		ID:             "rich_noble",
		Name:           "Rich Noble",
		PreferredItems: []string{"steel_sword", "chain_mail"},
		Rounds:         0, // Pays the asking price or leaves.
	},
	{
		ID:             "mage",
		Name:           "Mage",
		PreferredItems: []string{"herb", "antidote", "chimera_wing", "cloth_clothes"},
		Rounds:         3,
	},
	{
		ID:             "adventurer",
		Name:           "Adventurer",
		PreferredItems: []string{"copper_sword", "iron_sword", "leather_shield", "herb", "chimera_wing"},
		Rounds:         2,
	},
	{
		ID:             "old_man",
		Name:           "Old Man",
		PreferredItems: []string{"herb", "antidote", "cloth_clothes"},
		Rounds:         3,
	},
	{
		ID:             "child_prince",
		Name:           "Child Prince",
		PreferredItems: []string{"copper_sword", "leather_shield", "chimera_wing"},
		Rounds:         1,
	},
}
