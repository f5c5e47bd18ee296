package rules

var combatRules = []Rule{
	{"keyword:sword", "Combat/Weapons/Melee", 10},
	{"keyword:sword-clash", "Combat/Weapons/Melee", 10},
	{"keyword:axe", "Combat/Weapons/Melee", 10},
	{"keyword:hammer", "Combat/Weapons/Melee", 10},
	{"keyword:dagger", "Combat/Weapons/Melee", 10},
	{"keyword:club", "Combat/Weapons/Melee", 10},
	{"keyword:bow", "Combat/Weapons/Ranged", 10},
	{"keyword:crossbow", "Combat/Weapons/Ranged", 10},
	{"keyword:pistol", "Combat/Weapons/Ranged", 10},
	{"keyword:rifle", "Combat/Weapons/Ranged", 10},
	{"keyword:thrown", "Combat/Weapons/Ranged", 10},
	{"keyword:spell-impact", "Combat/Weapons/Magical", 10},
	{"keyword:battle-magic", "Combat/Weapons/Magical", 10},
	{"keyword:enchanted-weapon", "Combat/Weapons/Magical", 10},
	{"keyword:leather-armor", "Combat/Armor & Defense", 10},
	{"keyword:chain-mail", "Combat/Armor & Defense", 10},
	{"keyword:plate-armor", "Combat/Armor & Defense", 10},
	{"keyword:shield", "Combat/Armor & Defense", 10},
	{"occasion:combat-ambush", "Combat/Combat Phases/Ambush", 10},
	{"occasion:combat-skirmish", "Combat/Combat Phases/Skirmish", 10},
	{"occasion:combat-siege", "Combat/Combat Phases/Siege", 10},
	{"occasion:combat-duel", "Combat/Combat Phases/Final Battle", 9},
	{"occasion:boss-intro", "Combat/Combat Phases/Final Battle", 9},
	{"mood:triumphant", "Combat/Victory & Defeat", 8},
	{"mood:heroic", "Combat/Victory & Defeat", 8},
	{"keyword:retreat", "Combat/Victory & Defeat", 10},
	{"keyword:last-stand", "Combat/Victory & Defeat", 10},
}
