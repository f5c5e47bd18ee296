package rules

var magicRules = []Rule{
	{"keyword:magic:fire", "Magic & Powers/Elemental", 10},
	{"keyword:magic:ice", "Magic & Powers/Elemental", 10},
	{"keyword:magic:lightning", "Magic & Powers/Elemental", 10},
	{"keyword:magic:healing", "Magic & Powers/Divine", 10},
	{"keyword:divine-intervention", "Magic & Powers/Divine", 10},
	{"keyword:magic:necromancy", "Magic & Powers/Arcane", 10},
	{"keyword:magic:illusion", "Magic & Powers/Arcane", 10},
	{"keyword:magic:teleportation", "Magic & Powers/Arcane", 10},
	{"keyword:magic:summoning", "Magic & Powers/Arcane", 10},
	{"keyword:ritual", "Magic & Powers/Arcane", 10},
	{"keyword:spell-failure", "Magic & Powers/Arcane", 9},
	{"keyword:magic-surge", "Magic & Powers/Arcane", 9},
}
