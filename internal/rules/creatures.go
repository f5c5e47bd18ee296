package rules

var creatureRules = []Rule{
	{"keyword:creature:orc", "Creatures/Humanoids/Hostile", 10},
	{"keyword:creature:goblin", "Creatures/Humanoids/Hostile", 10},
	{"keyword:creature:bandit", "Creatures/Humanoids/Hostile", 10},
	{"keyword:creature:elf", "Creatures/Humanoids/Civilized", 10},
	{"keyword:creature:human", "Creatures/Humanoids/Civilized", 10},
	{"keyword:creature:dwarf", "Creatures/Humanoids/Civilized", 10},
	{"keyword:creature:wolf", "Creatures/Beasts", 10},
	{"keyword:creature:bear", "Creatures/Beasts", 10},
	{"keyword:creature:eagle", "Creatures/Beasts", 10},
	{"keyword:creature:dragon", "Creatures/Monsters/Dragons", 10},
	{"keyword:creature:skeleton", "Creatures/Monsters/Undead", 10},
	{"keyword:creature:zombie", "Creatures/Monsters/Undead", 10},
	{"keyword:creature:ghost", "Creatures/Monsters/Undead", 10},
	{"keyword:creature:vampire", "Creatures/Monsters/Undead", 10},
	{"keyword:creature:lich", "Creatures/Monsters/Undead", 10},
}
