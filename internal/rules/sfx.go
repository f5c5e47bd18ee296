package rules

var sfxRules = []Rule{
	{"keyword:sfx:sword-clash", "SFX & Foley/Impacts", 10},
	{"keyword:sfx:spell-impact", "SFX & Foley/Impacts", 10},
	{"keyword:sfx:footsteps", "SFX & Foley/Movement", 9},
	{"keyword:sfx:dragon-breath", "SFX & Foley/Impacts", 10},
	{"keyword:sfx:tavern-murmur", "SFX & Foley/Objects", 10},
	{"keyword:sfx:forest-sounds", "SFX & Foley/Objects", 10},
	{"keyword:sfx:ocean-waves", "SFX & Foley/Objects", 10},
	{"keyword:sfx:door", "SFX & Foley/Objects", 9},
	{"keyword:sfx:coins", "SFX & Foley/Objects", 9},
}
