package rules

var environmentRules = []Rule{
	{"keyword:biome:forest", "Environments/Natural/Forest", 8},
	{"keyword:ancient-forest", "Environments/Natural/Forest", 10},
	{"keyword:dark-woods", "Environments/Natural/Forest", 10},
	{"keyword:fairy-grove", "Environments/Natural/Forest", 10},
	{"keyword:biome:mountain", "Environments/Natural/Mountains", 8},
	{"keyword:cave", "Environments/Natural/Mountains", 10},
	{"keyword:mining", "Environments/Natural/Mountains", 10},
	{"occasion:mountain-pass", "Environments/Natural/Mountains", 9},
	{"keyword:biome:ocean", "Environments/Natural/Water", 10},
	{"keyword:biome:river", "Environments/Natural/Water", 10},
	{"keyword:biome:swamp", "Environments/Natural/Water", 10},
	{"occasion:sea-voyage", "Environments/Natural/Water", 9},
	{"keyword:storm", "Environments/Natural/Weather", 10},
	{"keyword:blizzard", "Environments/Natural/Weather", 10},
	{"mood:peaceful", "Environments/Natural/Weather", 7},
	{"occasion:tavern", "Environments/Urban/Buildings/Taverns", 10},
	{"keyword:loc:tavern", "Environments/Urban/Buildings/Taverns", 10},
	{"occasion:market", "Environments/Urban/Cities", 9},
	{"keyword:loc:market", "Environments/Urban/Cities", 10},
	{"keyword:loc:temple", "Environments/Urban/Buildings/Temples", 10},
	{"keyword:noble-district", "Environments/Urban/Cities", 10},
	{"keyword:slums", "Environments/Urban/Cities", 10},
	{"occasion:noble-court", "Environments/Urban/Cities", 8},
	{"keyword:village", "Environments/Urban/Villages", 9},
	{"occasion:dungeon-crawl", "Environments/Dungeons/Stone Corridors", 9},
	{"occasion:boss-intro", "Environments/Dungeons/Boss Chambers", 8},
	{"keyword:treasure", "Environments/Dungeons/Stone Corridors", 9},
}
