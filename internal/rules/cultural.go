package rules

var culturalRules = []Rule{
	{"keyword:style:greek", "Cultural Styles", 8},
	{"keyword:style:roman", "Cultural Styles", 8},
	{"keyword:style:egyptian", "Cultural Styles", 8},
	{"keyword:style:norse", "Cultural Styles", 8},
	{"keyword:style:medieval-european", "Cultural Styles", 8},
	{"keyword:style:japanese-traditional", "Cultural Styles", 8},
	{"keyword:style:chinese-traditional", "Cultural Styles", 8},
	{"keyword:castle", "Cultural Styles", 7},
	{"keyword:monastery", "Cultural Styles", 7},
}
