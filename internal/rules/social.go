package rules

var socialRules = []Rule{
	{"keyword:loc:tavern", "Social Encounters/Taverns & Inns", 9},
	{"keyword:loc:inn", "Social Encounters/Taverns & Inns", 9},
	{"keyword:loc:market", "Social Encounters/Markets & Trade", 9},
	{"keyword:bustling", "Social Encounters/Markets & Trade", 8},
	{"keyword:black-market", "Social Encounters/Markets & Trade", 10},
	{"occasion:noble-court", "Social Encounters/Courts & Politics", 9},
	{"occasion:interrogation", "Social Encounters/Courts & Politics", 8},
	{"occasion:crime-scene", "Social Encounters/Courts & Politics", 7},
}
