package rules

var fantasyRules = []Rule{
	{"genre:orchestral:heroic", "Fantasy Genres", 8},
	{"genre:orchestral:dark", "Fantasy Genres", 8},
	{"keyword:epic-quest", "Fantasy Genres", 10},
	{"keyword:chosen-one", "Fantasy Genres", 9},
	{"keyword:corruption", "Fantasy Genres", 8},
	{"keyword:modern-magic", "Fantasy Genres", 9},
	{"keyword:hidden-world", "Fantasy Genres", 9},
}
