package rules

var sessionRules = []Rule{
	{"occasion:session-start", "Session Structure/Opening", 10},
	{"occasion:recap", "Session Structure/Opening", 10},
	{"occasion:overworld-travel", "Session Structure/Intermission", 9},
	{"occasion:wilderness-exploration", "Session Structure/Intermission", 9},
	{"occasion:boss-intro", "Session Structure/Climax", 9},
	{"keyword:major-revelation", "Session Structure/Climax", 9},
	{"occasion:quest-complete", "Session Structure/Closing", 9},
	{"occasion:level-up", "Session Structure/Closing", 9},
	{"occasion:session-end", "Session Structure/Closing", 9},
}
