package rules

var horrorRules = []Rule{
	{"keyword:haunted-house", "Horror & Terror/Dread & Suspense", 9},
	{"keyword:cemetery", "Horror & Terror/Dread & Suspense", 9},
	{"keyword:asylum", "Horror & Terror/Dread & Suspense", 9},
	{"keyword:eldritch", "Horror & Terror/Dread & Suspense", 9},
	{"keyword:cosmic-dread", "Horror & Terror/Dread & Suspense", 9},
	{"keyword:jump-scare", "Horror & Terror/Jump Scares", 10},
	{"mood:terrifying", "Horror & Terror/Dread & Suspense", 8},
}
