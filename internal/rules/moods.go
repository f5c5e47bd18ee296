package rules

var moodRules = []Rule{
	{"mood:cheerful", "Moods & Atmosphere/Peaceful", 8},
	{"mood:peaceful", "Moods & Atmosphere/Peaceful", 8},
	{"mood:romantic", "Moods & Atmosphere/Peaceful", 8},
	{"mood:epic", "Moods & Atmosphere/Epic", 9},
	{"mood:heroic", "Moods & Atmosphere/Epic", 8},
	{"mood:mysterious", "Moods & Atmosphere/Mysterious", 8},
	{"mood:ominous", "Moods & Atmosphere/Somber", 8},
	{"mood:tragic", "Moods & Atmosphere/Somber", 8},
	{"mood:sinister", "Moods & Atmosphere/Somber", 8},
	{"mood:tense", "Moods & Atmosphere/Tension", 8},
	{"mood:aggressive", "Moods & Atmosphere/Tension", 8},
	{"keyword:building-tension", "Moods & Atmosphere/Tension", 9},
	{"keyword:brooding-intensity", "Moods & Atmosphere/Tension", 9},
}
