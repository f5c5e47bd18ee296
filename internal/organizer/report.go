package organizer

// Report summarizes one organize run.
type Report struct {
	RunID     string
	Processed int
	Organized int
	Results   []Result
}

// Result records the outcome for a single track. Note carries the reason a
// track was left unfiled.
type Result struct {
	TrackID    int64
	Title      string
	FolderID   int64
	FolderName string
	Confidence float64
	Organized  bool
	Note       string
}
