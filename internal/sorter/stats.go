package sorter

// Failure is a file that could not be placed or moved.
type Failure struct {
	Path string
	Err  error
}

// Stats tracks per-run counters.
type Stats struct {
	Found     int // files with an accepted extension
	Skipped   int // names that did not parse
	Matched   int
	Unmatched int
	Moved     int
	Planned   int // dry run only
	Failures  []Failure
}

// Failed returns the number of files that could not be moved.
func (s *Stats) Failed() int {
	return len(s.Failures)
}

func (s *Stats) fail(path string, err error) {
	s.Failures = append(s.Failures, Failure{Path: path, Err: err})
}
