package model

// Status represents the outcome of processing a single page or image.
type Status int

const (
	// Injected indicates at least one header was inserted into the page.
	Injected Status = iota
	// Skipped indicates the item needed no work (no header script, thumbnail exists, ...).
	Skipped
	// Generated indicates a thumbnail was written.
	Generated
	// Resized indicates the image was scaled down and re-encoded.
	Resized
	// Optimized indicates the image fit the limit and was only re-encoded.
	Optimized
	// Failed indicates an error occurred while processing the item.
	Failed
)

// String returns the human readable status label.
func (s Status) String() string {
	switch s {
	case Injected:
		return "injected"
	case Skipped:
		return "skipped"
	case Generated:
		return "generated"
	case Resized:
		return "resized"
	case Optimized:
		return "optimized"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// PageReport is the result of running the injector on one page.
type PageReport struct {
	Path    Path
	Status  Status
	Headers int    // number of headers inserted
	Base    string // base path used for the last insertion
	Err     string // error message when Status is Failed
	Diff    string // unified diff, only filled on dry runs
}

// ImageReport is the result of processing one gallery image.
type ImageReport struct {
	Path       Path
	Status     Status
	FromWidth  int
	FromHeight int
	ToWidth    int
	ToHeight   int
	Err        string
}

// Summary aggregates counts per status.
type Summary struct {
	Kind   string // "pages" or "images"
	Total  int
	Counts map[Status]int
}

// Add records a status in the summary.
func (s *Summary) Add(status Status) {
	if s.Counts == nil {
		s.Counts = make(map[Status]int)
	}

	s.Counts[status]++
	s.Total++
}
