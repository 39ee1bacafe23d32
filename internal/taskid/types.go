package taskid

// Variant selects which of the two documents published for a series is wanted.
type Variant int

const (
	// Assignment is the document with task statements.
	Assignment Variant = iota
	// Solution is the document with author solutions.
	Solution
)

// String returns the path segment used for the variant.
func (v Variant) String() string {
	if v == Solution {
		return "reseni"
	}
	return "zadani"
}

// TaskID is the structured form of a canonical task identifier. All components
// are kept as strings so that formatting (leading zeros) survives a round trip.
type TaskID struct {
	Year     string
	Category bool // true when the `Z` marker is present.
	Series   string
	Problem  string
}

// Location points at a task inside a document on the contest site.
type Location struct {
	// Path is the site-relative path of the HTML document containing the task.
	Path string
	// Anchor is the id of the element where the task begins.
	Anchor string
}
