package taskgraph

// Descriptor is one entry of the task list.
type Descriptor struct {
	ID       string   `json:"id" yaml:"id"`
	Requires []string `json:"requires" yaml:"requires"`
	Comment  string   `json:"comment,omitempty" yaml:"comment,omitempty"`
}

// TasksFile is the decoded descriptor file. Clusters are carried through
// untouched.
type TasksFile struct {
	Tasks    []Descriptor        `json:"tasks" yaml:"tasks"`
	Clusters map[string][]string `json:"clusters" yaml:"clusters"`
}

// Link is a directed edge: Target requires Source.
type Link[T any] struct {
	Source T `json:"source" yaml:"source"`
	Target T `json:"target" yaml:"target"`
}
