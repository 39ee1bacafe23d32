package taskgraph

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var (
	// ErrDuplicateID is returned when two descriptors share an id.
	ErrDuplicateID = errors.New("duplicate task id")
	// ErrMissingPrerequisite is returned when a prerequisite id does not
	// resolve to any descriptor.
	ErrMissingPrerequisite = errors.New("missing prerequisite")
)

// Decode reads a descriptor file in its JSON form.
func Decode(r io.Reader) (*TasksFile, error) {
	var file TasksFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode tasks file: %w", err)
	}
	return &file, nil
}

// BuildIndex maps every descriptor id to its descriptor. The returned
// pointers refer into descs.
func BuildIndex(descs []Descriptor) (map[string]*Descriptor, error) {
	index := make(map[string]*Descriptor, len(descs))
	for i := range descs {
		d := &descs[i]
		if _, exists := index[d.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, d.ID)
		}
		index[d.ID] = d
	}
	return index, nil
}

// BuildEdges returns one link per (prerequisite, dependent) pair, in
// descriptor order and then prerequisite order.
func BuildEdges(descs []Descriptor) ([]Link[*Descriptor], error) {
	index, err := BuildIndex(descs)
	if err != nil {
		return nil, err
	}
	return linkDescriptors(descs, index)
}

func linkDescriptors(descs []Descriptor, index map[string]*Descriptor) ([]Link[*Descriptor], error) {
	var edges []Link[*Descriptor]
	for i := range descs {
		target := &descs[i]
		for _, id := range target.Requires {
			source, ok := index[id]
			if !ok {
				return nil, fmt.Errorf("%w: task %q requires unknown %q", ErrMissingPrerequisite, target.ID, id)
			}
			edges = append(edges, Link[*Descriptor]{Source: source, Target: target})
		}
	}
	return edges, nil
}
