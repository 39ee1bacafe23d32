package taskgraph

import (
	"errors"
	"fmt"
)

// ErrCycle is returned by CheckAcyclic when prerequisites form a loop.
var ErrCycle = errors.New("prerequisite cycle")

// Graph is an immutable snapshot of the descriptor set: the id index plus the
// validated edge list.
type Graph struct {
	Tasks    []Descriptor
	Clusters map[string][]string
	Index    map[string]*Descriptor
	Edges    []Link[*Descriptor]
}

// Build validates file and assembles its Graph.
func Build(file *TasksFile) (*Graph, error) {
	index, err := BuildIndex(file.Tasks)
	if err != nil {
		return nil, err
	}
	edges, err := linkDescriptors(file.Tasks, index)
	if err != nil {
		return nil, err
	}
	return &Graph{
		Tasks:    file.Tasks,
		Clusters: file.Clusters,
		Index:    index,
		Edges:    edges,
	}, nil
}

// Prerequisites returns the descriptors id directly requires.
func (g *Graph) Prerequisites(id string) []*Descriptor {
	var out []*Descriptor
	for _, e := range g.Edges {
		if e.Target.ID == id {
			out = append(out, e.Source)
		}
	}
	return out
}

// Dependents returns the descriptors that directly require id.
func (g *Graph) Dependents(id string) []*Descriptor {
	var out []*Descriptor
	for _, e := range g.Edges {
		if e.Source.ID == id {
			out = append(out, e.Target)
		}
	}
	return out
}

// IDLinks returns the edges with descriptors replaced by their ids.
func (g *Graph) IDLinks() []Link[string] {
	out := make([]Link[string], 0, len(g.Edges))
	for _, e := range g.Edges {
		out = append(out, Link[string]{Source: e.Source.ID, Target: e.Target.ID})
	}
	return out
}

// CheckAcyclic reports a cycle in the prerequisite relation using DFS.
func (g *Graph) CheckAcyclic() error {
	visiting := make(map[string]bool)
	visited := make(map[string]bool)

	var visit func(d *Descriptor) error
	visit = func(d *Descriptor) error {
		visiting[d.ID] = true
		for _, id := range d.Requires {
			if visiting[id] {
				return fmt.Errorf("%w involving %q", ErrCycle, id)
			}
			if !visited[id] {
				if err := visit(g.Index[id]); err != nil {
					return err
				}
			}
		}
		delete(visiting, d.ID)
		visited[d.ID] = true
		return nil
	}

	for i := range g.Tasks {
		d := &g.Tasks[i]
		if !visited[d.ID] {
			if err := visit(d); err != nil {
				return err
			}
		}
	}
	return nil
}
