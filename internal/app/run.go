package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/vk/kspgrab/internal/taskgraph"
	"github.com/vk/kspgrab/internal/taskid"
	"gopkg.in/yaml.v3"
)

// locationView is the rendered form of a resolved task location.
type locationView struct {
	ID       string `json:"id" yaml:"id"`
	Category bool   `json:"category" yaml:"category"`
	URL      string `json:"url" yaml:"url"`
	Anchor   string `json:"anchor" yaml:"anchor"`
}

// graphView is the rendered form of the task graph, with links by id.
type graphView struct {
	Tasks    []taskgraph.Descriptor   `json:"tasks" yaml:"tasks"`
	Clusters map[string][]string      `json:"clusters" yaml:"clusters"`
	Links    []taskgraph.Link[string] `json:"links" yaml:"links"`
}

// Locate prints where a task lives without fetching anything.
func (a *App) Locate(ctx context.Context, id string, variant taskid.Variant) error {
	loc, err := taskid.Resolve(id, variant)
	if err != nil {
		return err
	}
	parsed, _ := taskid.Parse(id)
	u, err := a.client.URL(loc.Path)
	if err != nil {
		return err
	}
	return a.render(locationView{ID: id, Category: parsed.Category, URL: u.String(), Anchor: loc.Anchor})
}

// Assignment prints the statement of a task.
func (a *App) Assignment(ctx context.Context, id string) error {
	task, err := a.grabber.Assignment(a.context(ctx), id)
	if err != nil {
		return fmt.Errorf("failed to grab assignment of %s: %w", id, err)
	}
	return a.render(task)
}

// Solution prints the author solution of a task.
func (a *App) Solution(ctx context.Context, id string) error {
	task, err := a.grabber.Solution(a.context(ctx), id)
	if err != nil {
		return fmt.Errorf("failed to grab solution of %s: %w", id, err)
	}
	return a.render(task)
}

// Status prints the submission state of the given tasks' years.
func (a *App) Status(ctx context.Context, ids []string) error {
	states, err := a.grabber.TaskStates(a.context(ctx), ids)
	if err != nil {
		return fmt.Errorf("failed to grab task states: %w", err)
	}
	return a.render(states)
}

// Graph prints the prerequisite graph. With check set, prerequisite cycles
// are reported as errors.
func (a *App) Graph(ctx context.Context, check bool) error {
	ctx = a.context(ctx)
	graph, err := a.grabber.Graph(ctx)
	if err != nil {
		return fmt.Errorf("failed to build task graph: %w", err)
	}
	if check {
		if err := graph.CheckAcyclic(); err != nil {
			return err
		}
		a.logger.Info("Task graph is acyclic.", "tasks", len(graph.Index))
	}
	return a.render(graphView{Tasks: graph.Tasks, Clusters: graph.Clusters, Links: graph.IDLinks()})
}

// render writes v to the output in the configured format.
func (a *App) render(v any) error {
	if a.output == FormatYAML {
		enc := yaml.NewEncoder(a.outW)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(a.outW)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
