package grabber

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/vk/kspgrab/internal/ctxlog"
	"github.com/vk/kspgrab/internal/extract"
	"github.com/vk/kspgrab/internal/model"
	"github.com/vk/kspgrab/internal/session"
	"github.com/vk/kspgrab/internal/status"
	"github.com/vk/kspgrab/internal/taskgraph"
	"github.com/vk/kspgrab/internal/taskid"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// DefaultTasksPath is the site path of the task descriptor file.
const DefaultTasksPath = "/tasks.json"

// ErrNotAuthenticated is returned by TaskStates when no session is active.
var ErrNotAuthenticated = errors.New("not authenticated")

// Fetcher is the transport the Grabber depends on.
type Fetcher interface {
	Document(ctx context.Context, ref string) (*html.Node, error)
	Text(ctx context.Context, ref string) ([]byte, error)
}

// Grabber composes the transport, session and parsers.
type Grabber struct {
	fetcher   Fetcher
	session   session.Provider
	extractor *extract.Extractor
	tasksPath string
}

// New creates a Grabber. An empty tasksPath selects DefaultTasksPath.
func New(fetcher Fetcher, sess session.Provider, extractor *extract.Extractor, tasksPath string) *Grabber {
	if tasksPath == "" {
		tasksPath = DefaultTasksPath
	}
	return &Grabber{
		fetcher:   fetcher,
		session:   sess,
		extractor: extractor,
		tasksPath: tasksPath,
	}
}

// StatusPath returns the site path of the status table for a year.
func StatusPath(year string) string {
	return "/cviciste/?year=" + url.QueryEscape(year)
}

// Assignment fetches the statement of the task with the given id.
func (g *Grabber) Assignment(ctx context.Context, id string) (*model.TaskAssignment, error) {
	return g.load(ctx, id, taskid.Assignment)
}

// Solution fetches the author solution of the task with the given id.
func (g *Grabber) Solution(ctx context.Context, id string) (*model.TaskAssignment, error) {
	return g.load(ctx, id, taskid.Solution)
}

func (g *Grabber) load(ctx context.Context, id string, variant taskid.Variant) (*model.TaskAssignment, error) {
	loc, err := taskid.Resolve(id, variant)
	if err != nil {
		return nil, err
	}
	logger := ctxlog.FromContext(ctx).With("task", id, "variant", variant.String())
	logger.Debug("Resolved task location.", "path", loc.Path, "anchor", loc.Anchor)

	doc, err := g.fetcher.Document(ctx, loc.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", loc.Path, err)
	}
	task, err := g.extractor.Extract(doc, loc.Anchor)
	if err != nil {
		return nil, err
	}
	logger.Info("Task extracted.", "name", task.Name)
	return task, nil
}

// TaskStates fetches the status table of every year mentioned by ids and
// returns the statuses keyed by task id. Unparseable ids are ignored. The
// tables are fetched concurrently and the first failure abandons the batch.
func (g *Grabber) TaskStates(ctx context.Context, ids []string) (map[string]model.TaskStatus, error) {
	if !g.session.IsAuthenticated(ctx) {
		return nil, ErrNotAuthenticated
	}
	logger := ctxlog.FromContext(ctx)

	years := taskid.Years(ids)
	logger.Debug("Fetching status tables.", "years", years)

	tables := make([][]model.TaskStatus, len(years))
	eg, egCtx := errgroup.WithContext(ctx)
	for i, year := range years {
		eg.Go(func() error {
			doc, err := g.fetcher.Document(egCtx, StatusPath(year))
			if err != nil {
				return fmt.Errorf("failed to fetch status table for year %s: %w", year, err)
			}
			rows, err := status.Parse(doc)
			if err != nil {
				return fmt.Errorf("failed to parse status table for year %s: %w", year, err)
			}
			tables[i] = rows
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// Merging in year order keeps last-write-wins deterministic.
	states := make(map[string]model.TaskStatus)
	for _, rows := range tables {
		for _, st := range rows {
			states[st.ID] = st
		}
	}
	logger.Info("Task states collected.", "years", len(years), "tasks", len(states))
	return states, nil
}

// Tasks fetches and decodes the task descriptor file.
func (g *Grabber) Tasks(ctx context.Context) (*taskgraph.TasksFile, error) {
	body, err := g.fetcher.Text(ctx, g.tasksPath)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", g.tasksPath, err)
	}
	return taskgraph.Decode(bytes.NewReader(body))
}

// Graph fetches the descriptor file and builds its prerequisite graph.
func (g *Grabber) Graph(ctx context.Context) (*taskgraph.Graph, error) {
	file, err := g.Tasks(ctx)
	if err != nil {
		return nil, err
	}
	graph, err := taskgraph.Build(file)
	if err != nil {
		return nil, err
	}
	ctxlog.FromContext(ctx).Debug("Task graph built.", "tasks", len(graph.Index), "links", len(graph.Edges))
	return graph, nil
}
