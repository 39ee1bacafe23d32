package extract

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/vk/kspgrab/internal/dom"
	"github.com/vk/kspgrab/internal/links"
	"github.com/vk/kspgrab/internal/model"
	"golang.org/x/net/html"
)

// ErrAnchorNotFound is returned when the document has no element with the
// requested anchor id.
var ErrAnchorNotFound = errors.New("anchor not found")

// Extractor pulls task content out of contest pages.
type Extractor struct {
	locale     Locale
	titleRegex *regexp.Regexp
	skip       map[string]struct{}
}

// New creates an Extractor for the given locale.
func New(locale Locale) *Extractor {
	skip := make(map[string]struct{}, len(locale.SkipParagraphs))
	for _, p := range locale.SkipParagraphs {
		skip[dom.NormalizeSpace(p)] = struct{}{}
	}
	return &Extractor{
		locale:     locale,
		titleRegex: regexp.MustCompile(`^(\d+-Z?\d+-\d+) (.*?)( \((\d+) ` + regexp.QuoteMeta(locale.PointsWord) + `.*\))?$`),
		skip:       skip,
	}
}

// Extract returns the task starting at the element with id anchorID. Links in
// the extracted markup are rewritten against the document's <base>, and doc
// is modified in the process.
func (x *Extractor) Extract(doc *html.Node, anchorID string) (*model.TaskAssignment, error) {
	title := dom.ElementByID(doc, anchorID)
	if title == nil {
		return nil, fmt.Errorf("document does not contain %q: %w", anchorID, ErrAnchorNotFound)
	}

	rewriter := links.ForDocument(doc)
	rewriter.FixAll(title)

	task := x.parseTitle(anchorID, strings.TrimSpace(dom.TextContent(title)))

	description, err := x.collect(title.NextSibling, rewriter)
	if err != nil {
		return nil, fmt.Errorf("failed to collect content of %q: %w", anchorID, err)
	}
	task.Description = description

	task.TitleHTML, err = dom.OuterHTML(title)
	if err != nil {
		return nil, fmt.Errorf("failed to render title of %q: %w", anchorID, err)
	}
	return task, nil
}

// parseTitle splits "32-2-2 Name (12 bodů)" into its parts. Titles that do
// not follow the pattern fall back to the anchor id and a placeholder name.
func (x *Extractor) parseTitle(anchorID, text string) *model.TaskAssignment {
	matches := x.titleRegex.FindStringSubmatch(text)
	if matches == nil {
		return &model.TaskAssignment{ID: anchorID, Name: x.locale.UnknownName}
	}

	task := &model.TaskAssignment{
		ID:   strings.TrimSpace(matches[1]),
		Name: strings.TrimSpace(matches[2]),
	}
	if matches[4] != "" {
		if points, err := strconv.Atoi(matches[4]); err == nil {
			task.Points = &points
		}
	}
	return task
}

// collect runs the sibling scan from start and renders the accepted nodes.
func (x *Extractor) collect(start *html.Node, rewriter *links.Rewriter) (string, error) {
	var sb strings.Builder
	state := skippingSeparators

	for n := range dom.HTML.Siblings(start) {
		next, act := x.transition(state, n)
		if act == actStop {
			break
		}
		if state == skippingSeparators && next == copying {
			dropMarkerImage(n)
		}
		state = next

		switch act {
		case actCopyElement:
			rewriter.FixAll(n)
			markup, err := dom.OuterHTML(n)
			if err != nil {
				return "", err
			}
			sb.WriteString(markup)
			sb.WriteByte('\n')
		case actCopyText:
			sb.WriteString(dom.EscapeText(n.Data))
		}
	}
	return sb.String(), nil
}
