package status

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/vk/kspgrab/internal/model"
	"golang.org/x/net/html"
)

const (
	rowSelector      = "table.zs-tasklist tr"
	unsubmittedClass = "zs-unsubmitted"
	submittedClass   = "zs-submitted"
)

// Cell positions within a row.
const (
	cellID = iota
	cellType
	cellName
	_
	cellScore
)

// scoreRegex matches "<earned> / <max>" where earned may be a placeholder
// such as an en dash.
var scoreRegex = regexp.MustCompile(`((–|\.|\d)+) *\/ *(\d+)`)

// ErrMalformedRow is returned for rows with fewer cells than the table layout
// requires.
var ErrMalformedRow = errors.New("malformed status row")

// ScoreError reports a score cell that does not look like "<earned>/<max>".
type ScoreError struct {
	Row  int
	Text string
}

// Error implements the error interface for ScoreError.
func (e *ScoreError) Error() string {
	return fmt.Sprintf("row %d: can not parse score %q", e.Row, e.Text)
}

// Parse returns one TaskStatus per data row of the status table in doc, in
// document order.
func Parse(doc *html.Node) ([]model.TaskStatus, error) {
	rows := goquery.NewDocumentFromNode(doc).Find(rowSelector)

	statuses := make([]model.TaskStatus, 0, max(rows.Length()-1, 0))
	for i := 1; i < rows.Length(); i++ {
		st, err := parseRow(i, rows.Eq(i))
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, st)
	}
	return statuses, nil
}

func parseRow(index int, row *goquery.Selection) (model.TaskStatus, error) {
	cells := row.ChildrenFiltered("td, th")
	if cells.Length() <= cellScore {
		return model.TaskStatus{}, fmt.Errorf("row %d has %d cells: %w", index, cells.Length(), ErrMalformedRow)
	}
	cell := func(i int) string {
		return strings.TrimSpace(cells.Eq(i).Text())
	}

	scoreText := cell(cellScore)
	matches := scoreRegex.FindStringSubmatch(scoreText)
	if matches == nil {
		return model.TaskStatus{}, &ScoreError{Row: index, Text: scoreText}
	}
	maxPoints, err := strconv.Atoi(matches[3])
	if err != nil {
		return model.TaskStatus{}, &ScoreError{Row: index, Text: scoreText}
	}

	return model.TaskStatus{
		ID:        cell(cellID),
		Type:      cell(cellType),
		Name:      cell(cellName),
		Submitted: !row.HasClass(unsubmittedClass),
		Solved:    row.HasClass(submittedClass),
		Points:    earnedPoints(matches[1]),
		MaxPoints: maxPoints,
	}, nil
}

// earnedPoints converts the earned token, treating placeholders as zero.
func earnedPoints(token string) int {
	points, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0
	}
	return int(points)
}
