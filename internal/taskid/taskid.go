package taskid

import (
	"fmt"
	"regexp"
	"strings"
)

// idRegex matches the whole canonical id: year, optional category marker,
// series and problem number.
var idRegex = regexp.MustCompile(`^(\d+)-(Z?)(\d)-(\d)$`)

// String serializes the TaskID back into its canonical form.
func (id TaskID) String() string {
	var sb strings.Builder
	sb.WriteString(id.Year)
	sb.WriteRune('-')
	if id.Category {
		sb.WriteRune('Z')
	}
	sb.WriteString(id.Series)
	sb.WriteRune('-')
	sb.WriteString(id.Problem)
	return sb.String()
}

// Anchor returns the id of the element that starts the task in its document.
func (id TaskID) Anchor() string {
	return "task-" + id.String()
}

// Location builds the site-relative document path and anchor of the task.
// Category tasks live under /z/, the rest under /h/.
func (id TaskID) Location(variant Variant) Location {
	family := "h"
	if id.Category {
		family = "z"
	}
	return Location{
		Path:   fmt.Sprintf("/%s/ulohy/%s/%s%s.html", family, id.Year, variant, id.Series),
		Anchor: id.Anchor(),
	}
}
