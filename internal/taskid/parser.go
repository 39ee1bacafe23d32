package taskid

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// ErrUnparseable is returned when an operation needs a definite location for
// an identifier that does not match the canonical format.
var ErrUnparseable = errors.New("unparseable task id")

// Parse creates a TaskID from its canonical string representation. It reports
// false instead of an error so that batches can be filtered without aborting.
func Parse(rawID string) (TaskID, bool) {
	matches := idRegex.FindStringSubmatch(rawID)
	if matches == nil {
		return TaskID{}, false
	}
	return TaskID{
		Year:     matches[1],
		Category: matches[2] != "",
		Series:   matches[3],
		Problem:  matches[4],
	}, true
}

// Resolve maps a canonical id to the document and anchor holding the task.
func Resolve(rawID string, variant Variant) (Location, error) {
	id, ok := Parse(rawID)
	if !ok {
		return Location{}, fmt.Errorf("can not resolve %q: %w", rawID, ErrUnparseable)
	}
	return id.Location(variant), nil
}

// Years parses a batch of ids and returns the distinct years they belong to in
// ascending numeric order. Ids that do not parse are skipped.
func Years(rawIDs []string) []string {
	seen := make(map[string]struct{})
	var years []string
	for _, rawID := range rawIDs {
		id, ok := Parse(rawID)
		if !ok {
			continue
		}
		if _, dup := seen[id.Year]; dup {
			continue
		}
		seen[id.Year] = struct{}{}
		years = append(years, id.Year)
	}

	sort.Slice(years, func(i, j int) bool {
		a, errA := strconv.Atoi(years[i])
		b, errB := strconv.Atoi(years[j])
		if errA != nil || errB != nil || a == b {
			// Unreachable for ids accepted by idRegex unless they overflow.
			return years[i] < years[j]
		}
		return a < b
	})
	return years
}
