package taskgraph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(links []Link[*Descriptor]) []Link[string] {
	out := make([]Link[string], 0, len(links))
	for _, l := range links {
		out = append(out, Link[string]{Source: l.Source.ID, Target: l.Target.ID})
	}
	return out
}

func TestBuildIndex(t *testing.T) {
	descs := []Descriptor{{ID: "a"}, {ID: "b", Requires: []string{"a"}}, {ID: "c"}}

	index, err := BuildIndex(descs)
	require.NoError(t, err)
	require.Len(t, index, 3)
	for i := range descs {
		assert.Same(t, &descs[i], index[descs[i].ID])
	}
}

func TestBuildIndex_Duplicate(t *testing.T) {
	_, err := BuildIndex([]Descriptor{{ID: "a"}, {ID: "b"}, {ID: "a", Comment: "again"}})
	require.ErrorIs(t, err, ErrDuplicateID)
	assert.Contains(t, err.Error(), `"a"`)
}

func TestBuildEdges(t *testing.T) {
	testCases := []struct {
		name     string
		descs    []Descriptor
		expected []Link[string]
	}{
		{
			name:     "two tasks",
			descs:    []Descriptor{{ID: "a", Requires: []string{}}, {ID: "b", Requires: []string{"a"}}},
			expected: []Link[string]{{Source: "a", Target: "b"}},
		},
		{
			name: "fan in and fan out",
			descs: []Descriptor{
				{ID: "root"},
				{ID: "left", Requires: []string{"root"}},
				{ID: "right", Requires: []string{"root"}},
				{ID: "join", Requires: []string{"left", "right"}},
			},
			expected: []Link[string]{
				{Source: "root", Target: "left"},
				{Source: "root", Target: "right"},
				{Source: "left", Target: "join"},
				{Source: "right", Target: "join"},
			},
		},
		{
			name: "prerequisite declared later",
			descs: []Descriptor{
				{ID: "b", Requires: []string{"a"}},
				{ID: "a"},
			},
			expected: []Link[string]{{Source: "a", Target: "b"}},
		},
		{
			name:     "no prerequisites",
			descs:    []Descriptor{{ID: "a"}, {ID: "b"}},
			expected: []Link[string]{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			edges, err := BuildEdges(tc.descs)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ids(edges))
		})
	}
}

func TestBuildEdges_LinksShareIndexIdentity(t *testing.T) {
	descs := []Descriptor{{ID: "a"}, {ID: "b", Requires: []string{"a"}}, {ID: "c", Requires: []string{"a"}}}

	edges, err := BuildEdges(descs)
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Same(t, edges[0].Source, edges[1].Source)
	assert.Same(t, &descs[0], edges[0].Source)
}

func TestBuildEdges_MissingPrerequisite(t *testing.T) {
	_, err := BuildEdges([]Descriptor{{ID: "a"}, {ID: "b", Requires: []string{"a", "ghost"}}})
	require.ErrorIs(t, err, ErrMissingPrerequisite)
	assert.Contains(t, err.Error(), `"ghost"`)
}

func TestBuildEdges_Duplicate(t *testing.T) {
	_, err := BuildEdges([]Descriptor{{ID: "a"}, {ID: "a"}})
	require.ErrorIs(t, err, ErrDuplicateID)
}

func TestDecode(t *testing.T) {
	file, err := Decode(strings.NewReader(`{
		"tasks": [
			{"id": "29-Z1-1", "requires": []},
			{"id": "29-Z1-2", "requires": ["29-Z1-1"], "comment": "harder"}
		],
		"clusters": {"zacatecnici": ["29-Z1-1", "29-Z1-2"]}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []Descriptor{
		{ID: "29-Z1-1", Requires: []string{}},
		{ID: "29-Z1-2", Requires: []string{"29-Z1-1"}, Comment: "harder"},
	}, file.Tasks)
	assert.Equal(t, map[string][]string{"zacatecnici": {"29-Z1-1", "29-Z1-2"}}, file.Clusters)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(strings.NewReader(`{"tasks": [`))
	require.Error(t, err)
}
