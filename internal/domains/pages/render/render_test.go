package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(fields map[string]interface{}) map[string]interface{} { return fields }

func TestGroupByPreservesFirstOccurrenceOrder(t *testing.T) {
	// Two labelled "University", one without a label: the unlabelled item
	// lands in General, after University because it appears later.
	items := []map[string]interface{}{
		item(map[string]interface{}{"degree": "PhD", "section": "University"}),
		item(map[string]interface{}{"degree": "MSc", "section": "University"}),
		item(map[string]interface{}{"degree": "Diploma"}),
	}

	groups := GroupBy(items, "section", "")
	require.Len(t, groups, 2)

	assert.Equal(t, "University", groups[0].Key)
	assert.Len(t, groups[0].Items, 2)
	assert.Equal(t, "PhD", groups[0].Items[0]["degree"])
	assert.Equal(t, "MSc", groups[0].Items[1]["degree"])

	assert.Equal(t, "General", groups[1].Key)
	assert.Equal(t, "Diploma", groups[1].Items[0]["degree"])
}

func TestGroupByNilSectionValue(t *testing.T) {
	items := []map[string]interface{}{
		item(map[string]interface{}{"title": "A", "category": nil}),
		item(map[string]interface{}{"title": "B", "category": "Conference"}),
	}

	groups := GroupBy(items, "category", "")
	require.Len(t, groups, 2)
	assert.Equal(t, "General", groups[0].Key)
	assert.Equal(t, "Conference", groups[1].Key)
}

func TestGroupByEmptyInput(t *testing.T) {
	groups := GroupBy(nil, "section", "")
	assert.Empty(t, groups)
}

func TestGroupByWithinGroupOrderFollowsInput(t *testing.T) {
	// Year-sorted publications keep their sorted order inside each
	// category bucket.
	items := []map[string]interface{}{
		item(map[string]interface{}{"title": "P-2024", "category": "Journal"}),
		item(map[string]interface{}{"title": "C-2023", "category": "Conference"}),
		item(map[string]interface{}{"title": "P-2021", "category": "Journal"}),
	}

	groups := GroupBy(items, "category", "")
	require.Len(t, groups, 2)
	assert.Equal(t, "Journal", groups[0].Key)
	assert.Equal(t, "P-2024", groups[0].Items[0]["title"])
	assert.Equal(t, "P-2021", groups[0].Items[1]["title"])
	assert.Equal(t, "C-2023", groups[1].Items[0]["title"])
}

func TestResolveIndexed(t *testing.T) {
	container := map[string]interface{}{
		"skillsList": []interface{}{
			map[string]interface{}{"name": "Go"},
			map[string]interface{}{"name": "Python"},
		},
	}

	first, ok := ResolveIndexed(container, "skillsList", 1)
	require.True(t, ok)
	assert.Equal(t, "Go", first["name"])

	second, ok := ResolveIndexed(container, "skillsList", 2)
	require.True(t, ok)
	assert.Equal(t, "Python", second["name"])

	_, ok = ResolveIndexed(container, "skillsList", 3)
	assert.False(t, ok, "index past end of list")

	_, ok = ResolveIndexed(container, "skillsList", 0)
	assert.False(t, ok, "indices are 1-based")

	_, ok = ResolveIndexed(nil, "skillsList", 1)
	assert.False(t, ok)
}

func TestSelectIndexedSkipsBrokenEntries(t *testing.T) {
	entries := []interface{}{
		map[string]interface{}{
			"skillGroup": map[string]interface{}{
				"skillsList": []interface{}{map[string]interface{}{"name": "Go"}},
			},
			"skillIndex": float64(1),
		},
		// Dangling reference projected as nil.
		map[string]interface{}{"skillGroup": nil, "skillIndex": float64(1)},
		// Index past the end of the target list.
		map[string]interface{}{
			"skillGroup": map[string]interface{}{
				"skillsList": []interface{}{map[string]interface{}{"name": "R"}},
			},
			"skillIndex": float64(5),
		},
	}

	picked := SelectIndexed(entries, "skillGroup", "skillIndex", "skillsList")
	require.Len(t, picked, 1)
	assert.Equal(t, "Go", picked[0]["name"])
}

func TestSelectReferenced(t *testing.T) {
	entries := []interface{}{
		map[string]interface{}{"title": "Kept"},
		nil,
		"garbage",
	}
	out := SelectReferenced(entries)
	require.Len(t, out, 1)
	assert.Equal(t, "Kept", out[0]["title"])
}

func TestLightboxCyclicNavigation(t *testing.T) {
	lb := NewLightbox(3)
	lb.OpenAt(2)
	require.True(t, lb.Open)

	lb.Next()
	assert.Equal(t, 0, lb.Index, "last wraps to first")

	lb.Prev()
	assert.Equal(t, 2, lb.Index, "first wraps to last")
}

func TestLightboxSingleImageFixedPoint(t *testing.T) {
	lb := NewLightbox(1)
	lb.OpenAt(0)

	lb.Next()
	assert.Equal(t, 0, lb.Index)
	lb.Prev()
	assert.Equal(t, 0, lb.Index)
}

func TestLightboxKeyboard(t *testing.T) {
	lb := NewLightbox(4)

	// Keys do nothing while closed.
	lb.HandleKey(KeyArrowRight)
	assert.Equal(t, 0, lb.Index)
	assert.False(t, lb.Open)

	lb.OpenAt(1)
	lb.HandleKey(KeyArrowRight)
	assert.Equal(t, 2, lb.Index)
	lb.HandleKey(KeyArrowLeft)
	assert.Equal(t, 1, lb.Index)

	lb.HandleKey("Enter")
	assert.Equal(t, 1, lb.Index)
	assert.True(t, lb.Open)

	lb.HandleKey(KeyEscape)
	assert.False(t, lb.Open)
}

func TestLightboxOpenAtOutOfRange(t *testing.T) {
	lb := NewLightbox(2)
	lb.OpenAt(5)
	assert.False(t, lb.Open)
}

func TestViewStateInitialShowsEverything(t *testing.T) {
	vs := NewViewState()
	assert.Equal(t, "", vs.Category)
	assert.Equal(t, ModeGrid, vs.Mode)
	assert.Equal(t, SortNewest, vs.Sort)

	items := []map[string]interface{}{
		item(map[string]interface{}{"title": "A", "category": "Award", "date": "2024-01-01"}),
		item(map[string]interface{}{"title": "B", "category": "Grant", "date": "2022-05-01"}),
	}
	out := vs.Apply(items, "category", "date")
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0]["title"])
}

func TestViewStateCategoryFilter(t *testing.T) {
	vs := NewViewState()
	vs.SetCategory("Award")

	items := []map[string]interface{}{
		item(map[string]interface{}{"title": "A", "category": "Award", "date": "2024-01-01"}),
		item(map[string]interface{}{"title": "B", "category": "Grant", "date": "2023-01-01"}),
		item(map[string]interface{}{"title": "C", "category": "Award", "date": "2022-01-01"}),
	}
	out := vs.Apply(items, "category", "date")
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0]["title"])
	assert.Equal(t, "C", out[1]["title"])

	vs.ClearCategory()
	assert.Len(t, vs.Apply(items, "category", "date"), 3)
}

func TestViewStateSortToggle(t *testing.T) {
	vs := NewViewState()
	items := []map[string]interface{}{
		item(map[string]interface{}{"title": "Old", "date": "2019-01-01"}),
		item(map[string]interface{}{"title": "New", "date": "2024-01-01"}),
		item(map[string]interface{}{"title": "Undated"}),
	}

	out := vs.Apply(items, "category", "date")
	assert.Equal(t, "New", out[0]["title"])
	assert.Equal(t, "Undated", out[2]["title"], "undated items sort last")

	vs.SetSort(SortOldest)
	out = vs.Apply(items, "category", "date")
	assert.Equal(t, "Old", out[0]["title"])
	assert.Equal(t, "Undated", out[2]["title"])
}

func TestViewStateIgnoresUnknownTransitions(t *testing.T) {
	vs := NewViewState()
	vs.SetMode("carousel")
	vs.SetSort("alphabetical")
	assert.Equal(t, ModeGrid, vs.Mode)
	assert.Equal(t, SortNewest, vs.Sort)

	vs.SetMode(ModeTimeline)
	assert.Equal(t, ModeTimeline, vs.Mode)
}
