package render

import "sort"

// View modes and sort orders a listing page can be put into.
const (
	ModeGrid     = "grid"
	ModeTimeline = "timeline"

	SortNewest = "newest"
	SortOldest = "oldest"
)

// ViewState models a listing page's client-side controls: an optional
// category filter, a view mode and a sort order. The initial state shows
// every item in the default order; state changes only through the
// setters, never as a side effect of rendering.
type ViewState struct {
	Category string `json:"category"` // empty means all categories
	Mode     string `json:"mode"`
	Sort     string `json:"sort"`
}

func NewViewState() *ViewState {
	return &ViewState{Mode: ModeGrid, Sort: SortNewest}
}

func (v *ViewState) SetCategory(category string) {
	v.Category = category
}

func (v *ViewState) ClearCategory() {
	v.Category = ""
}

// SetMode switches the view mode. Unknown modes are ignored.
func (v *ViewState) SetMode(mode string) {
	if mode == ModeGrid || mode == ModeTimeline {
		v.Mode = mode
	}
}

// SetSort switches the sort order. Unknown orders are ignored.
func (v *ViewState) SetSort(order string) {
	if order == SortNewest || order == SortOldest {
		v.Sort = order
	}
}

// Apply filters items to the selected category and orders them by the
// named date field. Items without the date field sort after dated ones
// in either direction. The input slice is left untouched.
func (v *ViewState) Apply(items []map[string]interface{}, categoryField, dateField string) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		if v.Category != "" {
			if c, _ := item[categoryField].(string); c != v.Category {
				continue
			}
		}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, _ := out[i][dateField].(string)
		b, _ := out[j][dateField].(string)
		if a == "" || b == "" {
			return a != "" && b == ""
		}
		if v.Sort == SortOldest {
			return a < b
		}
		return a > b
	})

	return out
}
