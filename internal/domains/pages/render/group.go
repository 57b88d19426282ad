package render

// Group is an ordered bucket of projected documents sharing one label.
type Group struct {
	Key   string                   `json:"key"`
	Items []map[string]interface{} `json:"items"`
}

// DefaultGroupKey labels items whose grouping field is unset or blank.
const DefaultGroupKey = "General"

// GroupBy buckets items by the value of a free-text field, preserving the
// input order both across groups (first occurrence wins) and within each
// group. Items without the field fall into fallback; pass "" to use
// DefaultGroupKey.
func GroupBy(items []map[string]interface{}, field, fallback string) []Group {
	if fallback == "" {
		fallback = DefaultGroupKey
	}

	groups := make([]Group, 0)
	index := make(map[string]int)

	for _, item := range items {
		key, _ := item[field].(string)
		if key == "" {
			key = fallback
		}

		i, seen := index[key]
		if !seen {
			i = len(groups)
			index[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Items = append(groups[i].Items, item)
	}

	return groups
}
