package render

// Showcase selections point into a referenced document's embedded list by
// 1-based position. A selection survives only if its reference resolved
// and its index lands inside the list; everything else is silently
// skipped, so a stale pick never breaks the page.

// ResolveIndexed picks the index-th element (1-based) of the named list
// field inside container.
func ResolveIndexed(container map[string]interface{}, listField string, index int) (map[string]interface{}, bool) {
	if container == nil || index < 1 {
		return nil, false
	}

	list, ok := container[listField].([]interface{})
	if !ok || index > len(list) {
		return nil, false
	}

	item, ok := list[index-1].(map[string]interface{})
	if !ok {
		return nil, false
	}
	return item, true
}

// SelectIndexed walks showcase entries of the shape
// {<refField>: <projected doc>, <indexField>: <1-based number>} and
// resolves each into the picked element of the target's listField.
func SelectIndexed(entries []interface{}, refField, indexField, listField string) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(entries))

	for _, raw := range entries {
		entry, ok := raw.(map[string]interface{})
		if !ok {
			continue
		}

		target, ok := entry[refField].(map[string]interface{})
		if !ok {
			continue
		}

		index, ok := toInt(entry[indexField])
		if !ok {
			continue
		}

		item, ok := ResolveIndexed(target, listField, index)
		if !ok {
			continue
		}
		out = append(out, item)
	}

	return out
}

// SelectReferenced flattens showcase entries that are plain dereferenced
// documents, dropping entries whose reference did not resolve.
func SelectReferenced(entries []interface{}) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(entries))
	for _, raw := range entries {
		if doc, ok := raw.(map[string]interface{}); ok {
			out = append(out, doc)
		}
	}
	return out
}

func toInt(value interface{}) (int, bool) {
	switch n := value.(type) {
	case float64:
		return int(n), true
	case int:
		return n, true
	}
	return 0, false
}
