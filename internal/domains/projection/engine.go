package projection

import (
	"context"
	"errors"
	"sort"

	"portfolio-backend/internal/domains/document"
)

// Engine evaluates projection queries against the document store. It
// resolves references one level deep: a dereferenced document's own
// references project as their stored {"_ref": ...} form.
type Engine struct {
	repo document.RepositoryInterface
}

func NewEngine(repo document.RepositoryInterface) *Engine {
	return &Engine{repo: repo}
}

// ProjectSingleton evaluates a singleton query. A missing singleton
// returns document.ErrNotFound; callers decide how to surface that.
func (e *Engine) ProjectSingleton(ctx context.Context, q Query) (map[string]interface{}, error) {
	doc, err := e.repo.GetSingleton(ctx, q.Type)
	if err != nil {
		return nil, err
	}
	return e.projectDocument(ctx, *doc, q.Fields)
}

// ProjectList evaluates a list query: load, order, then project.
func (e *Engine) ProjectList(ctx context.Context, q Query) ([]map[string]interface{}, error) {
	docs, err := e.repo.ListByType(ctx, q.Type)
	if err != nil {
		return nil, err
	}

	sortDocuments(docs, q.Order)

	out := make([]map[string]interface{}, 0, len(docs))
	for _, doc := range docs {
		projected, err := e.projectDocument(ctx, doc, q.Fields)
		if err != nil {
			return nil, err
		}
		out = append(out, projected)
	}
	return out, nil
}

// projectDocument shapes one document. Every selected field is present in
// the output; absent source values project as explicit nil so templates
// can distinguish "not set" from "never asked for".
func (e *Engine) projectDocument(ctx context.Context, doc document.Document, fields []Field) (map[string]interface{}, error) {
	out := map[string]interface{}{
		"_id":   doc.ID,
		"_type": doc.Type,
	}

	for _, f := range fields {
		value, err := e.projectValue(ctx, doc.Data[f.source()], f)
		if err != nil {
			return nil, err
		}
		out[f.Name] = value
	}

	return out, nil
}

func (e *Engine) projectValue(ctx context.Context, value interface{}, f Field) (interface{}, error) {
	if value == nil {
		return nil, nil
	}

	if f.Deref {
		return e.deref(ctx, value, f.Fields)
	}

	if len(f.Fields) == 0 {
		return value, nil
	}

	switch v := value.(type) {
	case map[string]interface{}:
		return e.projectObject(ctx, v, f.Fields)
	case []interface{}:
		out := make([]interface{}, 0, len(v))
		for _, item := range v {
			obj, ok := item.(map[string]interface{})
			if !ok {
				out = append(out, nil)
				continue
			}
			projected, err := e.projectObject(ctx, obj, f.Fields)
			if err != nil {
				return nil, err
			}
			out = append(out, projected)
		}
		return out, nil
	default:
		// Shape mismatch between schema and stored data. Render as absent
		// rather than failing the whole page.
		return nil, nil
	}
}

func (e *Engine) projectObject(ctx context.Context, obj map[string]interface{}, fields []Field) (map[string]interface{}, error) {
	out := make(map[string]interface{}, len(fields))
	for _, f := range fields {
		value, err := e.projectValue(ctx, obj[f.source()], f)
		if err != nil {
			return nil, err
		}
		out[f.Name] = value
	}
	return out, nil
}

// deref resolves {"_ref": id} (or an array of them) to the referenced
// documents. Dangling references project as nil instead of erroring.
func (e *Engine) deref(ctx context.Context, value interface{}, fields []Field) (interface{}, error) {
	switch v := value.(type) {
	case map[string]interface{}:
		id, _ := v["_ref"].(string)
		if id == "" {
			return nil, nil
		}
		target, err := e.repo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, document.ErrNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return e.projectDocument(ctx, *target, fields)

	case []interface{}:
		// Reference arrays load in one query; stored order is kept and
		// dangling entries drop out.
		ids := make([]string, 0, len(v))
		for _, item := range v {
			ref, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			if id, _ := ref["_ref"].(string); id != "" {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			return []interface{}{}, nil
		}

		docs, err := e.repo.ListByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		byID := make(map[string]document.Document, len(docs))
		for _, d := range docs {
			byID[d.ID] = d
		}

		out := make([]interface{}, 0, len(ids))
		for _, id := range ids {
			target, ok := byID[id]
			if !ok {
				continue
			}
			projected, err := e.projectDocument(ctx, target, fields)
			if err != nil {
				return nil, err
			}
			out = append(out, projected)
		}
		return out, nil
	}

	return nil, nil
}

// sortDocuments orders in place by the query's clauses. String values
// compare lexicographically, which is correct for the ISO dates the store
// holds; numbers compare numerically.
func sortDocuments(docs []document.Document, order []OrderClause) {
	if len(order) == 0 {
		return
	}

	sort.SliceStable(docs, func(i, j int) bool {
		for _, clause := range order {
			a, aOK := sortKey(docs[i].Data[clause.Field])
			b, bOK := sortKey(docs[j].Data[clause.Field])

			if !aOK || !bOK {
				if aOK == bOK {
					continue
				}
				return aOK // present values before missing ones
			}

			cmp := compareKeys(a, b)
			if cmp == 0 {
				continue
			}
			if clause.Desc {
				return cmp > 0
			}
			return cmp < 0
		}
		return false
	})
}

type sortValue struct {
	str   string
	num   float64
	isNum bool
}

func sortKey(value interface{}) (sortValue, bool) {
	switch v := value.(type) {
	case string:
		if v == "" {
			return sortValue{}, false
		}
		return sortValue{str: v}, true
	case float64:
		return sortValue{num: v, isNum: true}, true
	case int:
		return sortValue{num: float64(v), isNum: true}, true
	}
	return sortValue{}, false
}

func compareKeys(a, b sortValue) int {
	if a.isNum && b.isNum {
		switch {
		case a.num < b.num:
			return -1
		case a.num > b.num:
			return 1
		}
		return 0
	}
	switch {
	case a.str < b.str:
		return -1
	case a.str > b.str:
		return 1
	}
	return 0
}
