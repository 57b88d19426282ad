package projection

import (
	"context"
	"testing"
	"time"

	"portfolio-backend/internal/domains/document"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	docs []document.Document
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*document.Document, error) {
	for _, doc := range s.docs {
		if doc.ID == id {
			d := doc
			return &d, nil
		}
	}
	return nil, document.ErrNotFound
}

func (s *stubRepo) GetSingleton(_ context.Context, docType string) (*document.Document, error) {
	for _, doc := range s.docs {
		if doc.Type == docType {
			d := doc
			return &d, nil
		}
	}
	return nil, document.ErrNotFound
}

func (s *stubRepo) ListByType(_ context.Context, docType string) ([]document.Document, error) {
	out := make([]document.Document, 0)
	for _, doc := range s.docs {
		if doc.Type == docType {
			out = append(out, doc)
		}
	}
	return out, nil
}

func (s *stubRepo) ListByIDs(_ context.Context, ids []string) ([]document.Document, error) {
	out := make([]document.Document, 0)
	for _, id := range ids {
		if doc, err := s.GetByID(context.Background(), id); err == nil {
			out = append(out, *doc)
		}
	}
	return out, nil
}

func (s *stubRepo) CountByType(_ context.Context, docType string) (int, error) {
	docs, _ := s.ListByType(context.Background(), docType)
	return len(docs), nil
}

func (s *stubRepo) Create(_ context.Context, doc *document.Document) error {
	s.docs = append(s.docs, *doc)
	return nil
}

func (s *stubRepo) Update(_ context.Context, _ *document.Document) error { return nil }
func (s *stubRepo) Delete(_ context.Context, _ string) error             { return nil }

func edu(id, degree, startDate string) document.Document {
	data := map[string]interface{}{"degree": degree}
	if startDate != "" {
		data["startDate"] = startDate
	}
	return document.Document{ID: id, Type: "education", Data: data, CreatedAt: time.Now()}
}

func TestProjectListOrderDesc(t *testing.T) {
	repo := &stubRepo{docs: []document.Document{
		edu("a", "BSc", "2015-01-01"),
		edu("b", "PhD", "2023-09-01"),
		edu("c", "MSc", "2019-06-01"),
	}}
	engine := NewEngine(repo)

	out, err := engine.ProjectList(context.Background(), Query{
		Type:   "education",
		Order:  []OrderClause{{Field: "startDate", Desc: true}},
		Fields: []Field{F("degree")},
	})
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "PhD", out[0]["degree"])
	assert.Equal(t, "MSc", out[1]["degree"])
	assert.Equal(t, "BSc", out[2]["degree"])
}

func TestProjectListMissingSortFieldSortsLast(t *testing.T) {
	repo := &stubRepo{docs: []document.Document{
		edu("a", "No date", ""),
		edu("b", "Dated", "2020-01-01"),
	}}
	engine := NewEngine(repo)

	out, err := engine.ProjectList(context.Background(), Query{
		Type:   "education",
		Order:  []OrderClause{{Field: "startDate", Desc: true}},
		Fields: []Field{F("degree")},
	})
	require.NoError(t, err)
	assert.Equal(t, "Dated", out[0]["degree"])
	assert.Equal(t, "No date", out[1]["degree"])
}

func TestProjectNumericOrder(t *testing.T) {
	pub := func(id string, year float64) document.Document {
		return document.Document{ID: id, Type: "publication", Data: map[string]interface{}{
			"title": id, "year": year,
		}}
	}
	repo := &stubRepo{docs: []document.Document{pub("p1", 2019), pub("p2", 2024), pub("p3", 2021)}}
	engine := NewEngine(repo)

	out, err := engine.ProjectList(context.Background(), Query{
		Type:   "publication",
		Order:  []OrderClause{{Field: "year", Desc: true}},
		Fields: []Field{F("title")},
	})
	require.NoError(t, err)
	assert.Equal(t, "p2", out[0]["title"])
	assert.Equal(t, "p3", out[1]["title"])
	assert.Equal(t, "p1", out[2]["title"])
}

func TestAbsentFieldsProjectAsExplicitNil(t *testing.T) {
	repo := &stubRepo{docs: []document.Document{edu("a", "BSc", "2015-01-01")}}
	engine := NewEngine(repo)

	out, err := engine.ProjectList(context.Background(), Query{
		Type:   "education",
		Fields: []Field{F("degree"), F("endDate"), F("description")},
	})
	require.NoError(t, err)
	require.Len(t, out, 1)

	endDate, present := out[0]["endDate"]
	assert.True(t, present, "selected field must be present even when unset")
	assert.Nil(t, endDate)
	assert.Nil(t, out[0]["description"])
}

func TestProjectIncludesIDAndType(t *testing.T) {
	repo := &stubRepo{docs: []document.Document{edu("a", "BSc", "2015-01-01")}}
	engine := NewEngine(repo)

	out, err := engine.ProjectSingleton(context.Background(), Query{
		Type:   "education",
		Fields: []Field{F("degree")},
	})
	require.NoError(t, err)
	assert.Equal(t, "a", out["_id"])
	assert.Equal(t, "education", out["_type"])
}

func TestProjectSingletonMissing(t *testing.T) {
	engine := NewEngine(&stubRepo{})

	_, err := engine.ProjectSingleton(context.Background(), Query{Type: "home"})
	assert.ErrorIs(t, err, document.ErrNotFound)
}

func TestDerefExpandsReference(t *testing.T) {
	repo := &stubRepo{docs: []document.Document{
		{ID: "skill-1", Type: "skill", Data: map[string]interface{}{
			"categoryTitle": "Programming",
		}},
		{ID: "previews", Type: "homePagePreviews", Data: map[string]interface{}{
			"showcaseSkills": map[string]interface{}{
				"enabled": true,
				"selectedSkills": []interface{}{
					map[string]interface{}{
						"skillGroup": map[string]interface{}{"_ref": "skill-1"},
						"skillIndex": float64(1),
					},
				},
			},
		}},
	}}
	engine := NewEngine(repo)

	out, err := engine.ProjectSingleton(context.Background(), Query{
		Type: "homePagePreviews",
		Fields: []Field{
			Obj("showcaseSkills",
				F("enabled"),
				Obj("selectedSkills",
					Ref("skillGroup", F("categoryTitle")),
					F("skillIndex"),
				),
			),
		},
	})
	require.NoError(t, err)

	showcase := out["showcaseSkills"].(map[string]interface{})
	selected := showcase["selectedSkills"].([]interface{})
	require.Len(t, selected, 1)

	entry := selected[0].(map[string]interface{})
	group := entry["skillGroup"].(map[string]interface{})
	assert.Equal(t, "Programming", group["categoryTitle"])
	assert.Equal(t, "skill-1", group["_id"])
}

func TestDerefArrayKeepsStoredOrder(t *testing.T) {
	repo := &stubRepo{docs: []document.Document{
		{ID: "p1", Type: "publication", Data: map[string]interface{}{"title": "First"}},
		{ID: "p2", Type: "publication", Data: map[string]interface{}{"title": "Second"}},
		{ID: "previews", Type: "homePagePreviews", Data: map[string]interface{}{
			"showcasePublications": map[string]interface{}{
				"selectedPublications": []interface{}{
					map[string]interface{}{"_ref": "p2"},
					map[string]interface{}{"_ref": "p1"},
				},
			},
		}},
	}}
	engine := NewEngine(repo)

	out, err := engine.ProjectSingleton(context.Background(), Query{
		Type: "homePagePreviews",
		Fields: []Field{
			Obj("showcasePublications",
				Ref("selectedPublications", F("title")),
			),
		},
	})
	require.NoError(t, err)

	showcase := out["showcasePublications"].(map[string]interface{})
	selected := showcase["selectedPublications"].([]interface{})
	require.Len(t, selected, 2)
	assert.Equal(t, "Second", selected[0].(map[string]interface{})["title"])
	assert.Equal(t, "First", selected[1].(map[string]interface{})["title"])
}

func TestDerefDanglingReferenceIsNil(t *testing.T) {
	repo := &stubRepo{docs: []document.Document{
		{ID: "previews", Type: "homePagePreviews", Data: map[string]interface{}{
			"showcasePublications": map[string]interface{}{
				"selectedPublications": []interface{}{
					map[string]interface{}{"_ref": "gone"},
				},
			},
		}},
	}}
	engine := NewEngine(repo)

	out, err := engine.ProjectSingleton(context.Background(), Query{
		Type: "homePagePreviews",
		Fields: []Field{
			Obj("showcasePublications",
				Ref("selectedPublications", F("title")),
			),
		},
	})
	require.NoError(t, err)

	showcase := out["showcasePublications"].(map[string]interface{})
	assert.Empty(t, showcase["selectedPublications"])
}
