package service

import (
	"context"
	"errors"

	"portfolio-backend/internal/domains/document"
	"portfolio-backend/internal/domains/pages"
	"portfolio-backend/internal/domains/pages/render"
	"portfolio-backend/internal/domains/publication/citation"
	publicationJob "portfolio-backend/internal/domains/publication/job"
	"portfolio-backend/internal/domains/schema"
	"portfolio-backend/pkg/logger"
)

// optionalSingleton fetches a singleton projection whose absence is not
// an error; the page decides what a nil result means.
func (s *pageService) optionalSingleton(build func() (map[string]interface{}, error)) (map[string]interface{}, error) {
	doc, err := build()
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

func (s *pageService) buildHome(ctx context.Context) (*pages.PageView, error) {
	home, err := s.engine.ProjectSingleton(ctx, pages.HomeQuery())
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return &pages.PageView{NotPublished: true, Data: map[string]interface{}{}}, nil
		}
		return nil, err
	}

	data := map[string]interface{}{"home": home}

	previews, err := s.optionalSingleton(func() (map[string]interface{}, error) {
		return s.engine.ProjectSingleton(ctx, pages.HomePagePreviewsQuery())
	})
	if err != nil {
		return nil, err
	}
	if previews != nil {
		data["showcases"] = resolveShowcases(previews)
	}

	return &pages.PageView{Data: data}, nil
}

// Showcase describes one resolved home page preview section.
type Showcase struct {
	Kind  string                   `json:"kind"`
	Title string                   `json:"title"`
	Items []map[string]interface{} `json:"items"`
}

// resolveShowcases turns the previews singleton into renderable sections.
// Disabled sections and sections resolving to zero items are dropped.
func resolveShowcases(previews map[string]interface{}) []Showcase {
	out := make([]Showcase, 0)

	add := func(kind, field string, resolve func([]interface{}) []map[string]interface{}, listKey string) {
		section, ok := previews[field].(map[string]interface{})
		if !ok {
			return
		}
		if enabled, _ := section["enabled"].(bool); !enabled {
			return
		}
		entries, _ := section[listKey].([]interface{})
		items := resolve(entries)
		if len(items) == 0 {
			return
		}
		title, _ := section["title"].(string)
		out = append(out, Showcase{Kind: kind, Title: title, Items: items})
	}

	skills := func(entries []interface{}) []map[string]interface{} {
		return render.SelectIndexed(entries, "skillGroup", "skillIndex", "skillsList")
	}
	groups := func(entries []interface{}) []map[string]interface{} {
		return render.SelectIndexed(entries, "section", "groupIndex", "activityGroups")
	}

	add("skills", "showcaseSkills", skills, "selectedSkills")
	add("experience", "showcaseExperience", groups, "selectedGroups")
	add("organizations", "showcaseOrganizations", groups, "selectedGroups")
	add("nextgen", "showcaseNextGen", groups, "selectedGroups")
	add("publications", "showcasePublications", render.SelectReferenced, "selectedPublications")
	add("achievements", "showcaseAchievements", render.SelectReferenced, "selectedAchievements")

	return out
}

func (s *pageService) buildSkills(ctx context.Context) (*pages.PageView, error) {
	groups, err := s.engine.ProjectList(ctx, pages.SkillsQuery())
	if err != nil {
		return nil, err
	}
	return &pages.PageView{Data: map[string]interface{}{"skillGroups": groups}}, nil
}

func (s *pageService) buildEducation(ctx context.Context) (*pages.PageView, error) {
	entries, err := s.engine.ProjectList(ctx, pages.EducationQuery())
	if err != nil {
		return nil, err
	}
	return &pages.PageView{Data: map[string]interface{}{
		"groups": render.GroupBy(entries, "section", ""),
	}}, nil
}

func (s *pageService) buildExperience(ctx context.Context) (*pages.PageView, error) {
	experiences, err := s.engine.ProjectList(ctx, pages.ExperienceQuery())
	if err != nil {
		return nil, err
	}
	sections, err := s.engine.ProjectList(ctx, pages.ActivitySectionQuery(schema.TypeExpActivitySection))
	if err != nil {
		return nil, err
	}
	return &pages.PageView{Data: map[string]interface{}{
		"experiences":      experiences,
		"activitySections": sections,
	}}, nil
}

func (s *pageService) buildPublication(ctx context.Context) (*pages.PageView, error) {
	publications, err := s.engine.ProjectList(ctx, pages.PublicationQuery())
	if err != nil {
		return nil, err
	}

	needsRefresh := false
	for _, pub := range publications {
		if s.attachCitation(ctx, pub) {
			needsRefresh = true
		}
	}
	if needsRefresh && s.tasks != nil {
		// Fire and forget; the worker fills the cache for the next render.
		if err := s.tasks.Enqueue(publicationJob.TaskCitationRefresh); err != nil {
			logger.Warn("Citation refresh enqueue failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	data := map[string]interface{}{
		"groups": render.GroupBy(publications, "category", ""),
	}

	profile, err := s.optionalSingleton(func() (map[string]interface{}, error) {
		return s.engine.ProjectSingleton(ctx, pages.ResearchProfileQuery())
	})
	if err != nil {
		return nil, err
	}
	if profile != nil {
		data["researchProfile"] = profile
	}

	return &pages.PageView{Data: data}, nil
}

// attachCitation overlays the effective citation count: the cached
// Crossref count when one exists for the DOI, the authored manual count
// otherwise. Publications with neither get no count at all. The doi
// field is normalized to its bare form so templates can prepend the
// resolver URL safely. Returns true when the publication has a DOI but
// no cached live count yet.
func (s *pageService) attachCitation(ctx context.Context, pub map[string]interface{}) bool {
	stale := false
	if doi, _ := pub["doi"].(string); doi != "" {
		pub["doi"] = citation.NormalizeDOI(doi)
		count, found, err := s.citations.Get(ctx, doi)
		if err != nil {
			logger.Warn("Citation lookup failed", map[string]interface{}{
				"doi":   doi,
				"error": err.Error(),
			})
		} else if found {
			pub["citationCount"] = count
			pub["citationSource"] = "crossref"
			return false
		}
		stale = true
	}

	if manual, ok := pub["manualCitationCount"].(float64); ok {
		pub["citationCount"] = int(manual)
		pub["citationSource"] = "manual"
	}
	return stale
}

func (s *pageService) buildAchievement(ctx context.Context) (*pages.PageView, error) {
	achievements, err := s.engine.ProjectList(ctx, pages.AchievementQuery())
	if err != nil {
		return nil, err
	}
	trainings, err := s.engine.ProjectList(ctx, pages.TrainingCertificationQuery())
	if err != nil {
		return nil, err
	}
	return &pages.PageView{Data: map[string]interface{}{
		"groups":    render.GroupBy(achievements, "category", ""),
		"trainings": trainings,
	}}, nil
}

func (s *pageService) buildOrganization(ctx context.Context) (*pages.PageView, error) {
	organizations, err := s.engine.ProjectList(ctx, pages.OrganizationQuery())
	if err != nil {
		return nil, err
	}
	sections, err := s.engine.ProjectList(ctx, pages.ActivitySectionQuery(schema.TypeOrgActivitySection))
	if err != nil {
		return nil, err
	}
	return &pages.PageView{Data: map[string]interface{}{
		"organizations":    organizations,
		"activitySections": sections,
	}}, nil
}

func (s *pageService) buildNextGen(ctx context.Context) (*pages.PageView, error) {
	sections, err := s.engine.ProjectList(ctx, pages.ActivitySectionQuery(schema.TypeNextGenSection))
	if err != nil {
		return nil, err
	}
	return &pages.PageView{Data: map[string]interface{}{
		"activitySections": sections,
	}}, nil
}

func (s *pageService) buildContact(ctx context.Context) (*pages.PageView, error) {
	contact, err := s.engine.ProjectSingleton(ctx, pages.ContactQuery())
	if err != nil {
		if errors.Is(err, document.ErrNotFound) {
			return &pages.PageView{NotPublished: true, Data: map[string]interface{}{}}, nil
		}
		return nil, err
	}
	return &pages.PageView{Data: map[string]interface{}{"contact": contact}}, nil
}
