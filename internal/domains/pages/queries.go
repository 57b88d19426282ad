package pages

import (
	"portfolio-backend/internal/domains/projection"
	"portfolio-backend/internal/domains/schema"
)

// Every page route owns a fixed set of projection queries. Pages never
// share a projection: what a route renders is exactly what its queries
// select, nothing more.

func imageField(name string) projection.Field {
	return projection.Obj(name, projection.F("assetKey"), projection.F("alt"))
}

func fileField(name string) projection.Field {
	return projection.Obj(name, projection.F("assetKey"))
}

func galleryField() projection.Field {
	return projection.Obj("gallery",
		imageField("image"),
		projection.F("heading"),
		projection.F("description"),
	)
}

func ActivitySectionQuery(docType string) projection.Query {
	return projection.Query{
		Type: docType,
		Fields: []projection.Field{
			projection.F("title"),
			projection.F("description"),
			projection.Obj("activityGroups",
				projection.F("groupTitle"),
				projection.F("groupDescription"),
				galleryField(),
			),
		},
	}
}

func HomeQuery() projection.Query {
	return projection.Query{
		Type:      schema.TypeHome,
		Singleton: true,
		Fields: []projection.Field{
			projection.F("introText"),
			projection.F("name"),
			projection.F("shortDescription"),
			imageField("profileImage"),
			fileField("resumeFile"),
			projection.Obj("socialLinks", projection.F("platform"), projection.F("url")),
			imageField("aboutMeImage"),
			projection.F("aboutMe"),
			projection.F("researchInterests"),
		},
	}
}

func HomePagePreviewsQuery() projection.Query {
	groupShowcase := func(name string) projection.Field {
		return projection.Obj(name,
			projection.F("enabled"),
			projection.F("title"),
			projection.Obj("selectedGroups",
				projection.Ref("section",
					projection.F("title"),
					projection.Obj("activityGroups",
						projection.F("groupTitle"),
						projection.F("groupDescription"),
						galleryField(),
					),
				),
				projection.F("groupIndex"),
			),
		)
	}

	return projection.Query{
		Type:      schema.TypeHomePagePreviews,
		Singleton: true,
		Fields: []projection.Field{
			projection.Obj("showcaseSkills",
				projection.F("enabled"),
				projection.F("title"),
				projection.Obj("selectedSkills",
					projection.Ref("skillGroup",
						projection.F("categoryTitle"),
						projection.Obj("skillsList", projection.F("name"), imageField("icon")),
					),
					projection.F("skillIndex"),
				),
			),
			groupShowcase("showcaseExperience"),
			groupShowcase("showcaseOrganizations"),
			groupShowcase("showcaseNextGen"),
			projection.Obj("showcasePublications",
				projection.F("enabled"),
				projection.F("title"),
				projection.Ref("selectedPublications",
					projection.F("title"),
					projection.F("category"),
					imageField("journalCover"),
					projection.F("journalName"),
					projection.F("year"),
					projection.F("doi"),
				),
			),
			projection.Obj("showcaseAchievements",
				projection.F("enabled"),
				projection.F("title"),
				projection.Ref("selectedAchievements",
					projection.F("title"),
					projection.F("category"),
					projection.F("date"),
					imageField("images"),
				),
			),
		},
	}
}

func SkillsQuery() projection.Query {
	return projection.Query{
		Type: schema.TypeSkill,
		Fields: []projection.Field{
			projection.F("categoryTitle"),
			projection.Obj("skillsList", projection.F("name"), imageField("icon")),
		},
	}
}

func EducationQuery() projection.Query {
	return projection.Query{
		Type:  schema.TypeEducation,
		Order: []projection.OrderClause{{Field: "startDate", Desc: true}},
		Fields: []projection.Field{
			projection.F("degree"),
			projection.F("institution"),
			projection.F("section"),
			projection.F("location"),
			projection.F("startDate"),
			projection.F("endDate"),
			projection.F("description"),
			projection.Obj("certificates",
				projection.F("name"),
				imageField("image"),
				projection.F("link"),
				fileField("file"),
			),
			projection.Obj("semesters",
				projection.F("label"),
				projection.F("title"),
				projection.F("result"),
				projection.Obj("documents",
					projection.F("name"),
					fileField("file"),
					imageField("image"),
				),
			),
		},
	}
}

func ExperienceQuery() projection.Query {
	return projection.Query{
		Type:  schema.TypeExperience,
		Order: []projection.OrderClause{{Field: "startDate", Desc: true}},
		Fields: []projection.Field{
			projection.F("title"),
			projection.F("company"),
			projection.F("location"),
			projection.F("startDate"),
			projection.F("endDate"),
			projection.Obj("description", projection.F("style"), projection.F("text")),
		},
	}
}

func PublicationQuery() projection.Query {
	return projection.Query{
		Type:  schema.TypePublication,
		Order: []projection.OrderClause{{Field: "year", Desc: true}},
		Fields: []projection.Field{
			projection.F("title"),
			projection.F("category"),
			imageField("journalCover"),
			projection.F("abstract"),
			projection.F("authors"),
			projection.F("journalName"),
			projection.F("year"),
			projection.F("doi"),
			projection.F("manualCitationCount"),
		},
	}
}

func ResearchProfileQuery() projection.Query {
	return projection.Query{
		Type:      schema.TypeResearchProfile,
		Singleton: true,
		Fields: []projection.Field{
			projection.F("googleScholarUrl"),
			projection.F("researchGateUrl"),
		},
	}
}

func AchievementQuery() projection.Query {
	return projection.Query{
		Type:  schema.TypeAchievement,
		Order: []projection.OrderClause{{Field: "date", Desc: true}},
		Fields: []projection.Field{
			projection.F("title"),
			projection.F("category"),
			projection.F("description"),
			projection.F("date"),
			projection.F("organization"),
			projection.Obj("images", imageField("image"), projection.F("alt")),
			projection.F("certificateLink"),
		},
	}
}

func TrainingCertificationQuery() projection.Query {
	return projection.Query{
		Type:  schema.TypeTrainingCertification,
		Order: []projection.OrderClause{{Field: "date", Desc: true}},
		Fields: []projection.Field{
			projection.F("name"),
			projection.F("issuer"),
			projection.F("date"),
			projection.F("link"),
			fileField("file"),
			projection.F("description"),
		},
	}
}

func OrganizationQuery() projection.Query {
	return projection.Query{
		Type:  schema.TypeOrganization,
		Order: []projection.OrderClause{{Field: "startDate", Desc: true}},
		Fields: []projection.Field{
			projection.F("name"),
			projection.F("role"),
			projection.F("startDate"),
			projection.F("endDate"),
			projection.F("description"),
			imageField("logo"),
		},
	}
}

func ContactQuery() projection.Query {
	return projection.Query{
		Type:      schema.TypeContact,
		Singleton: true,
		Fields: []projection.Field{
			projection.F("email"),
			projection.F("phone"),
			projection.F("github"),
			projection.F("linkedin"),
		},
	}
}
