package schema

// DocumentType describes one content type: its identifier, whether only a
// single published document of it may exist, and its field descriptors.
type DocumentType struct {
	Name      string
	Title     string
	Singleton bool
	Fields    []Field
}

// Document type names. Handlers and projections refer to these constants
// rather than raw strings.
const (
	TypeHome                  = "home"
	TypeEducation             = "education"
	TypeExperience            = "experience"
	TypeExpActivitySection    = "expActivitySection"
	TypeOrgActivitySection    = "orgActivitySection"
	TypeNextGenSection        = "nextGenSection"
	TypePublication           = "publication"
	TypeSkill                 = "skill"
	TypeOrganization          = "organization"
	TypeAchievement           = "achievement"
	TypeTrainingCertification = "trainingCertification"
	TypeContact               = "contact"
	TypePersonalInfo          = "personalInfo"
	TypeResearchProfile       = "researchProfile"
	TypeHomePagePreviews      = "homePagePreviews"
)

func homeType() DocumentType {
	return DocumentType{
		Name:      TypeHome,
		Title:     "Home",
		Singleton: true,
		Fields: []Field{
			str("introText", "Intro Text"),
			required(str("name", "Name")),
			str("shortDescription", "Short Description"),
			img("profileImage", "Profile Image"),
			file("resumeFile", "Resume File"),
			array("socialLinks", "Social Links", object("socialLink", "Social Link",
				required(str("platform", "Platform")),
				required(urlField("url", "URL")),
			)),
			img("aboutMeImage", "About Me Image"),
			text("aboutMe", "About Me"),
			array("researchInterests", "Research Interests", str("interest", "Interest")),
		},
	}
}

func educationType() DocumentType {
	return DocumentType{
		Name:  TypeEducation,
		Title: "Education",
		Fields: []Field{
			required(str("degree", "Degree")),
			required(str("institution", "Institution")),
			str("section", "Section Label"),
			str("location", "Location"),
			required(date("startDate", "Start Date")),
			date("endDate", "End Date"),
			text("description", "Description"),
			array("certificates", "Certificates", object("certificate", "Certificate",
				str("name", "Name"),
				img("image", "Image"),
				urlField("link", "Link"),
				file("file", "File"),
			)),
			array("semesters", "Semesters", object("semester", "Semester",
				str("label", "Label"),
				str("title", "Title"),
				str("result", "Result"),
				array("documents", "Documents", object("document", "Document",
					str("name", "Name"),
					file("file", "File"),
					img("image", "Image"),
				)),
			)),
		},
	}
}

func experienceType() DocumentType {
	return DocumentType{
		Name:  TypeExperience,
		Title: "Experience",
		Fields: []Field{
			required(str("title", "Title")),
			required(str("company", "Company")),
			str("location", "Location"),
			required(date("startDate", "Start Date")),
			date("endDate", "End Date"),
			array("description", "Description", object("block", "Block",
				str("style", "Style"),
				text("text", "Text"),
			)),
		},
	}
}

// The three activity section types share one field shape: a titled section
// holding ordered activity groups, each with its own image gallery.
func activitySectionType(name, title string) DocumentType {
	return DocumentType{
		Name:  name,
		Title: title,
		Fields: []Field{
			required(str("title", "Title")),
			text("description", "Description"),
			array("activityGroups", "Activity Groups", object("activityGroup", "Activity Group",
				required(str("groupTitle", "Group Title")),
				text("groupDescription", "Group Description"),
				array("gallery", "Gallery", object("galleryItem", "Gallery Item",
					img("image", "Image"),
					str("heading", "Heading"),
					text("description", "Description"),
				)),
			)),
		},
	}
}

func publicationType() DocumentType {
	return DocumentType{
		Name:  TypePublication,
		Title: "Publication",
		Fields: []Field{
			required(str("title", "Title")),
			required(str("category", "Category")),
			img("journalCover", "Journal Cover"),
			text("abstract", "Abstract"),
			array("authors", "Authors", str("author", "Author")),
			str("journalName", "Journal Name"),
			number("year", "Year", floatPtr(1900), floatPtr(2100)),
			// Accepts bare DOIs as well as resolver URLs; lookup normalizes.
			str("doi", "DOI"),
			number("manualCitationCount", "Manual Citation Count", floatPtr(0), nil),
		},
	}
}

func skillType() DocumentType {
	return DocumentType{
		Name:  TypeSkill,
		Title: "Skill Group",
		Fields: []Field{
			required(str("categoryTitle", "Category Title")),
			array("skillsList", "Skills", object("skill", "Skill",
				required(str("name", "Name")),
				img("icon", "Icon"),
			)),
		},
	}
}

func organizationType() DocumentType {
	return DocumentType{
		Name:  TypeOrganization,
		Title: "Organization",
		Fields: []Field{
			required(str("name", "Name")),
			str("role", "Role"),
			date("startDate", "Start Date"),
			date("endDate", "End Date"),
			text("description", "Description"),
			img("logo", "Logo"),
		},
	}
}

func achievementType() DocumentType {
	return DocumentType{
		Name:  TypeAchievement,
		Title: "Achievement",
		Fields: []Field{
			required(str("title", "Title")),
			required(str("category", "Category")),
			required(text("description", "Description")),
			required(date("date", "Date")),
			str("organization", "Organization"),
			array("images", "Images", object("achievementImage", "Achievement Image",
				img("image", "Image"),
				str("alt", "Alt Text"),
			)),
			urlField("certificateLink", "Certificate Link"),
		},
	}
}

func trainingCertificationType() DocumentType {
	return DocumentType{
		Name:  TypeTrainingCertification,
		Title: "Training & Certification",
		Fields: []Field{
			required(str("name", "Name")),
			required(str("issuer", "Issuer")),
			required(date("date", "Date")),
			urlField("link", "Link"),
			file("file", "File"),
			text("description", "Description"),
		},
	}
}

func contactType() DocumentType {
	return DocumentType{
		Name:      TypeContact,
		Title:     "Contact",
		Singleton: true,
		Fields: []Field{
			required(str("email", "Email")),
			str("phone", "Phone"),
			urlField("github", "GitHub"),
			urlField("linkedin", "LinkedIn"),
		},
	}
}

func personalInfoType() DocumentType {
	document := func(name, title string) Field {
		return object(name, title,
			boolean("hasDocument", "Has Document"),
			file("file", "File"),
			img("image", "Image"),
			str("number", "Number"),
			date("expiryDate", "Expiry Date"),
		)
	}
	return DocumentType{
		Name:      TypePersonalInfo,
		Title:     "Personal Info",
		Singleton: true,
		Fields: []Field{
			str("title", "Title"),
			document("passport", "Passport"),
			document("nid", "National ID"),
			document("birthCertificate", "Birth Certificate"),
		},
	}
}

func researchProfileType() DocumentType {
	return DocumentType{
		Name:      TypeResearchProfile,
		Title:     "Research Profile",
		Singleton: true,
		Fields: []Field{
			urlField("googleScholarUrl", "Google Scholar URL"),
			urlField("researchGateUrl", "ResearchGate URL"),
		},
	}
}

func homePagePreviewsType() DocumentType {
	groupShowcase := func(name, title, sectionType string) Field {
		return object(name, title,
			boolean("enabled", "Enabled"),
			str("title", "Title"),
			maxItems(array("selectedGroups", "Selected Groups", object("selectedGroup", "Selected Group",
				reference("section", "Section", sectionType),
				number("groupIndex", "Group Index", floatPtr(1), nil),
			)), 4),
		)
	}
	return DocumentType{
		Name:      TypeHomePagePreviews,
		Title:     "Home Page Previews",
		Singleton: true,
		Fields: []Field{
			object("showcaseSkills", "Showcase Skills",
				boolean("enabled", "Enabled"),
				str("title", "Title"),
				maxItems(array("selectedSkills", "Selected Skills", object("selectedSkill", "Selected Skill",
					reference("skillGroup", "Skill Group", TypeSkill),
					number("skillIndex", "Skill Index", floatPtr(1), nil),
				)), 8),
			),
			groupShowcase("showcaseExperience", "Showcase Experience", TypeExpActivitySection),
			groupShowcase("showcaseOrganizations", "Showcase Organizations", TypeOrgActivitySection),
			groupShowcase("showcaseNextGen", "Showcase NextGen", TypeNextGenSection),
			object("showcasePublications", "Showcase Publications",
				boolean("enabled", "Enabled"),
				str("title", "Title"),
				maxItems(array("selectedPublications", "Selected Publications",
					reference("publication", "Publication", TypePublication)), 6),
			),
			object("showcaseAchievements", "Showcase Achievements",
				boolean("enabled", "Enabled"),
				str("title", "Title"),
				maxItems(array("selectedAchievements", "Selected Achievements",
					reference("achievement", "Achievement", TypeAchievement)), 6),
			),
		},
	}
}
