package pages

import (
	"errors"
	"time"
)

var ErrUnknownPage = errors.New("unknown page")

// Page names double as routes ("/" for home, "/<name>" otherwise) and as
// cache key suffixes.
const (
	PageHome         = "home"
	PageSkills       = "skills"
	PageEducation    = "education"
	PageExperience   = "experience"
	PagePublication  = "publication"
	PageAchievement  = "achievement"
	PageOrganization = "organization"
	PageNextGen      = "nextgen"
	PageContact      = "contact"
)

// PageView is the fully assembled render input for one route. When the
// page's backing singleton is unpublished, NotPublished is set and Data is
// empty; the route still renders, with an explicit notice.
type PageView struct {
	Name         string                 `json:"name"`
	NotPublished bool                   `json:"not_published"`
	Data         map[string]interface{} `json:"data"`
	FetchedAt    time.Time              `json:"fetched_at"`
}
