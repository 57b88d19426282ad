package schema

import (
	"errors"
	"fmt"
	"sort"
)

var ErrUnknownType = errors.New("unknown document type")

// Registry holds every registered document type. It is assembled once at
// startup and read-only afterwards, so no locking is needed.
type Registry struct {
	types map[string]DocumentType
}

// NewRegistry builds the registry with all built-in document types.
func NewRegistry() *Registry {
	r := &Registry{types: make(map[string]DocumentType)}

	for _, dt := range []DocumentType{
		homeType(),
		educationType(),
		experienceType(),
		activitySectionType(TypeExpActivitySection, "Experience Activities"),
		activitySectionType(TypeOrgActivitySection, "Organization Activities"),
		activitySectionType(TypeNextGenSection, "NextGen Activities"),
		publicationType(),
		skillType(),
		organizationType(),
		achievementType(),
		trainingCertificationType(),
		contactType(),
		personalInfoType(),
		researchProfileType(),
		homePagePreviewsType(),
	} {
		r.types[dt.Name] = dt
	}

	return r
}

// Get returns the descriptor for a document type name.
func (r *Registry) Get(name string) (DocumentType, error) {
	dt, ok := r.types[name]
	if !ok {
		return DocumentType{}, fmt.Errorf("%w: %s", ErrUnknownType, name)
	}
	return dt, nil
}

// IsSingleton reports whether at most one published document of the type
// may exist.
func (r *Registry) IsSingleton(name string) bool {
	dt, ok := r.types[name]
	return ok && dt.Singleton
}

// Names returns all registered type names in stable order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.types))
	for name := range r.types {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
