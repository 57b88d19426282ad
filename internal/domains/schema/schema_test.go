package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryContainsAllTypes(t *testing.T) {
	r := NewRegistry()

	expected := []string{
		TypeHome, TypeEducation, TypeExperience,
		TypeExpActivitySection, TypeOrgActivitySection, TypeNextGenSection,
		TypePublication, TypeSkill, TypeOrganization, TypeAchievement,
		TypeTrainingCertification, TypeContact, TypePersonalInfo,
		TypeResearchProfile, TypeHomePagePreviews,
	}
	for _, name := range expected {
		dt, err := r.Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, dt.Name)
	}
	assert.Len(t, r.Names(), len(expected))
}

func TestRegistryUnknownType(t *testing.T) {
	r := NewRegistry()

	_, err := r.Get("blogPost")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestRegistrySingletons(t *testing.T) {
	r := NewRegistry()

	for _, name := range []string{TypeHome, TypeContact, TypePersonalInfo, TypeResearchProfile, TypeHomePagePreviews} {
		assert.True(t, r.IsSingleton(name), name)
	}
	for _, name := range []string{TypeEducation, TypePublication, TypeSkill} {
		assert.False(t, r.IsSingleton(name), name)
	}
}

func TestValidateDocument(t *testing.T) {
	r := NewRegistry()
	education, err := r.Get(TypeEducation)
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    map[string]interface{}
		wantErr bool
	}{
		{
			name: "valid document",
			data: map[string]interface{}{
				"degree":      "BSc in Computer Science",
				"institution": "Example University",
				"startDate":   "2018-01-15",
			},
			wantErr: false,
		},
		{
			name: "missing required field",
			data: map[string]interface{}{
				"degree":    "BSc in Computer Science",
				"startDate": "2018-01-15",
			},
			wantErr: true,
		},
		{
			name: "malformed date",
			data: map[string]interface{}{
				"degree":      "BSc in Computer Science",
				"institution": "Example University",
				"startDate":   "January 2018",
			},
			wantErr: true,
		},
		{
			name: "unknown field rejected",
			data: map[string]interface{}{
				"degree":      "BSc in Computer Science",
				"institution": "Example University",
				"startDate":   "2018-01-15",
				"gpa":         3.9,
			},
			wantErr: true,
		},
		{
			name: "optional fields omitted entirely",
			data: map[string]interface{}{
				"degree":      "MSc in Data Science",
				"institution": "Example University",
				"startDate":   "2022-09-01",
				"endDate":     "2024-06-30",
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDocument(education, tt.data)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateNestedArrays(t *testing.T) {
	r := NewRegistry()
	home, err := r.Get(TypeHome)
	require.NoError(t, err)

	data := map[string]interface{}{
		"name": "Jane Doe",
		"socialLinks": []interface{}{
			map[string]interface{}{"platform": "GitHub", "url": "https://github.com/janedoe"},
			map[string]interface{}{"platform": "LinkedIn", "url": "not a url"},
		},
	}

	err = ValidateDocument(home, data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "socialLinks[1]")
}

func TestValidateNumberBounds(t *testing.T) {
	r := NewRegistry()
	publication, err := r.Get(TypePublication)
	require.NoError(t, err)

	err = ValidateDocument(publication, map[string]interface{}{
		"title":    "A Study",
		"category": "Journal",
		"year":     float64(1850),
	})
	require.Error(t, err)

	err = ValidateDocument(publication, map[string]interface{}{
		"title":               "A Study",
		"category":            "Journal",
		"year":                float64(2024),
		"manualCitationCount": float64(12),
	})
	assert.NoError(t, err)
}

func TestValidateArrayBounds(t *testing.T) {
	r := NewRegistry()
	previews, err := r.Get(TypeHomePagePreviews)
	require.NoError(t, err)

	refs := make([]interface{}, 7)
	for i := range refs {
		refs[i] = map[string]interface{}{"_ref": "pub"}
	}

	err = ValidateDocument(previews, map[string]interface{}{
		"showcasePublications": map[string]interface{}{
			"selectedPublications": refs,
		},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no more than 6")
}

func TestValidateReferenceShape(t *testing.T) {
	r := NewRegistry()
	previews, err := r.Get(TypeHomePagePreviews)
	require.NoError(t, err)

	err = ValidateDocument(previews, map[string]interface{}{
		"showcaseSkills": map[string]interface{}{
			"enabled": true,
			"selectedSkills": []interface{}{
				map[string]interface{}{
					"skillGroup": map[string]interface{}{"_ref": "0c2a4b1e-skill"},
					"skillIndex": float64(2),
				},
			},
		},
	})
	assert.NoError(t, err)

	err = ValidateDocument(previews, map[string]interface{}{
		"showcaseSkills": map[string]interface{}{
			"selectedSkills": []interface{}{
				map[string]interface{}{
					"skillGroup": map[string]interface{}{},
					"skillIndex": float64(0),
				},
			},
		},
	})
	assert.Error(t, err)
}
