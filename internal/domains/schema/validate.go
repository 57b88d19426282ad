package schema

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const dateLayout = "2006-01-02"

// ValidateDocument checks authored data against a document type descriptor.
// It returns a validation.Errors map keyed by field path so the studio API
// can surface per-field messages. Only authoring goes through here; stored
// documents are rendered as-is.
func ValidateDocument(dt DocumentType, data map[string]interface{}) error {
	errs := validation.Errors{}
	for name := range data {
		if !hasField(dt.Fields, name) {
			errs[name] = fmt.Errorf("field not defined for type %s", dt.Name)
		}
	}
	validateFields(dt.Fields, data, "", errs)
	return errs.Filter()
}

func hasField(fields []Field, name string) bool {
	for _, f := range fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

func validateFields(fields []Field, data map[string]interface{}, prefix string, errs validation.Errors) {
	for _, f := range fields {
		path := f.Name
		if prefix != "" {
			path = prefix + "." + f.Name
		}

		value, present := data[f.Name]
		if !present || value == nil {
			if f.Required {
				errs[path] = validation.ErrRequired
			}
			continue
		}

		if err := validateValue(f, value, path, errs); err != nil {
			errs[path] = err
		}
	}
}

func validateValue(f Field, value interface{}, path string, errs validation.Errors) error {
	switch f.Type {
	case TypeString, TypeText:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected string")
		}
		if f.Required && s == "" {
			return validation.ErrRequired
		}

	case TypeDate:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected date string")
		}
		return validation.Validate(s, validation.Date(dateLayout))

	case TypeURL:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("expected URL string")
		}
		return validation.Validate(s, is.URL)

	case TypeNumber:
		n, ok := toFloat(value)
		if !ok {
			return fmt.Errorf("expected number")
		}
		if f.Min != nil && n < *f.Min {
			return fmt.Errorf("must be no less than %v", *f.Min)
		}
		if f.Max != nil && n > *f.Max {
			return fmt.Errorf("must be no greater than %v", *f.Max)
		}

	case TypeBoolean:
		if _, ok := value.(bool); !ok {
			return fmt.Errorf("expected boolean")
		}

	case TypeImage, TypeFile:
		obj, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("expected asset object")
		}
		if key, _ := obj["assetKey"].(string); key == "" {
			return fmt.Errorf("assetKey is required")
		}

	case TypeReference:
		obj, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("expected reference object")
		}
		if ref, _ := obj["_ref"].(string); ref == "" {
			return fmt.Errorf("_ref is required")
		}

	case TypeObject:
		obj, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("expected object")
		}
		validateFields(f.Fields, obj, path, errs)

	case TypeArray:
		items, ok := value.([]interface{})
		if !ok {
			return fmt.Errorf("expected array")
		}
		if f.MinCount != nil && len(items) < *f.MinCount {
			return fmt.Errorf("must contain at least %d items", *f.MinCount)
		}
		if f.MaxCount != nil && len(items) > *f.MaxCount {
			return fmt.Errorf("must contain no more than %d items", *f.MaxCount)
		}
		for i, item := range items {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			if item == nil {
				continue
			}
			if err := validateValue(*f.Of, item, itemPath, errs); err != nil {
				errs[itemPath] = err
			}
		}
	}

	return nil
}

func toFloat(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}
