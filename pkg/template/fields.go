package template

import (
	"github.com/arthur-debert/passbundle/pkg/errors"
)

// Recognized field names.
const (
	FieldPassTypeIdentifier = "passTypeIdentifier"
	FieldTeamIdentifier     = "teamIdentifier"
	FieldBackgroundColor    = "backgroundColor"
	FieldForegroundColor    = "foregroundColor"
	FieldLabelColor         = "labelColor"
	FieldLogoText           = "logoText"
	FieldOrganizationName   = "organizationName"
	FieldGroupingIdentifier = "groupingIdentifier"
	FieldSuppressStripShine = "suppressStripShine"
	FieldWebServiceURL      = "webServiceURL"
)

// fieldSpec validates a candidate value and returns the value to store.
type fieldSpec struct {
	validate func(value interface{}) (interface{}, error)
}

// fieldTable is the static mapping of recognized field names to their
// validation rules. Values only ever enter a template's field map
// through this table.
var fieldTable = map[string]fieldSpec{
	FieldPassTypeIdentifier: {validate: acceptString(FieldPassTypeIdentifier)},
	FieldTeamIdentifier:     {validate: acceptString(FieldTeamIdentifier)},
	FieldBackgroundColor:    {validate: acceptString(FieldBackgroundColor)},
	FieldForegroundColor:    {validate: acceptColor(FieldForegroundColor)},
	FieldLabelColor:         {validate: acceptColor(FieldLabelColor)},
	FieldLogoText:           {validate: acceptString(FieldLogoText)},
	FieldOrganizationName:   {validate: acceptString(FieldOrganizationName)},
	FieldGroupingIdentifier: {validate: acceptString(FieldGroupingIdentifier)},
	FieldSuppressStripShine: {validate: acceptBool(FieldSuppressStripShine)},
	FieldWebServiceURL:      {validate: acceptSecureURL(FieldWebServiceURL)},
}

// FieldNames returns the recognized field names. The result is a fresh
// slice in no particular order.
func FieldNames() []string {
	names := make([]string, 0, len(fieldTable))
	for name := range fieldTable {
		names = append(names, name)
	}
	return names
}

// IsField reports whether name is a recognized field.
func IsField(name string) bool {
	_, ok := fieldTable[name]
	return ok
}

func acceptString(name string) func(interface{}) (interface{}, error) {
	return func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.Newf(errors.ErrFieldType, "field %s requires a string, got %T", name, value)
		}
		return s, nil
	}
}

func acceptColor(name string) func(interface{}) (interface{}, error) {
	return func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.Newf(errors.ErrFieldType, "field %s requires a color string, got %T", name, value)
		}
		if err := ValidateColor(s); err != nil {
			return nil, err
		}
		return s, nil
	}
}

func acceptBool(name string) func(interface{}) (interface{}, error) {
	return func(value interface{}) (interface{}, error) {
		b, ok := value.(bool)
		if !ok {
			return nil, errors.Newf(errors.ErrFieldType, "field %s requires a boolean, got %T", name, value)
		}
		return b, nil
	}
}

func acceptSecureURL(name string) func(interface{}) (interface{}, error) {
	return func(value interface{}) (interface{}, error) {
		s, ok := value.(string)
		if !ok {
			return nil, errors.Newf(errors.ErrFieldType, "field %s requires a URL string, got %T", name, value)
		}
		normalized, err := normalizeSecureURL(s)
		if err != nil {
			return nil, err
		}
		return normalized, nil
	}
}
