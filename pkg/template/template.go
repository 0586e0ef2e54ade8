package template

import (
	"github.com/arthur-debert/passbundle/pkg/config"
	"github.com/arthur-debert/passbundle/pkg/errors"
	"github.com/arthur-debert/passbundle/pkg/images"
	"github.com/arthur-debert/passbundle/pkg/pass"
	"github.com/arthur-debert/passbundle/pkg/styles"
)

// Template is a reusable, validated pass configuration: a style, a set
// of validated appearance/identity fields, signing-key location
// metadata, and a shared image collection. The style is fixed at
// construction; fields change only through Set and the typed setters.
//
// A Template is not safe for concurrent mutation; callers needing that
// must serialize externally.
type Template struct {
	style    styles.Style
	fields   map[string]interface{}
	keysPath string
	password string
	images   *images.Collection
}

var _ pass.TemplateInfo = (*Template)(nil)

// New creates a Template for the given style. Every key of initial that
// names a recognized field is validated and stored; unrecognized keys
// are ignored, which lets a full bundle definition (including its style
// key) be passed straight through. Any validation failure aborts the
// construction.
func New(style styles.Style, initial map[string]interface{}) (*Template, error) {
	if !styles.IsValid(style) {
		return nil, errors.Newf(errors.ErrStyleInvalid, "style %q is not registered", style).
			WithDetail("knownStyles", styles.All())
	}

	t := &Template{
		style:    style,
		fields:   make(map[string]interface{}),
		keysPath: config.Default().Keys.Path,
		images:   images.NewCollection(),
	}

	for name, value := range initial {
		if !IsField(name) {
			continue
		}
		if err := t.Set(name, value); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Set validates value against the field's rule and stores it. Unknown
// field names are rejected; failed validation leaves the template
// unchanged.
func (t *Template) Set(name string, value interface{}) error {
	spec, ok := fieldTable[name]
	if !ok {
		return errors.Newf(errors.ErrFieldUnknown, "unknown field %q", name)
	}

	stored, err := spec.validate(value)
	if err != nil {
		return err
	}

	t.fields[name] = stored
	return nil
}

// Get returns a stored field value.
func (t *Template) Get(name string) (interface{}, bool) {
	v, ok := t.fields[name]
	return v, ok
}

// Fields returns a copy of the stored fields.
func (t *Template) Fields() map[string]interface{} {
	out := make(map[string]interface{}, len(t.fields))
	for k, v := range t.fields {
		out[k] = v
	}
	return out
}

// Style returns the template's style variant.
func (t *Template) Style() styles.Style {
	return t.style
}

// Keys records where the signing key material lives. An empty path or
// password leaves the respective value unchanged. No existence check is
// performed; that is the signing collaborator's concern.
func (t *Template) Keys(path, password string) {
	if path != "" {
		t.keysPath = path
	}
	if password != "" {
		t.password = password
	}
}

// KeysPath returns the configured signing-key directory.
func (t *Template) KeysPath() string {
	return t.keysPath
}

// Password returns the configured signing-key password, if any.
func (t *Template) Password() string {
	return t.password
}

// Images returns the template's image collection. Every pass minted
// from this template shares the same collection.
func (t *Template) Images() *images.Collection {
	return t.images
}

// CreatePass mints a pass instance: a shallow merge of the template's
// fields with overrides (overrides win), sharing the template's image
// collection. The template's own fields are never mutated.
func (t *Template) CreatePass(overrides map[string]interface{}) *pass.Pass {
	merged := t.Fields()
	for k, v := range overrides {
		merged[k] = v
	}
	return pass.New(t, merged, t.images)
}
