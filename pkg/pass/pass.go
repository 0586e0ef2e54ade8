package pass

import (
	"encoding/json"

	"github.com/arthur-debert/passbundle/pkg/images"
	"github.com/arthur-debert/passbundle/pkg/styles"
)

// TemplateInfo is the surface a template exposes to minted passes.
type TemplateInfo interface {
	Style() styles.Style
	KeysPath() string
	Password() string
}

// Pass is one concrete pass instance minted from a template: the
// template's validated fields merged with per-instance overrides, plus
// the template's shared image collection.
type Pass struct {
	template TemplateInfo
	fields   map[string]interface{}
	images   *images.Collection
}

// New creates a pass. The field map is owned by the pass afterwards;
// callers hand over a merged copy, never a template's live field map.
func New(template TemplateInfo, fields map[string]interface{}, imgs *images.Collection) *Pass {
	if fields == nil {
		fields = make(map[string]interface{})
	}
	return &Pass{
		template: template,
		fields:   fields,
		images:   imgs,
	}
}

// Template returns the template this pass was minted from.
func (p *Pass) Template() TemplateInfo {
	return p.template
}

// Field returns one merged field value.
func (p *Pass) Field(name string) (interface{}, bool) {
	v, ok := p.fields[name]
	return v, ok
}

// Fields returns a copy of the merged fields.
func (p *Pass) Fields() map[string]interface{} {
	out := make(map[string]interface{}, len(p.fields))
	for k, v := range p.fields {
		out[k] = v
	}
	return out
}

// Images returns the image collection shared with the template.
func (p *Pass) Images() *images.Collection {
	return p.images
}

// Definition returns the pass content in bundle-definition shape: a
// single top-level style key holding the merged fields.
func (p *Pass) Definition() map[string]interface{} {
	return map[string]interface{}{
		string(p.template.Style()): p.Fields(),
	}
}

// DefinitionJSON serializes Definition as JSON.
func (p *Pass) DefinitionJSON() ([]byte, error) {
	return json.Marshal(p.Definition())
}
