package template

// Typed accessor/mutator pairs for every recognized field. The setters
// route through Set so validation is identical whichever way a value
// arrives; the getters report (zero, false) while a field is unset.

func (t *Template) stringField(name string) (string, bool) {
	v, ok := t.fields[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// SetPassTypeIdentifier sets the pass type identifier.
func (t *Template) SetPassTypeIdentifier(v string) error {
	return t.Set(FieldPassTypeIdentifier, v)
}

// PassTypeIdentifier returns the pass type identifier.
func (t *Template) PassTypeIdentifier() (string, bool) {
	return t.stringField(FieldPassTypeIdentifier)
}

// SetTeamIdentifier sets the team identifier.
func (t *Template) SetTeamIdentifier(v string) error {
	return t.Set(FieldTeamIdentifier, v)
}

// TeamIdentifier returns the team identifier.
func (t *Template) TeamIdentifier() (string, bool) {
	return t.stringField(FieldTeamIdentifier)
}

// SetBackgroundColor sets the background color. Unlike the foreground
// and label colors this value is stored without format validation.
func (t *Template) SetBackgroundColor(v string) error {
	return t.Set(FieldBackgroundColor, v)
}

// BackgroundColor returns the background color.
func (t *Template) BackgroundColor() (string, bool) {
	return t.stringField(FieldBackgroundColor)
}

// SetForegroundColor sets the foreground color; the value must satisfy
// ValidateColor.
func (t *Template) SetForegroundColor(v string) error {
	return t.Set(FieldForegroundColor, v)
}

// ForegroundColor returns the foreground color.
func (t *Template) ForegroundColor() (string, bool) {
	return t.stringField(FieldForegroundColor)
}

// SetLabelColor sets the label color; the value must satisfy
// ValidateColor.
func (t *Template) SetLabelColor(v string) error {
	return t.Set(FieldLabelColor, v)
}

// LabelColor returns the label color.
func (t *Template) LabelColor() (string, bool) {
	return t.stringField(FieldLabelColor)
}

// SetLogoText sets the logo text.
func (t *Template) SetLogoText(v string) error {
	return t.Set(FieldLogoText, v)
}

// LogoText returns the logo text.
func (t *Template) LogoText() (string, bool) {
	return t.stringField(FieldLogoText)
}

// SetOrganizationName sets the organization name.
func (t *Template) SetOrganizationName(v string) error {
	return t.Set(FieldOrganizationName, v)
}

// OrganizationName returns the organization name.
func (t *Template) OrganizationName() (string, bool) {
	return t.stringField(FieldOrganizationName)
}

// SetGroupingIdentifier sets the grouping identifier.
func (t *Template) SetGroupingIdentifier(v string) error {
	return t.Set(FieldGroupingIdentifier, v)
}

// GroupingIdentifier returns the grouping identifier.
func (t *Template) GroupingIdentifier() (string, bool) {
	return t.stringField(FieldGroupingIdentifier)
}

// SetSuppressStripShine sets whether strip shine is suppressed.
func (t *Template) SetSuppressStripShine(v bool) error {
	return t.Set(FieldSuppressStripShine, v)
}

// SuppressStripShine returns whether strip shine is suppressed.
func (t *Template) SuppressStripShine() (bool, bool) {
	v, ok := t.fields[FieldSuppressStripShine]
	if !ok {
		return false, false
	}
	b, ok := v.(bool)
	return b, ok
}

// SetWebServiceURL sets the web service URL. The value must be an
// absolute https URL; the stored value is its normalized string form.
func (t *Template) SetWebServiceURL(v string) error {
	return t.Set(FieldWebServiceURL, v)
}

// WebServiceURL returns the normalized web service URL.
func (t *Template) WebServiceURL() (string, bool) {
	return t.stringField(FieldWebServiceURL)
}
