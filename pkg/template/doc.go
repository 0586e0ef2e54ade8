// Package template implements the reusable pass-configuration template
// at the heart of passbundle.
//
// A Template pairs a style variant with a validated field mapping,
// signing-key location metadata and a shared image collection. Values
// enter the field mapping only through the static field table, so every
// stored value has passed its field's validation rule. Templates are
// built directly with New or loaded from a bundle directory with Load,
// and mint concrete pass instances with CreatePass.
package template
