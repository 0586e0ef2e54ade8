package styles

import (
	"github.com/arthur-debert/passbundle/pkg/errors"
)

// Style is one of the closed set of pass layout variants.
type Style string

// The registered pass styles, in registry order. Detection scans this
// order, so it is part of the package contract.
const (
	BoardingPass Style = "boardingPass"
	Coupon       Style = "coupon"
	EventTicket  Style = "eventTicket"
	Generic      Style = "generic"
	StoreCard    Style = "storeCard"
)

// registry holds every known style in its defined order.
var registry = []Style{
	BoardingPass,
	Coupon,
	EventTicket,
	Generic,
	StoreCard,
}

// All returns the registered styles in registry order.
func All() []Style {
	out := make([]Style, len(registry))
	copy(out, registry)
	return out
}

// IsValid reports whether s is a registered style.
func IsValid(s Style) bool {
	for _, known := range registry {
		if s == known {
			return true
		}
	}
	return false
}

// Detect returns the first registered style that appears as a top-level
// key of a parsed bundle definition.
func Detect(def map[string]interface{}) (Style, error) {
	for _, style := range registry {
		if _, ok := def[string(style)]; ok {
			return style, nil
		}
	}
	return "", errors.New(errors.ErrStyleUnknown, "definition contains no registered style key").
		WithDetail("knownStyles", registry)
}
