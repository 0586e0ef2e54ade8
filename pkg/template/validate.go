package template

import (
	"net/url"
	"regexp"
	"strconv"

	"github.com/arthur-debert/passbundle/pkg/errors"
)

// colorPattern matches the accepted "rgb(R, G, B)" shape with optional
// whitespace around the channel values.
var colorPattern = regexp.MustCompile(`^rgb\(\s*(\d+)\s*,\s*(\d+)\s*,\s*(\d+)\s*\)$`)

// ValidateColor checks that value is an "rgb(r, g, b)" string with each
// channel in [0,255]. The original string is what gets stored, so this
// is a pure gate with no transformed output.
func ValidateColor(value string) error {
	m := colorPattern.FindStringSubmatch(value)
	if m == nil {
		return errors.Newf(errors.ErrColorFormat, "color %q does not match rgb(r, g, b)", value)
	}

	for _, channel := range m[1:] {
		n, err := strconv.Atoi(channel)
		if err != nil {
			return errors.Wrapf(err, errors.ErrColorFormat, "color %q has a non-numeric channel", value)
		}
		if n < 0 || n > 255 {
			return errors.Newf(errors.ErrColorFormat, "color %q channel %d is outside [0,255]", value, n)
		}
	}

	return nil
}

// normalizeSecureURL checks that value parses as an absolute URL with
// scheme exactly "https" and returns the normalized string form.
func normalizeSecureURL(value string) (string, error) {
	u, err := url.Parse(value)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrURLFormat, "invalid URL %q", value)
	}
	if !u.IsAbs() {
		return "", errors.Newf(errors.ErrURLFormat, "URL %q is not absolute", value)
	}
	if u.Scheme != "https" {
		return "", errors.Newf(errors.ErrURLFormat, "URL %q scheme must be https, got %q", value, u.Scheme)
	}
	return u.String(), nil
}
