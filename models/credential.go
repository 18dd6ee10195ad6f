package models

import "strings"

// Credential is the API token of the bookmarking service, opaque apart from
// its "username:secret" shape.
type Credential string

// Username returns the text before the first ':'; the whole credential when
// it has none.
func (c Credential) Username() string {
	name, _, _ := strings.Cut(string(c), ":")
	return name
}

// String implements fmt.Stringer and hides the secret part.
func (c Credential) String() string {
	if c == "" {
		return ""
	}

	return c.Username() + ":***"
}
