package domain

import "strings"

const redacted = "[redacted]"

// Credential is the opaque secret used to authorize completion calls.
// Formatting, logging and marshalling all yield a redacted placeholder;
// only Reveal returns the raw value.
type Credential string

// NewCredential trims surrounding whitespace from user input.
func NewCredential(value string) Credential {
	return Credential(strings.TrimSpace(value))
}

// Empty reports whether no credential is held.
func (c Credential) Empty() bool {
	return c == ""
}

// Reveal returns the raw secret for use as an auth header.
func (c Credential) Reveal() string {
	return string(c)
}

func (c Credential) String() string {
	if c.Empty() {
		return ""
	}
	return redacted
}

func (c Credential) GoString() string {
	return c.String()
}

// MarshalText keeps the secret out of JSON and YAML encoders.
func (c Credential) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}
