// Package gcpauth normalizes a credential source into Google client options.
//
// The source is a single configuration string: inline service-account JSON
// (anything that trims to start with '{') or a filesystem path. Inline JSON
// is materialized into a temporary file so the client constructor can load
// it; the file is a loader artifact only and is removed by Cleanup once the
// client holds the key material in memory. Nothing process-global is
// touched, so concurrent resolutions are independent.
package gcpauth

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"google.golang.org/api/option"

	"github.com/avdeev/courtside-media/pkg/types/errs"
)

// Credentials is a resolved credential source.
type Credentials struct {
	path      string
	ephemeral bool
}

// Resolve validates the credential source and prepares it for client
// construction. Callers must invoke Cleanup after the client is built.
func Resolve(raw string) (*Credentials, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, fmt.Errorf("gcpauth - Resolve - credentials not set: %w", errs.ErrConfig)
	}

	if strings.HasPrefix(trimmed, "{") {
		return resolveInline(trimmed)
	}

	if _, err := os.Stat(raw); err != nil {
		return nil, fmt.Errorf("gcpauth - Resolve - no credentials file at %q: %w", raw, errs.ErrConfig)
	}

	return &Credentials{path: raw}, nil
}

func resolveInline(trimmed string) (*Credentials, error) {
	var parsed map[string]any
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return nil, fmt.Errorf("gcpauth - resolveInline - json.Unmarshal: %w", errs.ErrConfig)
	}

	// Write the parsed object back out, not the raw input.
	b, err := json.Marshal(parsed)
	if err != nil {
		return nil, fmt.Errorf("gcpauth - resolveInline - json.Marshal: %w", errs.ErrConfig)
	}

	f, err := os.CreateTemp("", "gcp-credentials-*.json")
	if err != nil {
		return nil, fmt.Errorf("gcpauth - resolveInline - os.CreateTemp: %w", err)
	}

	if _, err = f.Write(b); err != nil {
		f.Close()
		_ = os.Remove(f.Name())

		return nil, fmt.Errorf("gcpauth - resolveInline - f.Write: %w", err)
	}

	if err = f.Close(); err != nil {
		_ = os.Remove(f.Name())

		return nil, fmt.Errorf("gcpauth - resolveInline - f.Close: %w", err)
	}

	return &Credentials{path: f.Name(), ephemeral: true}, nil
}

// ClientOption scopes a Google client constructor to the resolved credentials.
func (c *Credentials) ClientOption() option.ClientOption {
	return option.WithCredentialsFile(c.path)
}

// Cleanup removes the materialized credential file, if any. Removal failures
// are ignored; the file holds no state a constructed client still needs.
func (c *Credentials) Cleanup() {
	if c.ephemeral {
		_ = os.Remove(c.path)
	}
}
