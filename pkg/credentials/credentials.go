// Package credentials stores the CLI's API key on disk.
//
// The key is kept as a JSON file in a config directory
// (~/.config/zipdemographics/ by default) with owner-only permissions.
// Stored credentials never expire client-side; revocation happens on the
// APIVerve dashboard, and the next lookup surfaces the server's rejection.
//
// # Usage
//
//	store, err := credentials.NewFileStore("") // default config dir
//	if err != nil {
//	    return err
//	}
//	cred, err := credentials.New(apiKey, "work account")
//	if err != nil {
//	    return err
//	}
//	if err := store.Set(ctx, cred); err != nil {
//	    return err
//	}
package credentials

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Credential holds a stored API key.
type Credential struct {
	ID        string    `json:"id"`
	APIKey    string    `json:"api_key"`
	Label     string    `json:"label,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a Credential with a fresh ID and creation timestamp.
func New(apiKey, label string) (*Credential, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("empty API key")
	}
	return &Credential{
		ID:        uuid.NewString(),
		APIKey:    apiKey,
		Label:     label,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Masked returns the key with all but the last four characters hidden,
// suitable for status output.
func (c *Credential) Masked() string {
	if len(c.APIKey) <= 4 {
		return strings.Repeat("*", len(c.APIKey))
	}
	return strings.Repeat("*", len(c.APIKey)-4) + c.APIKey[len(c.APIKey)-4:]
}

// Store is the interface for credential storage backends.
type Store interface {
	// Get retrieves the stored credential.
	// Returns nil, nil if no credential is stored.
	Get(ctx context.Context) (*Credential, error)

	// Set stores a credential, replacing any existing one.
	Set(ctx context.Context, cred *Credential) error

	// Delete removes the stored credential. Deleting a missing
	// credential is not an error.
	Delete(ctx context.Context) error
}
