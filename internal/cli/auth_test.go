package cli

import (
	"context"
	"io"
	"strings"
	"testing"
)

func runCommand(t *testing.T, c *CLI, args ...string) error {
	t.Helper()
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.ExecuteContext(context.Background())
}

func TestAuthSetAndStatus(t *testing.T) {
	c := newTestCLI(t)

	if err := runCommand(t, c, "auth", "set", testKey, "--label", "work"); err != nil {
		t.Fatalf("auth set failed: %v", err)
	}

	store, err := c.credentialStore()
	if err != nil {
		t.Fatal(err)
	}
	cred, err := store.Get(context.Background())
	if err != nil {
		t.Fatalf("Get() error: %v", err)
	}
	if cred == nil {
		t.Fatal("auth set should have stored a credential")
	}
	if cred.APIKey != testKey {
		t.Errorf("stored key = %q, want %q", cred.APIKey, testKey)
	}
	if cred.Label != "work" {
		t.Errorf("stored label = %q, want %q", cred.Label, "work")
	}

	if err := runCommand(t, c, "auth", "status"); err != nil {
		t.Errorf("auth status failed: %v", err)
	}
}

func TestAuthSetRejectsInvalidKey(t *testing.T) {
	c := newTestCLI(t)

	err := runCommand(t, c, "auth", "set", "too-short")
	if err == nil {
		t.Fatal("auth set should reject a key that fails construction checks")
	}
	if !strings.Contains(err.Error(), "refusing to store key") {
		t.Errorf("error = %q", err)
	}

	store, _ := c.credentialStore()
	if cred, _ := store.Get(context.Background()); cred != nil {
		t.Error("invalid key must not be written to disk")
	}
}

func TestAuthClear(t *testing.T) {
	c := newTestCLI(t)

	if err := runCommand(t, c, "auth", "set", testKey); err != nil {
		t.Fatal(err)
	}
	if err := runCommand(t, c, "auth", "clear"); err != nil {
		t.Fatalf("auth clear failed: %v", err)
	}

	store, _ := c.credentialStore()
	if cred, _ := store.Get(context.Background()); cred != nil {
		t.Error("auth clear should remove the stored credential")
	}

	// Clearing again is not an error.
	if err := runCommand(t, c, "auth", "clear"); err != nil {
		t.Errorf("auth clear on empty store failed: %v", err)
	}
}

func TestAuthStatusEmpty(t *testing.T) {
	c := newTestCLI(t)

	if err := runCommand(t, c, "auth", "status"); err != nil {
		t.Errorf("auth status on empty store failed: %v", err)
	}
}
