package config

import (
	"os"
	"testing"
)

// chdir is a go1.21-compatible stand-in for testing.T.Chdir: it changes the
// working directory and restores the original one when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("chdir: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Fatalf("chdir: restoring %s: %v", orig, err)
		}
	})
}
