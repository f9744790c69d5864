package handlers

import "testing"

func TestSafeDeleteUploadRefusesOutsideUploads(t *testing.T) {
	cases := []string{
		"/public/index.html",
		"/public/../etc/passwd",
		"/public/uploads/../../secret",
		"/etc/passwd",
	}
	for _, path := range cases {
		if err := safeDeleteUpload(path); err == nil {
			t.Errorf("expected refusal for %q", path)
		}
	}
}

func TestSafeDeleteUploadIgnoresEmptyAndMissing(t *testing.T) {
	if err := safeDeleteUpload(""); err != nil {
		t.Errorf("empty path should be a no-op, got %v", err)
	}
	// Deleting a file that does not exist is not an error.
	if err := safeDeleteUpload("/public/uploads/products/does-not-exist.jpg"); err != nil {
		t.Errorf("missing file should be a no-op, got %v", err)
	}
}
