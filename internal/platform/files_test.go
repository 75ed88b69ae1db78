package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSpritePath(t *testing.T) {
	tests := []struct {
		dir      string
		id       uint
		expected string
	}{
		{"/tmp", 2, filepath.Join("/tmp", "2.svg")},
		{"/var/cache", 22, filepath.Join("/var/cache", "22.svg")},
		{"", 7, "7.svg"},
	}

	for _, test := range tests {
		result := SpritePath(test.dir, test.id)
		if result != test.expected {
			t.Errorf("SpritePath(%q, %d) = %q, expected %q", test.dir, test.id, result, test.expected)
		}
	}
}

func TestIsRegularFile(t *testing.T) {
	tempDir := t.TempDir()

	// Missing path
	if IsRegularFile(filepath.Join(tempDir, "missing.svg")) {
		t.Error("Expected missing path to not be a regular file")
	}

	// Directory
	if IsRegularFile(tempDir) {
		t.Error("Expected directory to not be a regular file")
	}

	// Regular file
	path := filepath.Join(tempDir, "1.svg")
	if err := os.WriteFile(path, []byte("<svg/>"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	if !IsRegularFile(path) {
		t.Error("Expected regular file to be detected")
	}
}

func TestWriteSprite(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "3.svg")
	body := []byte("<svg><circle/></svg>")

	if err := WriteSprite(path, body); err != nil {
		t.Fatalf("Failed to write sprite: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read sprite back: %v", err)
	}
	if string(got) != string(body) {
		t.Errorf("Expected body %q, got %q", body, got)
	}

	// Second write truncates and replaces
	if err := WriteSprite(path, []byte("<svg/>")); err != nil {
		t.Fatalf("Failed to overwrite sprite: %v", err)
	}
	got, _ = os.ReadFile(path)
	if string(got) != "<svg/>" {
		t.Errorf("Expected overwritten body '<svg/>', got %q", got)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "cache_dir")

	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	if err := CreateDirectoryIfNotExists(testDir); err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}
