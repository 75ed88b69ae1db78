package platform

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// SpriteExtension is the file extension of cached team logos.
const SpriteExtension = ".svg"

// DefaultSpriteCacheDir returns the directory that holds cached team logos.
// Logos are shared scratch data, so they live directly in the platform
// temporary directory rather than under a per-user config path.
func DefaultSpriteCacheDir() string {
	return os.TempDir()
}

// SpritePath computes the deterministic cache path for a team id inside dir.
func SpritePath(dir string, id uint) string {
	return filepath.Join(dir, strconv.FormatUint(uint64(id), 10)+SpriteExtension)
}

// IsRegularFile reports whether path exists and is a regular file.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// CreateDirectoryIfNotExists creates the directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// WriteSprite writes body verbatim to path, creating or truncating the file.
func WriteSprite(path string, body []byte) error {
	if err := os.WriteFile(path, body, DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write sprite %s: %w", path, err)
	}
	return nil
}
