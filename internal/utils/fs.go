package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	// MaxFilenameLength is the maximum length for generated filenames
	MaxFilenameLength = 200
)

var (
	// invalidCharsRegex matches characters invalid in filenames
	invalidCharsRegex = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)

	// multipleSpacesRegex matches multiple consecutive spaces
	multipleSpacesRegex = regexp.MustCompile(`\s+`)

	// windowsReserved contains Windows reserved filenames
	windowsReserved = map[string]bool{
		"con": true, "prn": true, "aux": true, "nul": true,
		"com1": true, "com2": true, "com3": true, "com4": true,
		"com5": true, "com6": true, "com7": true, "com8": true, "com9": true,
		"lpt1": true, "lpt2": true, "lpt3": true, "lpt4": true,
		"lpt5": true, "lpt6": true, "lpt7": true, "lpt8": true, "lpt9": true,
	}
)

// SanitizeFilename converts a string to a safe filename
func SanitizeFilename(name string) string {
	if name == "" {
		return "untitled"
	}

	// Replace invalid characters with underscores
	safe := invalidCharsRegex.ReplaceAllString(name, "_")

	// Normalize whitespace
	safe = multipleSpacesRegex.ReplaceAllString(safe, " ")
	safe = strings.TrimSpace(safe)

	// Replace spaces with hyphens
	safe = strings.ReplaceAll(safe, " ", "-")

	// Remove leading/trailing dots and hyphens
	safe = strings.Trim(safe, ".-")

	// Check for Windows reserved names
	checkName := strings.ToLower(safe)
	if ext := filepath.Ext(checkName); ext != "" {
		checkName = strings.TrimSuffix(checkName, ext)
	}
	if windowsReserved[checkName] {
		safe = safe + "_file"
	}

	// Truncate if too long
	if len(safe) > MaxFilenameLength {
		ext := filepath.Ext(safe)
		base := safe[:MaxFilenameLength-len(ext)]
		safe = base + ext
	}

	if safe == "" {
		return "untitled"
	}

	return safe
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(path string) error {
	if path == "" {
		return fmt.Errorf("empty directory path")
	}

	info, err := os.Stat(path)
	if err == nil {
		if !info.IsDir() {
			return fmt.Errorf("path exists but is not a directory: %s", path)
		}
		return nil
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat directory: %w", err)
	}

	if err := os.MkdirAll(path, 0o755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	return nil
}

// ExpandPath expands ~ to the user home directory
func ExpandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		if path == "~" {
			return home, nil
		}
		return filepath.Join(home, path[2:]), nil
	}

	return path, nil
}
