package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// DefaultModelDirFor resolves the per-user model directory for a given OS.
// Split out from ResolveModelDir so tests can cover each OS without
// touching the environment.
func DefaultModelDirFor(goos, homeDir, xdgDataHome, appData string) (string, error) {
	dataDir, err := defaultDataDirFor(goos, homeDir, xdgDataHome, appData)
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "models"), nil
}

// ResolveModelDir returns the override when set, otherwise the platform's
// default model directory.
func ResolveModelDir(override string) (string, error) {
	if override != "" {
		return filepath.Clean(override), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home: %w", err)
	}

	return DefaultModelDirFor(runtime.GOOS, homeDir, os.Getenv("XDG_DATA_HOME"), os.Getenv("APPDATA"))
}

func defaultDataDirFor(goos, homeDir, xdgDataHome, appData string) (string, error) {
	if homeDir == "" {
		return "", errors.New("home directory is empty")
	}

	switch goos {
	case "linux":
		if xdgDataHome != "" {
			return filepath.Join(xdgDataHome, "whisperctl"), nil
		}
		return filepath.Join(homeDir, ".local", "share", "whisperctl"), nil
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "whisperctl"), nil
	case "windows":
		if appData == "" {
			return "", errors.New("APPDATA is empty")
		}
		return filepath.Join(appData, "whisperctl"), nil
	default:
		return "", fmt.Errorf("unsupported OS: %s", goos)
	}
}
