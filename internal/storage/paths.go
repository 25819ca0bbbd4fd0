// Package storage provides persistent caching of precomputed heuristic
// distance maps, plus plain-file storage of instances and solutions.
package storage

import (
	"os"
	"path/filepath"
	"runtime"
)

const appName = "tiltmp"

// GetDataDir returns the platform-specific data directory for the application.
// - macOS: ~/Library/Application Support/tiltmp/
// - Linux: ~/.local/share/tiltmp/
// - Windows: %APPDATA%/tiltmp/
func GetDataDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "darwin":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		baseDir = filepath.Join(homeDir, "Library", "Application Support")

	case "windows":
		baseDir = os.Getenv("APPDATA")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, "AppData", "Roaming")
		}

	default:
		baseDir = os.Getenv("XDG_DATA_HOME")
		if baseDir == "" {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			baseDir = filepath.Join(homeDir, ".local", "share")
		}
	}

	dataDir := filepath.Join(baseDir, appName)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}
	return dataDir, nil
}

// GetDatabaseDir returns the directory for storing the BadgerDB-backed
// distance cache.
func GetDatabaseDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	dbDir := filepath.Join(dataDir, "cache")
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return "", err
	}
	return dbDir, nil
}

// GetInstanceDir returns the directory for storing instance/solution JSON
// files when a caller does not specify an explicit path.
func GetInstanceDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	instDir := filepath.Join(dataDir, "instances")
	if err := os.MkdirAll(instDir, 0755); err != nil {
		return "", err
	}
	return instDir, nil
}
