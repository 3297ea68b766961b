package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Trust label constants. Unlike risk labels, a HIGH trust score is good.
const (
	TrustedValue  = "Trusted"  // 80 and above
	ModerateValue = "Moderate" // 60-79
	CautionValue  = "Caution"  // 40-59
	CriticalValue = "Critical" // below 40
)

// Color variables for console output.
var (
	TrustedColor  = color.New(color.FgGreen)           // healthy, no action needed
	ModerateColor = color.New(color.FgCyan)            // informational
	CautionColor  = color.New(color.FgYellow)          // standard caution, not bold
	CriticalColor = color.New(color.FgRed, color.Bold) // standard danger
)

// GetPlainLabel returns a plain text label for a trust score.
// This is the core logic used for CSV, JSON, and table printing.
func GetPlainLabel(score float64) string {
	switch {
	case score >= 80:
		return TrustedValue
	case score >= 60:
		return ModerateValue
	case score >= 40:
		return CautionValue
	default:
		return CriticalValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(score float64) string {
	text := GetPlainLabel(score)

	switch text {
	case TrustedValue:
		return TrustedColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	case CautionValue:
		return CautionColor.Sprint(text)
	default: // "Critical"
		return CriticalColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on the
// provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// ShouldIgnore returns true if the given path matches any of the exclude patterns.
// It supports simple glob patterns (using filepath.Match) when the pattern
// contains wildcard characters (*, ?, [ ]). Patterns ending with '/' are treated
// as prefixes. Patterns starting with '.' are treated as suffix (extension) matches.
func ShouldIgnore(path string, excludes []string) bool {
	for _, ex := range excludes {
		ex = strings.TrimSpace(ex)
		if ex == "" {
			continue
		}
		switch {
		case strings.ContainsAny(ex, "*?["):
			if ok, _ := filepath.Match(ex, path); ok {
				return true
			}
			if ok, _ := filepath.Match(ex, filepath.Base(path)); ok {
				return true
			}
		case strings.HasSuffix(ex, "/"):
			if strings.HasPrefix(path, ex) || strings.Contains(path, "/"+ex) {
				return true
			}
		case strings.HasPrefix(ex, "."):
			if strings.HasSuffix(path, ex) {
				return true
			}
		case path == ex:
			return true
		}
	}
	return false
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetCacheFilePath returns the path to the JSON document for cache storage.
func GetCacheFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".trustspot_cache.json"
	}
	return filepath.Join(homeDir, ".trustspot_cache.json")
}

// GetCacheDBFilePath returns the path to the SQLite DB file for cache storage.
func GetCacheDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".trustspot_cache.db"
	}
	return filepath.Join(homeDir, ".trustspot_cache.db")
}

// GetHistoryDBFilePath returns the path to the SQLite DB file for scan history storage.
func GetHistoryDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".trustspot_history.db"
	}
	return filepath.Join(homeDir, ".trustspot_history.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
