package utils

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"strings"
)

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// LatestFile returns the most recently modified regular file in dir whose name
// has the given extension (e.g. ".rlog"). An empty ext matches every file.
// Returns "" when dir is missing or holds no matching file.
func LatestFile(dir string, ext string) string {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return ""
	}

	var latest string
	var latestMod int64
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if ext != "" && !strings.HasSuffix(entry.Name(), ext) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if latest == "" || info.ModTime().UnixNano() > latestMod {
			latest = filepath.Join(dir, entry.Name())
			latestMod = info.ModTime().UnixNano()
		}
	}
	return latest
}

// ReadLines opens a file and returns all its lines.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// CountLines returns the number of lines in a file. A trailing newline does
// not add an extra empty line. Returns -1 on read failure.
func CountLines(path string) int {
	lines, err := ReadLines(path)
	if err != nil {
		return -1
	}
	return len(lines)
}

// SameContent reports whether two files are byte-for-byte identical.
func SameContent(a, b string) bool {
	da, err := os.ReadFile(a)
	if err != nil {
		return false
	}
	db, err := os.ReadFile(b)
	if err != nil {
		return false
	}
	return bytes.Equal(da, db)
}

// EnsureTrailingSep appends the OS path separator to a non-empty path that
// does not already end in one. Resolved directories are always
// separator-terminated so callers can join filenames by plain concatenation.
func EnsureTrailingSep(path string) string {
	if path == "" {
		return ""
	}
	if strings.HasSuffix(path, string(os.PathSeparator)) {
		return path
	}
	return path + string(os.PathSeparator)
}
