package ledger

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var ErrLedgerNotFound = errors.New("ledger file not found")

const byteOrderMark = "\ufeff"

// SplitLines turns file content into lines. A leading byte order mark is
// dropped, CRLF is folded to LF and one final newline terminates the last line.
func SplitLines(text string) []string {
	text = strings.TrimPrefix(text, byteOrderMark)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	if text == "" {
		return []string{}
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// JoinLines is the inverse of SplitLines.
func JoinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func ReadFile(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrLedgerNotFound, path)
		}
		return nil, fmt.Errorf("read ledger %s: %w", path, err)
	}
	return SplitLines(string(content)), nil
}

// WriteFile replaces the ledger through a temporary file in the same directory,
// so a failed write leaves the previous content in place.
func WriteFile(path string, lines []string) error {
	mode := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("ledger path is a directory: %s", path)
		}
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp ledger in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.WriteString(JoinLines(lines)); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp ledger %s: %w", tmpPath, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync temp ledger %s: %w", tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp ledger %s: %w", tmpPath, err)
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		return fmt.Errorf("chmod temp ledger %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace ledger %s: %w", path, err)
	}
	return nil
}
