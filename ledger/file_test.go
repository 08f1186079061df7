package ledger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: []string{}},
		{name: "bom only", text: "\ufeff", want: []string{}},
		{name: "single newline", text: "\n", want: []string{""}},
		{name: "no final newline", text: "a\nb", want: []string{"a", "b"}},
		{name: "final newline", text: "a\nb\n", want: []string{"a", "b"}},
		{name: "trailing blank", text: "a\n\n", want: []string{"a", ""}},
		{name: "crlf and bom", text: "\ufeff# Worklog\r\n\r\n⏱ 5m\r\n", want: []string{"# Worklog", "", "⏱ 5m"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, SplitLines(tc.text))
		})
	}
}

func TestJoinLinesInvertsSplitLines(t *testing.T) {
	t.Parallel()

	for _, lines := range [][]string{{}, {""}, {"a"}, {"a", ""}, {"", "", "b"}} {
		assert.Equal(t, lines, SplitLines(JoinLines(lines)))
	}
}

func TestReadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.md"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLedgerNotFound)
}

func TestWriteFile_DropsBOMAndKeepsMode(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "worklog.md")
	require.NoError(t, os.WriteFile(path, []byte("\ufeff# Worklog\r\n"), 0o600))

	lines, err := ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []string{"# Worklog"}, lines)

	p := NewProcessor(DefaultLayout())
	require.NoError(t, WriteFile(path, p.Rewrite(lines)))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# Worklog\n\n🔹 Totale\n\n⏱ 0m\n\n", string(content))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestWriteFile_RejectsDirectory(t *testing.T) {
	t.Parallel()

	err := WriteFile(t.TempDir(), []string{"x"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}
