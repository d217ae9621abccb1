package static

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestReadTree(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "main.py", "print('hi')")
	writeFile(t, root, "src/app.js", "let x")
	writeFile(t, root, "Dockerfile", "FROM python:3.12")
	writeFile(t, root, "node_modules/lodash/index.js", "skip me")
	writeFile(t, root, ".git/config", "skip me")
	writeFile(t, root, "logo.png", "binary-ish")
	writeFile(t, root, "huge.py", strings.Repeat("a", maxFileSize+1))

	files, err := readTree(root)
	require.NoError(t, err)

	paths := make(map[string]string, len(files))
	for _, f := range files {
		paths[f.Path] = f.Content
	}
	assert.Equal(t, "print('hi')", paths["main.py"])
	assert.Equal(t, "let x", paths["src/app.js"])
	assert.Contains(t, paths, "Dockerfile")
	assert.NotContains(t, paths, "node_modules/lodash/index.js")
	assert.NotContains(t, paths, ".git/config")
	assert.NotContains(t, paths, "logo.png")
	assert.NotContains(t, paths, "huge.py", "files over the size cap are skipped")
}

func TestCleanupClone(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "asm_x/file.py", "x")

	CleanupClone(root, "asm_x")
	_, err := os.Stat(filepath.Join(root, "asm_x"))
	assert.True(t, os.IsNotExist(err))

	CleanupClone(root, "asm_missing")
}
