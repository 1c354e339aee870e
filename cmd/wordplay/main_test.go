package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validConnections = `kind: connections
id: test-1
groups:
  - {category: Fish, difficulty: yellow, words: [BASS, SOLE, PIKE, CARP]}
  - {category: Planets, difficulty: green, words: [MARS, VENUS, EARTH, SATURN]}
  - {category: Keys, difficulty: blue, words: [SHIFT, ENTER, ESCAPE, TAB]}
  - {category: ___ball, difficulty: purple, words: [FOOT, BASKET, SNOW, EYE]}
`

const shortConnections = `kind: connections
id: test-2
groups:
  - {category: Fish, difficulty: yellow, words: [BASS, SOLE, PIKE]}
`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestCollectPuzzleFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.yaml", validConnections)
	b := writeFile(t, dir, "nested/b.yaml", shortConnections)
	writeFile(t, dir, "notes.txt", "ignored")

	files, err := collectPuzzleFiles([]string{dir})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b}, files)

	files, err = collectPuzzleFiles([]string{a})
	require.NoError(t, err)
	assert.Equal(t, []string{a}, files)

	_, err = collectPuzzleFiles([]string{filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()

	assert.NoError(t, validateFile(writeFile(t, dir, "ok.yaml", validConnections)))
	assert.ErrorContains(t, validateFile(writeFile(t, dir, "short.yaml", shortConnections)), "GROUP_COUNT")
	assert.Error(t, validateFile(writeFile(t, dir, "broken.json", "{not json")))
}

func TestRunValidateReportsInvalid(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.yaml", validConnections)
	assert.NoError(t, runValidate(nil, []string{dir}))

	writeFile(t, dir, "short.yaml", shortConnections)
	assert.ErrorIs(t, runValidate(nil, []string{dir}), errInvalid)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandHome("~/.wordplay/puzzles")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".wordplay", "puzzles"), got)

	got, err = expandHome("./puzzles")
	require.NoError(t, err)
	assert.Equal(t, "./puzzles", got)
}
