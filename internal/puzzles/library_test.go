package puzzles

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-wordplay/internal/games/connections"
	"github.com/vovakirdan/tui-wordplay/internal/puzzles/formats"
)

const extraConnections = `
kind: connections
id: extra
date: "2026-10-18"
groups:
  - {category: A, difficulty: yellow, words: [A1, A2, A3, A4]}
  - {category: B, difficulty: green, words: [B1, B2, B3, B4]}
  - {category: C, difficulty: blue, words: [C1, C2, C3, C4]}
  - {category: D, difficulty: purple, words: [D1, D2, D3, D4]}
`

const overrideMini = `{
  "id": "mini-001",
  "title": "Local Mini",
  "grid": [["A", "B"]],
  "clues": {"across": [{"number": 1, "text": "x", "answer": "AB", "row": 0, "col": 0}]}
}`

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestBundledPuzzlesAreValid(t *testing.T) {
	lib := New("")

	entries := lib.Entries()
	require.NotEmpty(t, entries)
	for _, e := range entries {
		assert.Equal(t, SourceBundled, e.Source)
	}

	for _, p := range lib.Crosswords() {
		doc := formats.Document{Kind: formats.KindCrossword, Crossword: &p}
		assert.NoError(t, Validate(doc), p.ID)
	}
	for _, p := range lib.ConnectionsPuzzles() {
		doc := formats.Document{Kind: formats.KindConnections, Connections: &p}
		assert.NoError(t, Validate(doc), p.ID)
	}
}

func TestBundledFormats(t *testing.T) {
	lib := New("")

	mini, err := lib.Crossword("mini-001")
	require.NoError(t, err)
	assert.Equal(t, 5, mini.Rows)
	assert.Equal(t, ".", mini.Grid[4][0])

	square, err := lib.Crossword("square-001")
	require.NoError(t, err, "toml layout puzzle")
	assert.Equal(t, 3, square.Rows)
	assert.Equal(t, 3, square.Cols)
	assert.Equal(t, []string{"T", "E", "N"}, square.Grid[2])

	daily, err := lib.Connections(DailyID)
	require.NoError(t, err)
	assert.Len(t, daily.Groups, 4)
	assert.Equal(t, connections.Purple, daily.Groups[3].Difficulty)
}

func TestDirectoryOverridesBundled(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "local/mini.json", overrideMini)
	writeFile(t, dir, "extra.yaml", extraConnections)
	writeFile(t, dir, "broken.toml", "id = [")
	writeFile(t, dir, "notes.txt", "ignored")

	lib := New(dir)

	mini, err := lib.Crossword("mini-001")
	require.NoError(t, err)
	assert.Equal(t, "Local Mini", mini.Title)
	assert.Equal(t, 1, mini.Rows, "rows default to grid height")
	assert.Equal(t, 2, mini.Cols)

	_, err = lib.Connections("extra")
	require.NoError(t, err)

	var sources []string
	for _, e := range lib.Entries() {
		if e.ID == "mini-001" {
			sources = append(sources, e.Source)
		}
	}
	assert.Equal(t, []string{filepath.Join(dir, "local", "mini.json")}, sources)
}

func TestNotFound(t *testing.T) {
	lib := New("")

	_, err := lib.Crossword("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = lib.Connections("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestDailyConnections(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "extra.yaml", extraConnections)
	lib := New(dir)

	assert.Equal(t, "extra", lib.DailyConnections("2026-10-18").ID, "date match wins")

	p := lib.DailyConnections("2026-10-19")
	assert.Equal(t, DailyID, p.ID)
	assert.Equal(t, "2026-10-19", p.Date)

	empty := New("", WithBundled(fstest.MapFS{}))
	fb := empty.DailyConnections("2026-10-19")
	assert.Equal(t, connections.FallbackID, fb.ID)
	assert.Equal(t, "2026-10-19", fb.Date)
	assert.Empty(t, fb.Groups)
}

func TestInvalidateRescans(t *testing.T) {
	dir := t.TempDir()
	lib := New(dir, WithBundled(nil))
	assert.Empty(t, lib.Entries())

	writeFile(t, dir, "extra.yaml", extraConnections)
	assert.Empty(t, lib.Entries(), "index is cached")

	lib.Invalidate()
	assert.Len(t, lib.Entries(), 1)
}

func TestWatchInvalidatesOnChange(t *testing.T) {
	dir := t.TempDir()
	var changes atomic.Int32
	lib := New(dir, WithBundled(nil), WithOnChange(func(string) { changes.Add(1) }))
	require.Empty(t, lib.Entries())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- lib.Watch(ctx) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// The watcher registers asynchronously; keep writing until it notices.
	assert.Eventually(t, func() bool {
		writeFile(t, dir, "extra.yaml", extraConnections)
		return changes.Load() > 0
	}, 5*time.Second, 50*time.Millisecond)

	_, err := lib.Connections("extra")
	assert.NoError(t, err)
}

func TestWatchWithoutDirWaits(t *testing.T) {
	lib := New("")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.NoError(t, lib.Watch(ctx))
}

func TestLoadFileAndValidate(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "bad.json", `{"kind":"connections","id":"bad","groups":[{"category":"A","difficulty":"yellow","words":["X"]}]}`)

	doc, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, formats.KindConnections, doc.Kind)

	var verr connections.ValidationError
	require.True(t, errors.As(Validate(doc), &verr))
	assert.Equal(t, "GROUP_COUNT", verr.Code)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
