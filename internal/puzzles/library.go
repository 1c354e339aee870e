// Package puzzles provides the puzzle library: bundled fixtures plus an
// optional directory of puzzle files that can be reloaded while serving.
package puzzles

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/vovakirdan/tui-wordplay/internal/games/connections"
	"github.com/vovakirdan/tui-wordplay/internal/games/crossword"
	"github.com/vovakirdan/tui-wordplay/internal/puzzles/formats"
)

//go:embed bundled
var bundledFS embed.FS

// DailyID is the id of the Connections puzzle used when none matches the
// requested date.
const DailyID = "daily-puzzle"

// SourceBundled marks entries that ship with the binary.
const SourceBundled = "bundled"

// ErrNotFound is returned when no puzzle has the requested id.
var ErrNotFound = errors.New("puzzle not found")

// Entry describes one loaded puzzle.
type Entry struct {
	Kind   formats.Kind
	ID     string
	Title  string
	Source string // file path, or SourceBundled
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the library logger.
func WithLogger(l *log.Logger) Option {
	return func(lib *Library) {
		if l != nil {
			lib.log = l
		}
	}
}

// WithBundled replaces the embedded fixtures. A nil fs disables them.
func WithBundled(fsys fs.FS) Option {
	return func(lib *Library) { lib.bundled = fsys }
}

// WithOnChange registers a callback run after the watcher invalidates the
// library.
func WithOnChange(fn func(path string)) Option {
	return func(lib *Library) { lib.onChange = fn }
}

// Library indexes puzzles by kind and id. Files in Dir override bundled
// puzzles with the same id. Loading is lazy and repeated only after
// Invalidate.
type Library struct {
	Dir string

	bundled  fs.FS
	log      *log.Logger
	onChange func(path string)

	mu          sync.RWMutex
	loaded      bool
	crosswords  map[string]crossword.Puzzle
	connections map[string]connections.Puzzle
	entries     []Entry
}

// New creates a library over dir. An empty dir uses only bundled puzzles.
func New(dir string, opts ...Option) *Library {
	sub, _ := fs.Sub(bundledFS, "bundled")
	lib := &Library{
		Dir:     dir,
		bundled: sub,
		log:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(lib)
	}
	return lib
}

// Invalidate drops the index; the next lookup rescans.
func (l *Library) Invalidate() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.loaded = false
}

// index returns a loaded snapshot, scanning if needed.
func (l *Library) index() (map[string]crossword.Puzzle, map[string]connections.Puzzle, []Entry) {
	l.mu.RLock()
	if l.loaded {
		defer l.mu.RUnlock()
		return l.crosswords, l.connections, l.entries
	}
	l.mu.RUnlock()

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.loaded {
		l.scan()
		l.loaded = true
	}
	return l.crosswords, l.connections, l.entries
}

// scan rebuilds the index. Caller holds mu for writing.
func (l *Library) scan() {
	l.crosswords = make(map[string]crossword.Puzzle)
	l.connections = make(map[string]connections.Puzzle)
	sources := make(map[string]Entry)

	add := func(doc formats.Document, source string) {
		key := string(doc.Kind) + "/" + doc.ID()
		switch {
		case doc.Crossword != nil:
			l.crosswords[doc.ID()] = *doc.Crossword
		case doc.Connections != nil:
			l.connections[doc.ID()] = *doc.Connections
		default:
			return
		}
		sources[key] = Entry{Kind: doc.Kind, ID: doc.ID(), Title: doc.Title(), Source: source}
	}

	if l.bundled != nil {
		err := fs.WalkDir(l.bundled, ".", func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !formats.Supported(path) {
				return err
			}
			data, err := fs.ReadFile(l.bundled, path)
			if err != nil {
				return err
			}
			doc, err := formats.Decode(data, filepath.Ext(path))
			if err != nil {
				l.log.Warn("skipping bundled puzzle", "path", path, "err", err)
				return nil
			}
			add(doc, SourceBundled)
			return nil
		})
		if err != nil {
			l.log.Warn("reading bundled puzzles", "err", err)
		}
	}

	if l.Dir != "" {
		err := filepath.WalkDir(l.Dir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || !formats.Supported(path) {
				return nil
			}
			doc, err := LoadFile(path)
			if err != nil {
				// Unreadable files are skipped, not fatal.
				l.log.Warn("skipping puzzle file", "path", path, "err", err)
				return nil
			}
			add(doc, path)
			return nil
		})
		if err != nil {
			l.log.Warn("scanning puzzle dir", "dir", l.Dir, "err", err)
		}
	}

	l.entries = make([]Entry, 0, len(sources))
	for _, e := range sources {
		l.entries = append(l.entries, e)
	}
	sort.Slice(l.entries, func(i, j int) bool {
		if l.entries[i].Kind != l.entries[j].Kind {
			return l.entries[i].Kind < l.entries[j].Kind
		}
		return l.entries[i].ID < l.entries[j].ID
	})
	l.log.Debug("puzzle library loaded", "crosswords", len(l.crosswords), "connections", len(l.connections))
}

// Entries lists every loaded puzzle, sorted by kind then id.
func (l *Library) Entries() []Entry {
	_, _, entries := l.index()
	return append([]Entry(nil), entries...)
}

// Crosswords returns all crossword puzzles sorted by id.
func (l *Library) Crosswords() []crossword.Puzzle {
	cw, _, _ := l.index()
	out := make([]crossword.Puzzle, 0, len(cw))
	for _, p := range cw {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Crossword looks up a crossword by id.
func (l *Library) Crossword(id string) (crossword.Puzzle, error) {
	cw, _, _ := l.index()
	p, ok := cw[id]
	if !ok {
		return crossword.Puzzle{}, fmt.Errorf("crossword %q: %w", id, ErrNotFound)
	}
	return p, nil
}

// ConnectionsPuzzles returns all Connections puzzles sorted by id.
func (l *Library) ConnectionsPuzzles() []connections.Puzzle {
	_, cn, _ := l.index()
	out := make([]connections.Puzzle, 0, len(cn))
	for _, p := range cn {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Connections looks up a Connections puzzle by id.
func (l *Library) Connections(id string) (connections.Puzzle, error) {
	_, cn, _ := l.index()
	p, ok := cn[id]
	if !ok {
		return connections.Puzzle{}, fmt.Errorf("connections %q: %w", id, ErrNotFound)
	}
	return p, nil
}

// DailyConnections returns the puzzle dated date, else the DailyID puzzle,
// else the empty fallback. It never fails.
func (l *Library) DailyConnections(date string) connections.Puzzle {
	_, cn, _ := l.index()

	ids := make([]string, 0, len(cn))
	for id := range cn {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if p := cn[id]; date != "" && p.Date == date {
			return p
		}
	}
	if p, ok := cn[DailyID]; ok {
		if p.Date == "" {
			p.Date = date
		}
		return p
	}
	l.log.Warn("no daily connections puzzle, using fallback", "date", date)
	return connections.FallbackPuzzle(date)
}

// LoadFile decodes a single puzzle file.
func LoadFile(path string) (formats.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return formats.Document{}, fmt.Errorf("reading file %s: %w", path, err)
	}
	doc, err := formats.Decode(data, filepath.Ext(path))
	if err != nil {
		return formats.Document{}, fmt.Errorf("parsing file %s: %w", path, err)
	}
	return doc, nil
}

// Validate runs the authoring checks for the document's game.
func Validate(doc formats.Document) error {
	switch {
	case doc.Crossword != nil:
		return crossword.Validate(*doc.Crossword)
	case doc.Connections != nil:
		return connections.Validate(*doc.Connections)
	}
	return fmt.Errorf("empty %s document", doc.Kind)
}

// Watch invalidates the library whenever a puzzle file under Dir changes.
// It blocks until ctx is done. Without a Dir it just waits.
func (l *Library) Watch(ctx context.Context) error {
	if l.Dir == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("puzzles: watcher: %w", err)
	}
	defer watcher.Close()

	err = filepath.WalkDir(l.Dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("puzzles: watch %s: %w", l.Dir, err)
	}
	l.log.Info("watching puzzle dir", "dir", l.Dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			l.handleEvent(watcher, event)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			l.log.Warn("puzzle watcher error", "err", err)
		}
	}
}

func (l *Library) handleEvent(watcher *fsnotify.Watcher, event fsnotify.Event) {
	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			//nolint:errcheck // best effort; the dir may vanish again
			watcher.Add(event.Name)
			return
		}
	}
	if !formats.Supported(event.Name) {
		return
	}
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return
	}

	l.log.Debug("puzzle file changed", "path", event.Name, "op", event.Op.String())
	l.Invalidate()
	if l.onChange != nil {
		l.onChange(event.Name)
	}
}
