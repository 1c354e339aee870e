package crossword

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultKeyPrefix namespaces saved crossword state.
const DefaultKeyPrefix = "crossword_"

const (
	defaultTickInterval = time.Second
	defaultSaveDebounce = 250 * time.Millisecond
)

// KV is the persistence surface: single-key get, set and remove.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Remove(key string) error
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the session logger.
func WithLogger(l *log.Logger) SessionOption {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithTickInterval sets the clock period.
func WithTickInterval(d time.Duration) SessionOption {
	return func(s *Session) {
		if d > 0 {
			s.tickEvery = d
		}
	}
}

// WithSaveDebounce sets the quiet period before a save is written.
func WithSaveDebounce(d time.Duration) SessionOption {
	return func(s *Session) {
		if d >= 0 {
			s.debounce = d
		}
	}
}

// WithKeyPrefix sets the storage key prefix.
func WithKeyPrefix(prefix string) SessionOption {
	return func(s *Session) {
		s.prefix = prefix
	}
}

// Session owns one crossword State and the two background resources
// around it: the running clock and the debounced save. All state changes,
// ticks included, are serialized through Dispatch.
type Session struct {
	mu    sync.Mutex
	state State

	kv        KV
	prefix    string
	log       *log.Logger
	tickEvery time.Duration
	debounce  time.Duration

	loadOnce  sync.Once
	tickStop  chan struct{}
	saveTimer *time.Timer
	closed    bool

	workers sync.WaitGroup
}

// NewSession starts a session on a fresh state for puzzle p. kv may be nil,
// in which case nothing is persisted.
func NewSession(p Puzzle, kv KV, opts ...SessionOption) *Session {
	s := &Session{
		state:     NewState(p),
		kv:        kv,
		prefix:    DefaultKeyPrefix,
		log:       log.New(io.Discard),
		tickEvery: defaultTickInterval,
		debounce:  defaultSaveDebounce,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Key returns the storage key for this puzzle.
func (s *Session) Key() string {
	return s.prefix + s.state.Puzzle.ID
}

// Load restores saved progress. Only the first call reads storage; a
// missing or corrupt entry leaves the state untouched. It reports whether
// a snapshot was applied.
func (s *Session) Load() bool {
	restored := false
	s.loadOnce.Do(func() {
		if s.kv == nil {
			return
		}
		raw, ok, err := s.kv.Get(s.Key())
		if err != nil {
			s.log.Debug("load failed", "key", s.Key(), "err", err)
			return
		}
		if !ok {
			return
		}
		saved, err := DecodeSaved(raw)
		if err != nil {
			s.log.Warn("ignoring corrupt save", "key", s.Key(), "err", err)
			return
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		s.apply(RestoreState{Saved: saved})
		restored = true
	})
	return restored
}

// Dispatch applies an action and returns the resulting state.
func (s *Session) Dispatch(a Action) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.closed {
		s.apply(a)
	}
	return s.state
}

// State returns the current state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Running reports whether the clock goroutine is active.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tickStop != nil
}

// Flush cancels any pending save and writes the current state now.
func (s *Session) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelSave()
	return s.write()
}

// Forget deletes saved progress and starts the puzzle over.
func (s *Session) Forget() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cancelSave()
	s.state = NewState(s.state.Puzzle)
	s.syncClock()
	if s.kv == nil {
		return nil
	}
	return s.kv.Remove(s.Key())
}

// Close stops the clock, drops any pending save and waits for background
// work to finish. Call Flush first to keep the latest state.
func (s *Session) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.stopClock()
	s.cancelSave()
	s.mu.Unlock()

	s.workers.Wait()
	return nil
}

// apply runs the reducer and reconciles background work. Caller holds mu.
func (s *Session) apply(a Action) {
	s.state = Reduce(s.state, a)
	s.syncClock()
	s.scheduleSave()
}

func (s *Session) syncClock() {
	switch {
	case s.state.Timer.IsRunning && s.tickStop == nil:
		s.startClock()
	case !s.state.Timer.IsRunning && s.tickStop != nil:
		s.stopClock()
	}
}

func (s *Session) startClock() {
	stop := make(chan struct{})
	s.tickStop = stop
	s.workers.Add(1)

	go func() {
		defer s.workers.Done()
		ticker := time.NewTicker(s.tickEvery)
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				s.tick(stop)
			}
		}
	}()
}

func (s *Session) tick(stop chan struct{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// A tick that raced with stopClock belongs to a dead clock.
	if s.tickStop != stop {
		return
	}
	s.apply(TickTimer{})
}

func (s *Session) stopClock() {
	if s.tickStop == nil {
		return
	}
	close(s.tickStop)
	s.tickStop = nil
}

func (s *Session) scheduleSave() {
	if s.kv == nil || s.closed {
		return
	}
	s.cancelSave()

	s.workers.Add(1)
	var t *time.Timer
	t = time.AfterFunc(s.debounce, func() {
		defer s.workers.Done()

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}
		if s.saveTimer == t {
			s.saveTimer = nil
		}
		if err := s.write(); err != nil {
			s.log.Debug("save failed", "key", s.Key(), "err", err)
		}
	})
	s.saveTimer = t
}

func (s *Session) cancelSave() {
	if s.saveTimer == nil {
		return
	}
	if s.saveTimer.Stop() {
		s.workers.Done()
	}
	s.saveTimer = nil
}

func (s *Session) write() error {
	if s.kv == nil {
		return nil
	}
	raw, err := EncodeSaved(Snapshot(s.state))
	if err != nil {
		return err
	}
	return s.kv.Set(s.Key(), raw)
}
