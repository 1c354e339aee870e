package tui

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-wordplay/internal/core"
	"github.com/vovakirdan/tui-wordplay/internal/registry"
)

// binding pairs a key binding with the action it produces.
type binding struct {
	key    key.Binding
	action core.Action
}

// GameKeyMap translates Bubble Tea key messages to game actions.
// Typing games receive printable letters, so their commands live on
// function and control keys; command games use plain letters.
type GameKeyMap struct {
	mode     registry.Mode
	bindings []binding

	Quit key.Binding
	Back key.Binding
	Help key.Binding
}

// NewGameKeyMap returns the bindings for a game mode.
func NewGameKeyMap(mode registry.Mode) GameKeyMap {
	km := GameKeyMap{
		mode: mode,
		Quit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Back: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "menu")),
		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
	}

	nb := func(action core.Action, help string, keys ...string) binding {
		return binding{
			key:    key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], help)),
			action: action,
		}
	}

	switch mode {
	case registry.ModeTyping:
		km.bindings = []binding{
			nb(core.ActionUp, "up", "up"),
			nb(core.ActionDown, "down", "down"),
			nb(core.ActionLeft, "left", "left"),
			nb(core.ActionRight, "right", "right"),
			nb(core.ActionNext, "next clue", "tab"),
			nb(core.ActionPrev, "prev clue", "shift+tab"),
			nb(core.ActionToggle, "direction", " ", "space"),
			nb(core.ActionDelete, "delete", "backspace", "delete"),
			nb(core.ActionConfirm, "dismiss", "enter"),
			nb(core.ActionPause, "pause", "ctrl+p"),
			nb(core.ActionCheckCell, "check cell", "f1"),
			nb(core.ActionCheckWord, "check word", "f2"),
			nb(core.ActionCheckPuzzle, "check puzzle", "f3"),
			nb(core.ActionRevealCell, "reveal cell", "f5"),
			nb(core.ActionRevealWord, "reveal word", "f6"),
			nb(core.ActionRevealPuzzle, "reveal puzzle", "f7"),
			nb(core.ActionClearWord, "clear word", "f9"),
			nb(core.ActionClearPuzzle, "clear puzzle", "f10"),
			nb(core.ActionUnlock, "unlock", "ctrl+u"),
			nb(core.ActionRestart, "start over", "ctrl+r"),
		}
	default:
		km.Quit = key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit"))
		km.Back = key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "menu"))
		km.bindings = []binding{
			nb(core.ActionUp, "up", "up", "k"),
			nb(core.ActionDown, "down", "down", "j"),
			nb(core.ActionLeft, "left", "left", "h"),
			nb(core.ActionRight, "right", "right", "l"),
			nb(core.ActionToggle, "select", " ", "space"),
			nb(core.ActionConfirm, "submit", "enter"),
			nb(core.ActionShuffle, "shuffle", "s"),
			nb(core.ActionDeselectAll, "deselect all", "d"),
			nb(core.ActionRestart, "restart", "r"),
		}
	}
	return km
}

// Mode returns the game mode the bindings were built for.
func (km GameKeyMap) Mode() registry.Mode {
	return km.mode
}

// Apply records the key in frame. It returns the resulting action, which
// is ActionQuit or ActionBack for keys the platform handles itself.
func (km GameKeyMap) Apply(msg tea.KeyMsg, frame *core.InputFrame) core.Action {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.Back):
		return core.ActionBack
	}

	if km.mode == registry.ModeTyping && msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && unicode.IsLetter(msg.Runes[0]) {
		frame.AddLetter(msg.Runes[0])
		return core.ActionLetter
	}

	for _, b := range km.bindings {
		if key.Matches(msg, b.key) {
			frame.Set(b.action)
			return b.action
		}
	}
	return core.ActionNone
}

// binding returns the key bound to action.
func (km GameKeyMap) binding(action core.Action) (key.Binding, bool) {
	for _, b := range km.bindings {
		if b.action == action {
			return b.key, true
		}
	}
	return key.Binding{}, false
}

func (km GameKeyMap) pick(actions ...core.Action) []key.Binding {
	var out []key.Binding
	for _, a := range actions {
		if b, ok := km.binding(a); ok {
			out = append(out, b)
		}
	}
	return out
}

// ShortHelp implements help.KeyMap.
func (km GameKeyMap) ShortHelp() []key.Binding {
	var keys []key.Binding
	if km.mode == registry.ModeTyping {
		keys = km.pick(core.ActionNext, core.ActionToggle, core.ActionCheckWord, core.ActionRevealCell, core.ActionPause)
	} else {
		keys = km.pick(core.ActionToggle, core.ActionConfirm, core.ActionShuffle, core.ActionDeselectAll)
	}
	return append(keys, km.Help, km.Back, km.Quit)
}

// FullHelp implements help.KeyMap.
func (km GameKeyMap) FullHelp() [][]key.Binding {
	if km.mode == registry.ModeTyping {
		return [][]key.Binding{
			km.pick(core.ActionNext, core.ActionPrev, core.ActionToggle, core.ActionDelete, core.ActionConfirm),
			km.pick(core.ActionCheckCell, core.ActionCheckWord, core.ActionCheckPuzzle, core.ActionPause),
			km.pick(core.ActionRevealCell, core.ActionRevealWord, core.ActionRevealPuzzle, core.ActionUnlock),
			append(km.pick(core.ActionClearWord, core.ActionClearPuzzle, core.ActionRestart), km.Back, km.Quit),
		}
	}
	return [][]key.Binding{
		km.pick(core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight),
		km.pick(core.ActionToggle, core.ActionConfirm, core.ActionShuffle, core.ActionDeselectAll),
		append(km.pick(core.ActionRestart), km.Back, km.Quit),
	}
}

// MenuKeyMap defines the key bindings for the menu.
type MenuKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Results key.Binding
	Quit    key.Binding
}

// ShortHelp implements help.KeyMap.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Results, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default menu bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"), // vim-style k for up
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"), // vim-style j for down
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Results: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "results"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
