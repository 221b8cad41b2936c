package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit    key.Binding
	up        key.Binding
	down      key.Binding
	toggle    key.Binding
	remove    key.Binding
	edit      key.Binding
	blur      key.Binding
	cycle     key.Binding
	all       key.Binding
	active    key.Binding
	completed key.Binding
	counter   key.Binding
	inc       key.Binding
	dec       key.Binding
	reset     key.Binding
	quit      key.Binding
	forceQuit key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		remove:    key.NewBinding(key.WithKeys("x", "delete"), key.WithHelp("x", "delete")),
		edit:      key.NewBinding(key.WithKeys("i", "a"), key.WithHelp("i", "new task")),
		blur:      key.NewBinding(key.WithKeys("esc", "down"), key.WithHelp("esc", "list")),
		cycle:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "filter")),
		all:       key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "all")),
		active:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "active")),
		completed: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "completed")),
		counter:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "counter")),
		inc:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increment")),
		dec:       key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "decrement")),
		reset:     key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "reset")),
		quit:      key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q", "quit")),
		forceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// help returns the bindings shown in the footer for a mode.
func (k keyMap) help(m mode) []key.Binding {
	switch m {
	case modeInput:
		return []key.Binding{k.submit, k.blur, k.cycle}
	case modeCounter:
		return []key.Binding{k.inc, k.dec, k.reset, k.counter}
	default:
		return []key.Binding{k.up, k.down, k.toggle, k.remove, k.edit, k.cycle, k.counter, k.quit}
	}
}
