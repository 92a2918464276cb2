// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up          key.Binding
	down        key.Binding
	enter       key.Binding
	esc         key.Binding
	tab         key.Binding
	backtab     key.Binding
	save        key.Binding
	quit        key.Binding
	logout      key.Binding
	newDay      key.Binding
	share       key.Binding
	importDay   key.Binding
	mirror      key.Binding
	preferences key.Binding
	version     key.Binding
}

var keys = keyMap{
	up:          key.NewBinding(key.WithKeys("up", "k")),
	down:        key.NewBinding(key.WithKeys("down", "j")),
	enter:       key.NewBinding(key.WithKeys("enter")),
	esc:         key.NewBinding(key.WithKeys("esc")),
	tab:         key.NewBinding(key.WithKeys("tab")),
	backtab:     key.NewBinding(key.WithKeys("shift+tab")),
	save:        key.NewBinding(key.WithKeys("ctrl+s")),
	quit:        key.NewBinding(key.WithKeys("q", "ctrl+c")),
	logout:      key.NewBinding(key.WithKeys("l")),
	newDay:      key.NewBinding(key.WithKeys("n")),
	share:       key.NewBinding(key.WithKeys("s")),
	importDay:   key.NewBinding(key.WithKeys("i")),
	mirror:      key.NewBinding(key.WithKeys("m")),
	preferences: key.NewBinding(key.WithKeys("p")),
	version:     key.NewBinding(key.WithKeys("v")),
}
