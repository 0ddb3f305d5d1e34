// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up     key.Binding
	down   key.Binding
	toggle key.Binding
	more   key.Binding
	less   key.Binding
	copy   key.Binding
	commit key.Binding
	esc    key.Binding
	quit   key.Binding
	yes    key.Binding
	no     key.Binding
}

var keys = keyMap{
	up:     key.NewBinding(key.WithKeys("up", "k")),
	down:   key.NewBinding(key.WithKeys("down", "j")),
	toggle: key.NewBinding(key.WithKeys(" ", "space", "x")),
	more:   key.NewBinding(key.WithKeys("right", "l", "+")),
	less:   key.NewBinding(key.WithKeys("left", "h", "-")),
	copy:   key.NewBinding(key.WithKeys("c")),
	commit: key.NewBinding(key.WithKeys("enter")),
	esc:    key.NewBinding(key.WithKeys("esc")),
	quit:   key.NewBinding(key.WithKeys("q", "ctrl+c")),
	yes:    key.NewBinding(key.WithKeys("y")),
	no:     key.NewBinding(key.WithKeys("n")),
}
