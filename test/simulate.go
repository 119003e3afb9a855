// Package test holds helpers shared by model tests.
package test

import (
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

// Updater is the Update half of every model in this module.
type Updater interface {
	Update(msg tea.Msg) tea.Cmd
}

// Collect runs cmd synchronously and returns the messages it produced,
// flattening batches and dropping nil messages.
func Collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if msg == nil {
		return nil
	}
	if batch, ok := msg.(tea.BatchMsg); ok {
		var msgs []tea.Msg
		for _, c := range batch {
			msgs = append(msgs, Collect(c)...)
		}
		return msgs
	}
	return []tea.Msg{msg}
}

// SimulateModel feeds the messages produced by cmd back into model until no
// command remains, and returns every message in delivery order.
func SimulateModel(model Updater, cmd tea.Cmd) []tea.Msg {
	var seen []tea.Msg
	queue := Collect(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		seen = append(seen, msg)
		queue = append(queue, Collect(model.Update(msg))...)
	}
	return seen
}

// Plain strips ANSI sequences from rendered output.
func Plain(s string) string {
	return ansi.Strip(s)
}
