package common

import (
	"fmt"
	"sort"

	"charm.land/bubbles/v2/key"
	"github.com/formationpro/landing/internal/config"
)

type KeyMap struct {
	Quit       key.Binding
	FocusNext  key.Binding
	FocusPrev  key.Binding
	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Left       key.Binding
	Right      key.Binding
	Select     key.Binding
	Like       key.Binding
	Bookmark   key.Binding
	Toggle     key.Binding
	Skip       key.Binding
	Jump       key.Binding
	Dismiss    key.Binding
	Help       key.Binding
}

type keyAction struct {
	binding *key.Binding
	help    string
}

func (k *KeyMap) actions() map[string]keyAction {
	return map[string]keyAction{
		"quit":        {&k.Quit, "quitter"},
		"focus_next":  {&k.FocusNext, "section suivante"},
		"focus_prev":  {&k.FocusPrev, "section précédente"},
		"scroll_up":   {&k.ScrollUp, "monter"},
		"scroll_down": {&k.ScrollDown, "descendre"},
		"page_up":     {&k.PageUp, "page précédente"},
		"page_down":   {&k.PageDown, "page suivante"},
		"left":        {&k.Left, "précédent"},
		"right":       {&k.Right, "suivant"},
		"select":      {&k.Select, "choisir"},
		"like":        {&k.Like, "j'aime"},
		"bookmark":    {&k.Bookmark, "favori"},
		"toggle":      {&k.Toggle, "mensuel/annuel"},
		"skip":        {&k.Skip, "tout afficher"},
		"jump":        {&k.Jump, "aller à"},
		"dismiss":     {&k.Dismiss, "fermer le message"},
		"help":        {&k.Help, "aide"},
	}
}

// NewKeyMap builds bindings from the [keys] table. Every action must be bound
// and unknown action names are rejected.
func NewKeyMap(keys map[string]config.StringList) (KeyMap, error) {
	var k KeyMap
	actions := k.actions()

	var unknown []string
	for name := range keys {
		if _, ok := actions[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return KeyMap{}, fmt.Errorf("unknown key actions %v: %w", unknown, ErrInvalidArgument)
	}

	for name, action := range actions {
		bound := keys[name]
		if len(bound) == 0 {
			return KeyMap{}, fmt.Errorf("no key bound to %q: %w", name, ErrInvalidArgument)
		}
		*action.binding = key.NewBinding(
			key.WithKeys(bound...),
			key.WithHelp(bound[0], action.help),
		)
	}
	return k, nil
}

// ShortHelp lists the bindings shown in the status line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.FocusNext, k.Left, k.Right, k.Jump, k.Help, k.Quit}
}
