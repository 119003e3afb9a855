// Package flash shows short-lived notices stacked above the status line.
package flash

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/formationpro/landing/internal/ui/common"
)

// AddMsg asks the page to show a notice. Errors stay until dismissed.
type AddMsg struct {
	Text string
	Err  error
}

type expireMessageMsg struct {
	owner int
	id    int
}

type flashMessage struct {
	id    int
	text  string
	error error
}

type Model struct {
	owner        int
	messages     []flashMessage
	currentId    int
	timeout      time.Duration
	timer        *common.Timer
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
}

// New creates an empty stack. A zero timeout keeps every message until
// DeleteOldest is called.
func New(timeout time.Duration) *Model {
	return &Model{
		owner:        common.NextID(),
		messages:     make([]flashMessage, 0),
		timeout:      timeout,
		timer:        common.NewTimer(),
		successStyle: common.DefaultPalette.Get("flash success"),
		errorStyle:   common.DefaultPalette.Get("flash error"),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case AddMsg:
		return m.Add(msg.Text, msg.Err)
	case expireMessageMsg:
		if msg.owner == m.owner {
			m.removeLiveMessageByID(msg.id)
		}
	}
	return nil
}

// Add pushes a notice and, for non-errors, schedules its expiry.
func (m *Model) Add(text string, err error) tea.Cmd {
	id := m.add(text, err)
	if id == 0 || err != nil || m.timeout <= 0 {
		return nil
	}
	owner := m.owner
	return m.timer.After(m.timeout, func() tea.Msg {
		return expireMessageMsg{owner: owner, id: id}
	})
}

func (m *Model) add(text string, err error) int {
	text = strings.TrimSpace(text)
	if text == "" && err == nil {
		return 0
	}
	m.currentId++
	m.messages = append(m.messages, flashMessage{id: m.currentId, text: text, error: err})
	return m.currentId
}

func (m *Model) removeLiveMessageByID(id int) bool {
	for i, message := range m.messages {
		if message.id != id {
			continue
		}
		m.messages = append(m.messages[:i], m.messages[i+1:]...)
		return true
	}
	return false
}

func (m *Model) Any() bool {
	return len(m.messages) > 0
}

func (m *Model) LiveMessagesCount() int {
	return len(m.messages)
}

func (m *Model) DeleteOldest() {
	if len(m.messages) == 0 {
		return
	}
	m.messages = m.messages[1:]
}

func (m *Model) Stop() {
	m.timer.Stop()
}

// View renders the messages right-aligned, the oldest at the bottom.
func (m *Model) View(width int) string {
	if len(m.messages) == 0 {
		return ""
	}
	maxWidth := max(width-4, 10)
	blocks := make([]string, 0, len(m.messages))
	for i := len(m.messages) - 1; i >= 0; i-- {
		content := m.renderMessageContent(m.messages[i], maxWidth)
		if width > 0 {
			content = lipgloss.PlaceHorizontal(width, lipgloss.Right, content)
		}
		blocks = append(blocks, content)
	}
	return lipgloss.JoinVertical(lipgloss.Right, blocks...)
}

func (m *Model) renderMessageContent(message flashMessage, maxWidth int) string {
	style := m.successStyle
	bodyText := message.text
	if message.error != nil {
		style = m.errorStyle
		bodyText = message.error.Error()
	}
	content := style.Render(bodyText)
	if lipgloss.Width(content) > maxWidth {
		content = style.Width(maxWidth).Render(bodyText)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		PaddingLeft(1).
		PaddingRight(1).
		BorderForeground(style.GetForeground()).
		Render(content)
}
