// Package dashboard renders the fake learner dashboard shown under the hero.
// Every number it displays is simulated locally.
package dashboard

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/formationpro/landing/internal/content"
	"github.com/formationpro/landing/internal/ui/carousel"
	"github.com/formationpro/landing/internal/ui/common"
)

var _ common.Focusable = (*Model)(nil)

const (
	TabDashboard = "dashboard"
	TabCourses   = "courses"
	TabProgress  = "progress"

	maxProgress      = 100
	maxNotifications = 5
	chartMax         = 100
	barWidth         = 30
)

var chartLabels = []string{"Lun", "Mar", "Mer", "Jeu", "Ven", "Sam", "Dim"}

type progressMsg struct{ id int }

type notificationMsg struct{ id int }

type chartMsg struct{ id int }

type Intervals struct {
	Progress     time.Duration
	Notification time.Duration
	Chart        time.Duration
}

type Model struct {
	id            int
	intervals     Intervals
	timer         *common.Timer
	tabs          *carousel.Model[string]
	progress      int
	notifications int
	chart         []int
	likes         int
	bookmarks     int
	liked         bool
	bookmarked    bool
	intn          func(n int) int
	keyMap        common.KeyMap
	focused       bool
	width         int
	styles        styles
}

type styles struct {
	border     lipgloss.Style
	title      lipgloss.Style
	text       lipgloss.Style
	dimmed     lipgloss.Style
	bar        lipgloss.Style
	progress   lipgloss.Style
	badge      lipgloss.Style
	liked      lipgloss.Style
	bookmarked lipgloss.Style
}

func New(keyMap common.KeyMap, intervals Intervals) (*Model, error) {
	for name, d := range map[string]time.Duration{
		"progress":     intervals.Progress,
		"notification": intervals.Notification,
		"chart":        intervals.Chart,
	} {
		if d <= 0 {
			return nil, fmt.Errorf("dashboard %s interval %s: %w", name, d, common.ErrInvalidArgument)
		}
	}
	tabs, err := carousel.New([]string{TabDashboard, TabCourses, TabProgress}, 0)
	if err != nil {
		return nil, err
	}
	return &Model{
		id:        common.NextID(),
		intervals: intervals,
		timer:     common.NewTimer(),
		tabs:      tabs,
		chart:     append([]int(nil), content.InitialChart...),
		likes:     42,
		bookmarks: 12,
		intn:      rand.IntN,
		keyMap:    keyMap,
		styles: styles{
			border:     common.DefaultPalette.GetBorder("section border", lipgloss.RoundedBorder()),
			title:      common.DefaultPalette.Get("title"),
			text:       common.DefaultPalette.Get("text"),
			dimmed:     common.DefaultPalette.Get("dimmed"),
			bar:        common.DefaultPalette.Get("dashboard bar"),
			progress:   common.DefaultPalette.Get("dashboard progress"),
			badge:      common.DefaultPalette.Get("dashboard badge"),
			liked:      common.DefaultPalette.Get("dashboard liked"),
			bookmarked: common.DefaultPalette.Get("dashboard bookmarked"),
		},
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.scheduleProgress(), m.scheduleNotification(), m.scheduleChart())
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case progressMsg:
		if msg.id != m.id || m.timer.Stopped() {
			return nil
		}
		m.progress = wrap(m.progress, maxProgress)
		return m.scheduleProgress()
	case notificationMsg:
		if msg.id != m.id || m.timer.Stopped() {
			return nil
		}
		m.notifications = wrap(m.notifications, maxNotifications)
		return m.scheduleNotification()
	case chartMsg:
		if msg.id != m.id || m.timer.Stopped() {
			return nil
		}
		m.shuffleChart()
		return m.scheduleChart()
	case tea.KeyPressMsg:
		if !m.focused {
			return nil
		}
		switch {
		case key.Matches(msg, m.keyMap.Left):
			m.tabs.Previous()
		case key.Matches(msg, m.keyMap.Right):
			m.tabs.Next()
		case key.Matches(msg, m.keyMap.Like):
			m.ToggleLike()
		case key.Matches(msg, m.keyMap.Bookmark):
			m.ToggleBookmark()
		default:
			// Digits past the last tab are not shortcuts.
			if i, err := strconv.Atoi(msg.String()); err == nil {
				if err := m.tabs.SelectAt(i - 1); err != nil {
					return nil
				}
			}
		}
	}
	return nil
}

// wrap counts up to limit and then restarts at zero.
func wrap(value, limit int) int {
	if value >= limit {
		return 0
	}
	return value + 1
}

func (m *Model) shuffleChart() {
	for i := range m.chart {
		m.chart[i] = m.intn(chartMax)
	}
}

func (m *Model) scheduleProgress() tea.Cmd {
	id := m.id
	return m.timer.After(m.intervals.Progress, func() tea.Msg { return progressMsg{id: id} })
}

func (m *Model) scheduleNotification() tea.Cmd {
	id := m.id
	return m.timer.After(m.intervals.Notification, func() tea.Msg { return notificationMsg{id: id} })
}

func (m *Model) scheduleChart() tea.Cmd {
	id := m.id
	return m.timer.After(m.intervals.Chart, func() tea.Msg { return chartMsg{id: id} })
}

func (m *Model) ToggleLike() {
	if m.liked {
		m.likes--
	} else {
		m.likes++
	}
	m.liked = !m.liked
}

func (m *Model) ToggleBookmark() {
	if m.bookmarked {
		m.bookmarks--
	} else {
		m.bookmarks++
	}
	m.bookmarked = !m.bookmarked
}

func (m *Model) ActiveTab() string {
	_, tab := m.tabs.Current()
	return tab
}

func (m *Model) Stop() {
	m.timer.Stop()
	m.tabs.Stop()
}

func (m *Model) SetWidth(width int) {
	m.width = width
}

func (m *Model) SetFocused(focused bool) {
	m.focused = focused
}

func (m *Model) IsFocused() bool {
	return m.focused
}

func (m *Model) View() string {
	var body string
	switch m.ActiveTab() {
	case TabCourses:
		body = m.viewCourses()
	case TabProgress:
		body = m.viewProgress()
	default:
		body = m.viewDashboard()
	}

	frame := common.DefaultPalette.BorderVariant("section border", "focused", m.focused, lipgloss.RoundedBorder())
	width := min(max(m.width-4, 40), 90)
	return frame.Padding(0, 1).Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, m.viewHeader(), "", body))
}

func (m *Model) viewHeader() string {
	var tabs []string
	for i, tab := range m.tabs.Items() {
		label := strings.ToUpper(tab[:1]) + tab[1:]
		style := common.DefaultPalette.Variant("dashboard tab", "active", i == m.tabs.Index())
		tabs = append(tabs, style.Padding(0, 1).Render(label))
	}
	header := m.styles.title.Render(content.Brand) + "  " + strings.Join(tabs, " ")
	if m.notifications > 0 {
		header += "  🔔" + m.styles.badge.Padding(0, 1).Render(strconv.Itoa(m.notifications))
	}
	return header
}

func (m *Model) viewDashboard() string {
	var cards []string
	for _, stat := range content.DashboardStats {
		cards = append(cards, m.styles.border.Padding(0, 1).Render(
			m.styles.title.Render(stat.Value)+"\n"+m.styles.dimmed.Render(stat.Label)))
	}
	lines := []string{lipgloss.JoinHorizontal(lipgloss.Top, cards...), "", m.styles.title.Render("Activité de la semaine")}
	for i, value := range m.chart {
		label := ""
		if i < len(chartLabels) {
			label = chartLabels[i]
		}
		lines = append(lines, fmt.Sprintf("%-4s %s %s", label, m.styles.bar.Render(bar(value, chartMax, barWidth)), m.styles.dimmed.Render(strconv.Itoa(value))))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewCourses() string {
	var lines []string
	for _, course := range content.Courses {
		progress := course.Progress
		if progress < 0 {
			progress = m.progress
		}
		lines = append(lines,
			m.styles.title.Render(course.Title)+m.styles.dimmed.Render(" · "+course.Instructor),
			m.styles.progress.Render(bar(progress, maxProgress, barWidth))+fmt.Sprintf(" %3d%%", progress),
			"",
		)
	}

	heart, mark := m.styles.text.Render("♡"), m.styles.text.Render("☆")
	if m.liked {
		heart = m.styles.liked.Render("♥")
	}
	if m.bookmarked {
		mark = m.styles.bookmarked.Render("★")
	}
	lines = append(lines, fmt.Sprintf("%s %d   %s %d", heart, m.likes, mark, m.bookmarks))
	return strings.Join(lines, "\n")
}

func (m *Model) viewProgress() string {
	lines := []string{m.styles.title.Render("Objectifs")}
	for _, goal := range content.Goals {
		check := "[ ]"
		if goal.Completed {
			check = m.styles.progress.Render("[✓]")
		}
		lines = append(lines, check+" "+m.styles.text.Render(goal.Task))
	}
	lines = append(lines, "", m.styles.title.Render("Activité récente"))
	for _, activity := range content.Activities {
		lines = append(lines, "• "+m.styles.text.Render(activity.Action)+m.styles.dimmed.Render("  "+activity.Time))
	}
	return strings.Join(lines, "\n")
}

func bar(value, limit, width int) string {
	value = min(max(value, 0), limit)
	filled := value * width / limit
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
