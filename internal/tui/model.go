package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg advances the animation by one frame.
type frameMsg struct{}

type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Model cycles through pre-rendered frames until a quit key is pressed or
// the requested number of cycles has been shown.
type Model struct {
	frames    []string
	delay     time.Duration
	cycles    int
	index     int
	completed int
	quitting  bool
	keys      keyMap
}

// New builds the animation model. Frames must not be empty.
func New(opts Options) *Model {
	delay := opts.Delay
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Model{
		frames: opts.Frames,
		delay:  delay,
		cycles: opts.Cycles,
		keys:   defaultKeyMap(),
	}
}

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return frameMsg{}
	})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.index++
		if m.index >= len(m.frames) {
			m.index = 0
			m.completed++
			if m.cycles > 0 && m.completed >= m.cycles {
				m.quitting = true
				return m, tea.Quit
			}
		}
		return m, m.tick()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *Model) View() string {
	if len(m.frames) == 0 {
		return ""
	}
	return m.frames[m.index]
}

// Quitting reports whether the model asked the program to exit.
func (m *Model) Quitting() bool {
	return m.quitting
}
