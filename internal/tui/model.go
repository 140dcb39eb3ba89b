// Package tui renders a chat session in the terminal with bubbletea.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"llm-chat/internal/chatui"
	"llm-chat/internal/models"
)

const defaultWidth = 80

// replyMsg carries a finished exchange back into the event loop.
type replyMsg struct {
	message models.ChatMessage
}

// Model is the bubbletea model for one chat session. The session is only
// mutated from Update; exchanges run as commands and report back via replyMsg.
type Model struct {
	ctx        context.Context
	session    *chatui.Session
	dispatcher *chatui.Dispatcher
	composer   chatui.Composer
	input      textinput.Model
	spin       spinner.Model
	pending    int
	width      int
}

func New(ctx context.Context, session *chatui.Session, dispatcher *chatui.Dispatcher) Model {
	in := textinput.New()
	in.Placeholder = "Type your message..."
	in.Prompt = "> "
	in.CharLimit = 0
	in.Width = defaultWidth - 4
	in.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot

	return Model{
		ctx:        ctx,
		session:    session,
		dispatcher: dispatcher,
		input:      in,
		spin:       s,
		width:      defaultWidth,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - 4
		return m, nil

	case replyMsg:
		m.session.Append(msg.message)
		if m.pending > 0 {
			m.pending--
		}
		return m, nil

	case spinner.TickMsg:
		// Let the spinner stop once nothing is in flight.
		if m.pending == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyCtrlT:
			m.session.ToggleTheme()
			return m, nil
		case tea.KeyCtrlB:
			m.session.ToggleBackend()
			return m, nil
		case tea.KeyEnter:
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.composer.SetValue(m.input.Value())
	text, ok := m.composer.Submit()
	if !ok {
		return m, nil
	}
	m.input.SetValue("")

	backend := m.dispatcher.Begin(text)
	m.pending++
	cmds := []tea.Cmd{m.send(backend, text)}
	if m.pending == 1 {
		cmds = append(cmds, m.spin.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) send(backend chatui.Backend, text string) tea.Cmd {
	ctx, dispatcher := m.ctx, m.dispatcher
	return func() tea.Msg {
		return replyMsg{message: dispatcher.Reply(ctx, backend, text)}
	}
}

func (m Model) View() string {
	styles := StylesFor(m.session.Theme())
	var b strings.Builder

	b.WriteString(styles.Header.Width(m.width).Render(
		fmt.Sprintf("LLM Chat Frontend · %s backend · %s mode", m.session.Backend().Name, m.session.Theme())))
	b.WriteString("\n\n")

	bubbleWidth := m.width * 3 / 4
	for _, msg := range m.session.Messages() {
		b.WriteString(renderMessage(styles, msg, m.width, bubbleWidth))
		b.WriteString("\n")
	}

	if m.pending > 0 {
		b.WriteString(m.spin.View() + styles.Help.Render("waiting for reply..."))
		b.WriteString("\n")
	}

	b.WriteString(styles.Input.Width(m.width).Render(m.input.View()))
	b.WriteString("\n")

	next := "Dark"
	if m.session.Theme() == chatui.ThemeDark {
		next = "Light"
	}
	b.WriteString(styles.Help.Render(fmt.Sprintf(
		"enter: send · ctrl+t: switch to %s mode · ctrl+b: switch to %s backend · esc: quit",
		next, m.session.NextBackend().Name)))

	return b.String()
}

func renderMessage(styles Styles, msg models.ChatMessage, width, maxBubble int) string {
	style := styles.Reply
	align := lipgloss.Left
	if msg.IsUser {
		style = styles.User
		align = lipgloss.Right
	}

	// Frame adds the horizontal padding on top of the text width.
	if w := lipgloss.Width(msg.Text) + style.GetHorizontalFrameSize(); w < maxBubble {
		maxBubble = w
	}
	bubble := style.Width(maxBubble).Render(msg.Text)
	return lipgloss.PlaceHorizontal(width, align, bubble)
}
