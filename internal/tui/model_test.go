package tui

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"llm-chat/internal/chatui"
	"llm-chat/internal/models"
)

type stubExchanger struct {
	backends []chatui.Backend
}

func (s *stubExchanger) Exchange(ctx context.Context, backend chatui.Backend, text string) (string, error) {
	s.backends = append(s.backends, backend)
	return "echo: " + text, nil
}

func newTestModel(backend chatui.Backend) (Model, *chatui.Session, *stubExchanger) {
	session := chatui.NewSession(chatui.ThemeLight, backend)
	ex := &stubExchanger{}
	d := chatui.NewDispatcher(session, ex, log.New(io.Discard, "", 0))
	return New(context.Background(), session, d), session, ex
}

func press(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

// runCmd executes cmd, flattening batches, and returns every message produced.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func replyFrom(t *testing.T, cmd tea.Cmd) replyMsg {
	t.Helper()
	for _, msg := range runCmd(cmd) {
		if reply, ok := msg.(replyMsg); ok {
			return reply
		}
	}
	t.Fatalf("command produced no reply")
	return replyMsg{}
}

func typeText(t *testing.T, m Model, text string) Model {
	t.Helper()
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestModel_SendRoundTrip(t *testing.T) {
	m, session, ex := newTestModel(chatui.MCPBackend)

	m = typeText(t, m, "hi")
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a command for the exchange")
	}
	if m.input.Value() != "" {
		t.Fatalf("expected input to be cleared, got %q", m.input.Value())
	}

	msgs := session.Messages()
	if last := msgs[len(msgs)-1]; last != (models.ChatMessage{Text: "hi", IsUser: true}) {
		t.Fatalf("expected user message before reply, got %+v", last)
	}
	if !strings.Contains(m.View(), "waiting for reply") {
		t.Fatalf("expected waiting marker while reply is pending")
	}

	var sawTick bool
	for _, msg := range runCmd(cmd) {
		if _, ok := msg.(spinner.TickMsg); ok {
			sawTick = true
			continue
		}
		m, _ = press(t, m, msg)
	}
	if !sawTick {
		t.Fatalf("expected the spinner to start with the first pending reply")
	}

	msgs = session.Messages()
	if len(msgs) != 3 {
		t.Fatalf("expected greeting plus 2 messages, got %d", len(msgs))
	}
	if msgs[2] != (models.ChatMessage{Text: "echo: hi", IsUser: false}) {
		t.Fatalf("unexpected reply: %+v", msgs[2])
	}
	if len(ex.backends) != 1 || ex.backends[0] != chatui.MCPBackend {
		t.Fatalf("expected exchange with MCP backend, got %+v", ex.backends)
	}
	if strings.Contains(m.View(), "waiting for reply") {
		t.Fatalf("waiting marker should be gone after the reply")
	}
}

func TestModel_WhitespaceIsIgnored(t *testing.T) {
	m, session, _ := newTestModel(chatui.GeminiBackend)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd != nil {
		t.Fatalf("expected no command for whitespace-only input")
	}
	if m.input.Value() != " " {
		t.Fatalf("expected field to keep its content, got %q", m.input.Value())
	}
	if len(session.Messages()) != 1 {
		t.Fatalf("expected no new messages, got %d", len(session.Messages()))
	}
}

func TestModel_Toggles(t *testing.T) {
	m, session, ex := newTestModel(chatui.GeminiBackend)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlT})
	if session.Theme() != chatui.ThemeDark {
		t.Fatalf("expected dark theme after ctrl+t")
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyCtrlB})
	if session.Backend() != chatui.MCPBackend {
		t.Fatalf("expected MCP backend after ctrl+b")
	}

	m = typeText(t, m, "ping")
	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	replyFrom(t, cmd)
	if ex.backends[0] != chatui.MCPBackend {
		t.Fatalf("expected next dispatch to target MCP, got %s", ex.backends[0].Name)
	}
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(chatui.GeminiBackend)

	_, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestModel_ViewShowsMessages(t *testing.T) {
	m, session, _ := newTestModel(chatui.GeminiBackend)
	session.Append(models.ChatMessage{Text: "from user", IsUser: true})

	m, _ = press(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	view := m.View()
	for _, want := range []string{chatui.Greeting, "from user", "Gemini backend", "switch to MCP backend"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected view to contain %q", want)
		}
	}
}

func TestModel_SpinnerStopsWhenIdle(t *testing.T) {
	m, _, _ := newTestModel(chatui.GeminiBackend)

	_, cmd := press(t, m, spinner.TickMsg{})
	if cmd != nil {
		t.Fatalf("expected no further ticks with nothing pending")
	}
}
