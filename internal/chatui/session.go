// Package chatui holds the state and behavior behind a chat view: the
// message list, the theme, the selected backend, the composer and the
// dispatcher that talks to the reply routes. Renderers (the terminal client,
// tests) own a Session and drive it through these types.
package chatui

import (
	"fmt"
	"strings"

	"llm-chat/internal/models"
)

// Greeting is the first message of every session.
const Greeting = "Hello! How can I help you today?"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggled returns the other theme.
func (t Theme) Toggled() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme maps "dark" to ThemeDark and anything else to ThemeLight.
func ParseTheme(s string) Theme {
	if strings.EqualFold(strings.TrimSpace(s), string(ThemeDark)) {
		return ThemeDark
	}
	return ThemeLight
}

// Backend describes one reply route.
type Backend struct {
	Key  string // models.BackendGemini, models.BackendMCP
	Name string // shown to the user and in error bubbles
	Path string
}

var (
	GeminiBackend = Backend{Key: models.BackendGemini, Name: "Gemini", Path: "/api/gemini"}
	MCPBackend    = Backend{Key: models.BackendMCP, Name: "MCP", Path: "/api/mcp"}
)

// Backends lists the selectable backends in toggle order.
var Backends = []Backend{GeminiBackend, MCPBackend}

// LookupBackend finds a backend by key.
func LookupBackend(key string) (Backend, bool) {
	for _, b := range Backends {
		if strings.EqualFold(b.Key, key) {
			return b, true
		}
	}
	return Backend{}, false
}

// ErrorText is the bubble shown when b fails to answer.
func ErrorText(b Backend) string {
	return fmt.Sprintf("Error: Could not get a response from %s.", b.Name)
}

// Session is the state of one chat view. It is not safe for concurrent use;
// renderers mutate it from their event loop only.
type Session struct {
	messages []models.ChatMessage
	theme    Theme
	backend  int
}

func NewSession(theme Theme, backend Backend) *Session {
	s := &Session{
		messages: []models.ChatMessage{{Text: Greeting, IsUser: false}},
		theme:    theme,
	}
	for i, b := range Backends {
		if b == backend {
			s.backend = i
		}
	}
	return s
}

// Messages returns a copy of the message list in chronological order.
func (s *Session) Messages() []models.ChatMessage {
	out := make([]models.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) Append(msg models.ChatMessage) {
	s.messages = append(s.messages, msg)
}

func (s *Session) Theme() Theme {
	return s.theme
}

func (s *Session) ToggleTheme() Theme {
	s.theme = s.theme.Toggled()
	return s.theme
}

func (s *Session) Backend() Backend {
	return Backends[s.backend]
}

// NextBackend is the backend ToggleBackend would select.
func (s *Session) NextBackend() Backend {
	return Backends[(s.backend+1)%len(Backends)]
}

// ToggleBackend selects the next backend. Messages already sent are not
// affected.
func (s *Session) ToggleBackend() Backend {
	s.backend = (s.backend + 1) % len(Backends)
	return s.Backend()
}
