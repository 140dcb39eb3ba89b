package chatui

import (
	"context"
	"log"

	"llm-chat/internal/models"
)

// exchanger is the part of *Client the dispatcher uses.
type exchanger interface {
	Exchange(ctx context.Context, backend Backend, text string) (string, error)
}

// Dispatcher sends composer output to the session's selected backend and
// records both sides of the turn in the session.
type Dispatcher struct {
	session *Session
	client  exchanger
	logger  *log.Logger
}

// NewDispatcher wires a session to a client. A nil logger uses log.Default().
func NewDispatcher(session *Session, client exchanger, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Dispatcher{session: session, client: client, logger: logger}
}

// Send runs one full turn: it appends the user message, waits for the reply
// and appends it (or the backend's error bubble). It returns the reply.
func (d *Dispatcher) Send(ctx context.Context, text string) models.ChatMessage {
	backend := d.Begin(text)
	reply := d.Reply(ctx, backend, text)
	d.session.Append(reply)
	return reply
}

// Begin appends the user message and returns the backend selected at that
// moment; the reply for this turn must come from it even if the selection
// changes while the request is in flight.
func (d *Dispatcher) Begin(text string) Backend {
	d.session.Append(models.ChatMessage{Text: text, IsUser: true})
	return d.session.Backend()
}

// Reply performs the exchange and builds the reply message. It does not touch
// the session, so it may run off the renderer's event loop.
func (d *Dispatcher) Reply(ctx context.Context, backend Backend, text string) models.ChatMessage {
	reply, err := d.client.Exchange(ctx, backend, text)
	if err != nil {
		d.logger.Printf("Error sending message to %s API: %v", backend.Name, err)
		return models.ChatMessage{Text: ErrorText(backend), IsUser: false}
	}
	return models.ChatMessage{Text: reply, IsUser: false}
}
