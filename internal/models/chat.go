package models

// ChatMessage is one turn of the conversation as shown in the chat window.
type ChatMessage struct {
	Text   string `json:"text"`
	IsUser bool   `json:"isUser"`
}

// ChatRequest is the payload the client sends; the routes read it with
// DecodeMessage, which also accepts non-string messages.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatResponse carries the reply text on success.
type ChatResponse struct {
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// WSRequest is one inbound frame on the websocket transport.
type WSRequest struct {
	Backend string `json:"backend"`
	Message string `json:"message"`
}

// WSResponse is the single outbound frame answering a WSRequest.
type WSResponse struct {
	Text  string `json:"text,omitempty"`
	Error string `json:"error,omitempty"`
}
