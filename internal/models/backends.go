package models

// Backend keys, shared by the websocket frames, the server wiring and the
// client-side backend descriptors.
const (
	BackendGemini = "gemini"
	BackendMCP    = "mcp"
)
