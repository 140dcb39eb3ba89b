package models

// Error strings returned in ErrorResponse.Error / WSResponse.Error.
const (
	MsgMessageRequired = "Message is required"
	MsgGeminiFailed    = "Failed to get response from Gemini"
	MsgMCPFailed       = "Failed to get response from dummy MCP"
	MsgUnknownBackend  = "Unknown backend"
)

const MsgInvalidFrame = "Invalid request frame"
