package services

import (
	"context"
	"fmt"
)

// EchoService stands in for the MCP server. It never calls out.
type EchoService struct{}

func NewEchoService() *EchoService {
	return &EchoService{}
}

func (s *EchoService) Reply(ctx context.Context, message string) (string, error) {
	return EchoText(message), nil
}

// EchoText builds the fixed-format stub reply for message.
func EchoText(message string) string {
	return fmt.Sprintf(`MCP received: "%s". This is a dummy response from your MCP server.`, message)
}
