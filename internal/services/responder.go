package services

import "context"

// Responder turns one user message into one reply.
type Responder interface {
	Reply(ctx context.Context, message string) (string, error)
}
