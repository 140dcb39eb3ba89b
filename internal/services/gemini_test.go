package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

type stubGenerator struct {
	resp       *genai.GenerateContentResponse
	err        error
	lastPrompt string
}

func (g *stubGenerator) GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	if len(parts) > 0 {
		if t, ok := parts[0].(genai.Text); ok {
			g.lastPrompt = string(t)
		}
	}
	return g.resp, g.err
}

func textResponse(finish genai.FinishReason, parts ...string) *genai.GenerateContentResponse {
	content := &genai.Content{Role: "model"}
	for _, p := range parts {
		content.Parts = append(content.Parts, genai.Text(p))
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: content, FinishReason: finish}},
	}
}

func TestGeminiService_Reply(t *testing.T) {
	gen := &stubGenerator{resp: textResponse(genai.FinishReasonStop, "Hello, ", "world")}
	svc := &GeminiService{model: gen}

	got, err := svc.Reply(context.Background(), "say hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "Hello, world" {
		t.Fatalf("expected joined text, got %q", got)
	}
	if gen.lastPrompt != "say hello" {
		t.Fatalf("expected prompt to be forwarded unchanged, got %q", gen.lastPrompt)
	}
}

func TestGeminiService_ReplyUpstreamError(t *testing.T) {
	upstream := errors.New("quota exceeded")
	svc := &GeminiService{model: &stubGenerator{err: upstream}}

	_, err := svc.Reply(context.Background(), "hi")
	if !errors.Is(err, upstream) {
		t.Fatalf("expected wrapped upstream error, got %v", err)
	}
}

func TestExtractText(t *testing.T) {
	tests := []struct {
		name    string
		resp    *genai.GenerateContentResponse
		want    string
		wantErr error
	}{
		{"single part", textResponse(genai.FinishReasonStop, "ok"), "ok", nil},
		{"nil response", nil, "", ErrNoCandidates},
		{"no candidates", &genai.GenerateContentResponse{}, "", ErrNoCandidates},
		{
			"prompt blocked",
			&genai.GenerateContentResponse{PromptFeedback: &genai.PromptFeedback{BlockReason: genai.BlockReasonSafety}},
			"", ErrBlocked,
		},
		{"candidate blocked", textResponse(genai.FinishReasonSafety), "", ErrBlocked},
		{"max tokens keeps partial text", textResponse(genai.FinishReasonMaxTokens, "partial"), "partial", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := extractText(tc.resp)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected error %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}
