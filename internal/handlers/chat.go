package handlers

import (
	"errors"
	"log"
	"net/http"

	"llm-chat/internal/models"
	"llm-chat/internal/services"
)

// ReplyHandler serves one reply route: it validates the message, hands it to
// its responder and maps any responder error to a single 500 body.
type ReplyHandler struct {
	name       string
	responder  services.Responder
	failureMsg string
}

func NewReplyHandler(name string, responder services.Responder, failureMsg string) *ReplyHandler {
	return &ReplyHandler{
		name:       name,
		responder:  responder,
		failureMsg: failureMsg,
	}
}

func NewGeminiHandler(responder services.Responder) *ReplyHandler {
	return NewReplyHandler("Gemini", responder, models.MsgGeminiFailed)
}

func NewMCPHandler(responder services.Responder) *ReplyHandler {
	return NewReplyHandler("dummy MCP", responder, models.MsgMCPFailed)
}

func (h *ReplyHandler) Reply(w http.ResponseWriter, r *http.Request) {
	message, err := models.DecodeMessage(r.Body)
	if errors.Is(err, models.ErrMessageRequired) {
		writeJSON(w, http.StatusBadRequest, errorResp(models.MsgMessageRequired))
		return
	}
	if err != nil {
		log.Printf("[%s] error in %s API: %v", requestID(r), h.name, err)
		writeJSON(w, http.StatusInternalServerError, errorResp(h.failureMsg))
		return
	}

	text, err := h.responder.Reply(r.Context(), message)
	if err != nil {
		log.Printf("[%s] error calling %s API: %v", requestID(r), h.name, err)
		writeJSON(w, http.StatusInternalServerError, errorResp(h.failureMsg))
		return
	}

	writeJSON(w, http.StatusOK, models.ChatResponse{Text: text})
}
