package handler

import (
	"encoding/json"
	"net/http"

	"github.com/vormwerk/backend/internal/model"
	"github.com/vormwerk/backend/internal/schema"
	"github.com/vormwerk/backend/internal/service"
)

// MessageHandler handles contact-form submissions, the admin inbox and
// message replies.
type MessageHandler struct {
	messageService service.MessageService
}

// NewMessageHandler creates a MessageHandler with the given service.
func NewMessageHandler(messageService service.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// List handles GET /api/messages, newest first.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messageService.List(r.Context())
	if err != nil {
		respondStorageError(w, err, "message.list")
		return
	}
	if messages == nil {
		messages = []*model.Message{}
	}
	respondJSON(w, http.StatusOK, messages)
}

// Get handles GET /api/messages/{id}.
func (h *MessageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found")
		return
	}
	msg, err := h.messageService.GetByID(r.Context(), id)
	if err != nil {
		respondStorageError(w, err, "message.get")
		return
	}
	respondJSON(w, http.StatusOK, msg)
}

// Submit handles POST /api/messages (the public contact form).
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var in schema.MessageCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := schema.Validate(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	msg, err := h.messageService.Submit(r.Context(), &in)
	if err != nil {
		respondStorageError(w, err, "message.submit")
		return
	}
	respondJSON(w, http.StatusOK, msg)
}

// MarkRead handles PUT /api/messages/{id}/read.
func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found")
		return
	}
	msg, err := h.messageService.MarkRead(r.Context(), id)
	if err != nil {
		respondStorageError(w, err, "message.mark_read")
		return
	}
	respondJSON(w, http.StatusOK, msg)
}

// ListReplies handles GET /api/messages/{id}/replies, oldest first.
func (h *MessageHandler) ListReplies(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found")
		return
	}
	replies, err := h.messageService.ListReplies(r.Context(), id)
	if err != nil {
		respondStorageError(w, err, "message.list_replies")
		return
	}
	if replies == nil {
		replies = []*model.MessageReply{}
	}
	respondJSON(w, http.StatusOK, replies)
}

// Reply handles POST /api/messages/{id}/replies.
func (h *MessageHandler) Reply(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusNotFound, "not_found")
		return
	}

	var in schema.ReplyCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if err := schema.Validate(&in); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_body")
		return
	}

	reply, err := h.messageService.Reply(r.Context(), id, &in)
	if err != nil {
		respondStorageError(w, err, "message.reply")
		return
	}
	respondJSON(w, http.StatusOK, reply)
}
