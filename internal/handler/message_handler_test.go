package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/vormwerk/backend/internal/model"
	"github.com/vormwerk/backend/internal/repository"
	"github.com/vormwerk/backend/internal/schema"
)

type mockMessageService struct {
	listFunc        func(ctx context.Context) ([]*model.Message, error)
	getFunc         func(ctx context.Context, id string) (*model.Message, error)
	submitFunc      func(ctx context.Context, in *schema.MessageCreate) (*model.Message, error)
	markReadFunc    func(ctx context.Context, id string) (*model.Message, error)
	listRepliesFunc func(ctx context.Context, messageID string) ([]*model.MessageReply, error)
	replyFunc       func(ctx context.Context, messageID string, in *schema.ReplyCreate) (*model.MessageReply, error)
}

func (m *mockMessageService) List(ctx context.Context) ([]*model.Message, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockMessageService) GetByID(ctx context.Context, id string) (*model.Message, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockMessageService) Submit(ctx context.Context, in *schema.MessageCreate) (*model.Message, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, in)
	}
	return nil, repository.ErrNotFound
}

func (m *mockMessageService) MarkRead(ctx context.Context, id string) (*model.Message, error) {
	if m.markReadFunc != nil {
		return m.markReadFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockMessageService) ListReplies(ctx context.Context, messageID string) ([]*model.MessageReply, error) {
	if m.listRepliesFunc != nil {
		return m.listRepliesFunc(ctx, messageID)
	}
	return nil, repository.ErrNotFound
}

func (m *mockMessageService) Reply(ctx context.Context, messageID string, in *schema.ReplyCreate) (*model.MessageReply, error) {
	if m.replyFunc != nil {
		return m.replyFunc(ctx, messageID, in)
	}
	return nil, repository.ErrNotFound
}

const testMessageID = "8a1b2c3d-4e5f-4a6b-8c7d-9e0f1a2b3c4d"

func TestMessageHandler_Submit(t *testing.T) {
	mock := &mockMessageService{
		submitFunc: func(ctx context.Context, in *schema.MessageCreate) (*model.Message, error) {
			return &model.Message{
				ID:        testMessageID,
				Name:      in.Name,
				Email:     in.Email,
				Subject:   in.Subject,
				Message:   in.Message,
				IsRead:    false,
				CreatedAt: time.Now().UTC(),
			}, nil
		},
	}
	h := NewMessageHandler(mock)

	body := `{"name":"Jan","email":"jan@voorbeeld.nl","subject":"Vraag","message":"Wat kost een website?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	var got model.Message
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID == "" {
		t.Error("expected server-assigned id")
	}
	if got.IsRead {
		t.Error("new messages must start unread")
	}
	if got.Name != "Jan" || got.Subject != "Vraag" {
		t.Errorf("unexpected message: %+v", got)
	}
}

func TestMessageHandler_Submit_InvalidEmail(t *testing.T) {
	called := false
	mock := &mockMessageService{
		submitFunc: func(ctx context.Context, in *schema.MessageCreate) (*model.Message, error) {
			called = true
			return nil, nil
		},
	}
	h := NewMessageHandler(mock)

	body := `{"name":"Jan","email":"geen-adres","subject":"Vraag","message":"tekst"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Submit(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if called {
		t.Error("submit must not be called for an invalid body")
	}
}

func TestMessageHandler_Submit_MissingFields(t *testing.T) {
	h := NewMessageHandler(&mockMessageService{})

	for _, body := range []string{
		`{}`,
		`{"name":"Jan"}`,
		`{"name":"Jan","email":"jan@voorbeeld.nl","subject":"Vraag"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.Submit(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("body %s: expected 400, got %d", body, rec.Code)
		}
	}
}

func TestMessageHandler_MarkRead(t *testing.T) {
	mock := &mockMessageService{
		markReadFunc: func(ctx context.Context, id string) (*model.Message, error) {
			return &model.Message{ID: id, IsRead: true}, nil
		},
	}
	h := NewMessageHandler(mock)

	req := httptest.NewRequest(http.MethodPut, "/api/messages/"+testMessageID+"/read", nil)
	req.SetPathValue("id", testMessageID)
	rec := httptest.NewRecorder()
	h.MarkRead(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got model.Message
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.IsRead {
		t.Error("expected isRead to be true after marking")
	}
}

func TestMessageHandler_MarkRead_NotFound(t *testing.T) {
	h := NewMessageHandler(&mockMessageService{})

	req := httptest.NewRequest(http.MethodPut, "/api/messages/"+testMessageID+"/read", nil)
	req.SetPathValue("id", testMessageID)
	rec := httptest.NewRecorder()
	h.MarkRead(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestMessageHandler_Reply(t *testing.T) {
	var gotMessageID string
	mock := &mockMessageService{
		replyFunc: func(ctx context.Context, messageID string, in *schema.ReplyCreate) (*model.MessageReply, error) {
			gotMessageID = messageID
			return &model.MessageReply{
				ID:          "9b2c3d4e-5f6a-4b7c-8d9e-0f1a2b3c4d5e",
				MessageID:   messageID,
				Reply:       in.Reply,
				IsFromAdmin: true,
				CreatedAt:   time.Now().UTC(),
			}, nil
		},
	}
	h := NewMessageHandler(mock)

	body := `{"reply":"Bedankt voor je bericht, we nemen contact op."}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages/"+testMessageID+"/replies", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", testMessageID)
	rec := httptest.NewRecorder()
	h.Reply(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d — body: %s", rec.Code, rec.Body.String())
	}
	if gotMessageID != testMessageID {
		t.Errorf("reply attached to wrong message: %s", gotMessageID)
	}
	var got model.MessageReply
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.IsFromAdmin {
		t.Error("expected isFromAdmin true")
	}
	if got.MessageID != testMessageID {
		t.Errorf("expected messageId %s, got %s", testMessageID, got.MessageID)
	}
}

func TestMessageHandler_Reply_EmptyBody(t *testing.T) {
	h := NewMessageHandler(&mockMessageService{})

	req := httptest.NewRequest(http.MethodPost, "/api/messages/"+testMessageID+"/replies", strings.NewReader(`{"reply":""}`))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", testMessageID)
	rec := httptest.NewRecorder()
	h.Reply(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestMessageHandler_Reply_UnknownMessage(t *testing.T) {
	h := NewMessageHandler(&mockMessageService{})

	req := httptest.NewRequest(http.MethodPost, "/api/messages/"+testMessageID+"/replies", strings.NewReader(`{"reply":"Bedankt"}`))
	req.Header.Set("Content-Type", "application/json")
	req.SetPathValue("id", testMessageID)
	rec := httptest.NewRecorder()
	h.Reply(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestMessageHandler_ListReplies(t *testing.T) {
	mock := &mockMessageService{
		listRepliesFunc: func(ctx context.Context, messageID string) ([]*model.MessageReply, error) {
			return []*model.MessageReply{
				{ID: "r1", MessageID: messageID, Reply: "Bedankt", IsFromAdmin: true},
			}, nil
		},
	}
	h := NewMessageHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/messages/"+testMessageID+"/replies", nil)
	req.SetPathValue("id", testMessageID)
	rec := httptest.NewRecorder()
	h.ListReplies(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []model.MessageReply
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Reply != "Bedankt" {
		t.Errorf("unexpected replies: %+v", got)
	}
}

func TestMessageHandler_ListReplies_EmptyIsArray(t *testing.T) {
	mock := &mockMessageService{
		listRepliesFunc: func(ctx context.Context, messageID string) ([]*model.MessageReply, error) {
			return nil, nil
		},
	}
	h := NewMessageHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/messages/"+testMessageID+"/replies", nil)
	req.SetPathValue("id", testMessageID)
	rec := httptest.NewRecorder()
	h.ListReplies(rec, req)

	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected [], got %s", body)
	}
}

func TestMessageHandler_List_NewestFirstPassthrough(t *testing.T) {
	mock := &mockMessageService{
		listFunc: func(ctx context.Context) ([]*model.Message, error) {
			return []*model.Message{
				{ID: "b", Subject: "Nieuwste"},
				{ID: "a", Subject: "Oudste"},
			}, nil
		},
	}
	h := NewMessageHandler(mock)

	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	rec := httptest.NewRecorder()
	h.List(rec, req)

	var got []model.Message
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].Subject != "Nieuwste" {
		t.Errorf("order must be preserved from the service: %+v", got)
	}
}
