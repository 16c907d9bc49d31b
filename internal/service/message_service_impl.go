package service

import (
	"context"

	"github.com/vormwerk/backend/internal/model"
	"github.com/vormwerk/backend/internal/repository"
	"github.com/vormwerk/backend/internal/schema"
)

// messageServiceImpl is the production implementation of MessageService.
type messageServiceImpl struct {
	repo repository.MessageRepository
}

// NewMessageService creates a MessageService backed by the given repository.
func NewMessageService(repo repository.MessageRepository) MessageService {
	return &messageServiceImpl{repo: repo}
}

func (s *messageServiceImpl) List(ctx context.Context) ([]*model.Message, error) {
	return s.repo.List(ctx)
}

func (s *messageServiceImpl) GetByID(ctx context.Context, id string) (*model.Message, error) {
	return s.repo.GetByID(ctx, id)
}

// Submit stores a new message. New messages always start unread.
func (s *messageServiceImpl) Submit(ctx context.Context, in *schema.MessageCreate) (*model.Message, error) {
	m := &model.Message{
		Name:    in.Name,
		Email:   in.Email,
		Subject: in.Subject,
		Message: in.Message,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *messageServiceImpl) MarkRead(ctx context.Context, id string) (*model.Message, error) {
	return s.repo.MarkRead(ctx, id)
}

// ListReplies checks the parent message first so an unknown id surfaces as
// not-found rather than an empty list.
func (s *messageServiceImpl) ListReplies(ctx context.Context, messageID string) ([]*model.MessageReply, error) {
	if _, err := s.repo.GetByID(ctx, messageID); err != nil {
		return nil, err
	}
	return s.repo.ListReplies(ctx, messageID)
}

// Reply attaches an admin reply to an existing message.
func (s *messageServiceImpl) Reply(ctx context.Context, messageID string, in *schema.ReplyCreate) (*model.MessageReply, error) {
	if _, err := s.repo.GetByID(ctx, messageID); err != nil {
		return nil, err
	}
	rep := &model.MessageReply{
		MessageID: messageID,
		Reply:     in.Reply,
	}
	if err := s.repo.CreateReply(ctx, rep); err != nil {
		return nil, err
	}
	return rep, nil
}
