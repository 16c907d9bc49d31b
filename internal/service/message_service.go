package service

import (
	"context"

	"github.com/vormwerk/backend/internal/model"
	"github.com/vormwerk/backend/internal/schema"
)

// MessageService defines the business logic for contact messages and their
// admin replies.
type MessageService interface {
	List(ctx context.Context) ([]*model.Message, error)
	GetByID(ctx context.Context, id string) (*model.Message, error)

	// Submit stores a new contact-form message. ID, IsRead and CreatedAt are
	// populated by the implementation.
	Submit(ctx context.Context, in *schema.MessageCreate) (*model.Message, error)

	// MarkRead flags a message as read and returns the updated row.
	MarkRead(ctx context.Context, id string) (*model.Message, error)

	// ListReplies returns the replies for a message, oldest first. Returns
	// repository.ErrNotFound when the message does not exist.
	ListReplies(ctx context.Context, messageID string) ([]*model.MessageReply, error)

	// Reply attaches an admin reply to a message. Returns
	// repository.ErrNotFound when the message does not exist.
	Reply(ctx context.Context, messageID string, in *schema.ReplyCreate) (*model.MessageReply, error)
}
