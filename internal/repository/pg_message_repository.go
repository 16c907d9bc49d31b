package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vormwerk/backend/internal/model"
)

// MessageRepository defines persistence for contact messages and their
// replies. Replies have no independent lifecycle, so they live here rather
// than in a repository of their own.
type MessageRepository interface {
	List(ctx context.Context) ([]*model.Message, error)
	GetByID(ctx context.Context, id string) (*model.Message, error)
	Create(ctx context.Context, msg *model.Message) error
	MarkRead(ctx context.Context, id string) (*model.Message, error)
	ListReplies(ctx context.Context, messageID string) ([]*model.MessageReply, error)
	CreateReply(ctx context.Context, reply *model.MessageReply) error
}

// PgMessageRepository is the PostgreSQL implementation of MessageRepository.
type PgMessageRepository struct {
	pool *pgxpool.Pool
}

// NewPgMessageRepository creates a PgMessageRepository backed by the given pool.
func NewPgMessageRepository(pool *pgxpool.Pool) *PgMessageRepository {
	return &PgMessageRepository{pool: pool}
}

var _ MessageRepository = (*PgMessageRepository)(nil)

const messageColumns = `id, name, email, subject, message, is_read, created_at`

func scanMessage(row pgx.Row) (*model.Message, error) {
	var m model.Message
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// List returns all messages, newest first (admin inbox order).
func (r *PgMessageRepository) List(ctx context.Context) ([]*model.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+messageColumns+` FROM messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []*model.Message
	for rows.Next() {
		var m model.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// GetByID returns a single message or ErrNotFound.
func (r *PgMessageRepository) GetByID(ctx context.Context, id string) (*model.Message, error) {
	return scanMessage(r.pool.QueryRow(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE id = $1`, id))
}

// Create inserts a new messages row and populates msg.ID, IsRead and
// CreatedAt from the database RETURNING clause.
func (r *PgMessageRepository) Create(ctx context.Context, msg *model.Message) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO messages (name, email, subject, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, is_read, created_at`,
		msg.Name, msg.Email, msg.Subject, msg.Message,
	).Scan(&msg.ID, &msg.IsRead, &msg.CreatedAt)
}

// MarkRead flags a message as read and returns the updated row.
func (r *PgMessageRepository) MarkRead(ctx context.Context, id string) (*model.Message, error) {
	return scanMessage(r.pool.QueryRow(ctx,
		`UPDATE messages SET is_read = TRUE WHERE id = $1 RETURNING `+messageColumns, id))
}

// ListReplies returns the replies for a message, oldest first.
func (r *PgMessageRepository) ListReplies(ctx context.Context, messageID string) ([]*model.MessageReply, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, message_id, reply, is_from_admin, created_at
		 FROM message_replies
		 WHERE message_id = $1
		 ORDER BY created_at ASC`,
		messageID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var replies []*model.MessageReply
	for rows.Next() {
		var rep model.MessageReply
		if err := rows.Scan(&rep.ID, &rep.MessageID, &rep.Reply, &rep.IsFromAdmin, &rep.CreatedAt); err != nil {
			return nil, err
		}
		replies = append(replies, &rep)
	}
	return replies, rows.Err()
}

// CreateReply inserts a reply under reply.MessageID and populates reply.ID,
// IsFromAdmin and CreatedAt from the database RETURNING clause. The caller
// is responsible for checking that the parent message exists.
func (r *PgMessageRepository) CreateReply(ctx context.Context, reply *model.MessageReply) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO message_replies (message_id, reply)
		 VALUES ($1, $2)
		 RETURNING id, is_from_admin, created_at`,
		reply.MessageID, reply.Reply,
	).Scan(&reply.ID, &reply.IsFromAdmin, &reply.CreatedAt)
}
