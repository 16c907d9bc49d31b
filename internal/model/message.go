package model

import "time"

// Message is an inbound contact-form submission.
type Message struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// MessageReply is an answer attached to a Message. Replies have no lifecycle
// of their own: they are only created and listed under their parent.
type MessageReply struct {
	ID          string    `json:"id"`
	MessageID   string    `json:"messageId"`
	Reply       string    `json:"reply"`
	IsFromAdmin bool      `json:"isFromAdmin"`
	CreatedAt   time.Time `json:"createdAt"`
}
