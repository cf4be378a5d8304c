package domain

import "time"

// Conversation is a direct message thread between the viewer and UserID.
type Conversation struct {
	ID            int       `json:"Id" yaml:"id"`
	UserID        int       `json:"userId" yaml:"userId"`
	LastMessage   string    `json:"lastMessage" yaml:"lastMessage"`
	LastMessageAt time.Time `json:"lastMessageAt" yaml:"lastMessageAt"`
	Unread        int       `json:"unread" yaml:"unread"`
}

func (c Conversation) Clone() Conversation {
	return c
}

type Message struct {
	ID             int       `json:"Id" yaml:"id"`
	ConversationID int       `json:"conversationId" yaml:"conversationId"`
	SenderID       int       `json:"senderId" yaml:"senderId"`
	Content        string    `json:"content" yaml:"content"`
	IsOwn          bool      `json:"isOwn" yaml:"isOwn"`
	CreatedAt      time.Time `json:"createdAt" yaml:"createdAt"`
}

func (m Message) Clone() Message {
	return m
}
