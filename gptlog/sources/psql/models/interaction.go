package models

import (
	"time"
)

// Interaction is one logged user-message/assistant-response pair.
// Rows are insert-only; nothing in this service updates or deletes them.
type Interaction struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	UserID         *string   `json:"user_id,omitempty" gorm:"type:varchar(255)"`
	UserMessage    string    `json:"user_message" gorm:"type:text;not null"`
	GptResponse    string    `json:"gpt_response" gorm:"type:text;not null"`
	ConversationID *string   `json:"conversation_id,omitempty" gorm:"type:varchar(255)"`
	Timestamp      time.Time `json:"timestamp" gorm:"not null"`
}

func (Interaction) TableName() string {
	return "interactions"
}
