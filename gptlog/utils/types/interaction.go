// gptlog/utils/types/interaction.go
package types

// LogInteractionRequest is the wire body for POST /log_interaction.
// userId and conversationId are optional and stored as NULL when omitted.
type LogInteractionRequest struct {
	UserMessage    string  `json:"userMessage"`
	GptResponse    string  `json:"gptResponse"`
	UserID         *string `json:"userId,omitempty"`
	ConversationID *string `json:"conversationId,omitempty"`
}
