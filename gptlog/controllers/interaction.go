// gptlog/controllers/interaction.go
package controllers

import (
	"context"
	"time"

	"gptlog/gptlog/sources/psql/dao"
	"gptlog/gptlog/sources/psql/models"
	"gptlog/gptlog/utils/logging"
	"gptlog/gptlog/utils/types"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type InteractionController struct {
	interactionDAO *dao.InteractionDAO
}

func NewInteractionController(interactionDAO *dao.InteractionDAO) *InteractionController {
	return &InteractionController{interactionDAO: interactionDAO}
}

// LogInteraction stamps a fresh id and server-side UTC timestamp, persists the
// interaction, and returns the success acknowledgment body.
func (c *InteractionController) LogInteraction(ctx context.Context, req types.LogInteractionRequest) (map[string]string, error) {
	interaction := &models.Interaction{
		ID:             uuid.New().String(),
		UserID:         req.UserID,
		UserMessage:    req.UserMessage,
		GptResponse:    req.GptResponse,
		ConversationID: req.ConversationID,
		Timestamp:      time.Now().UTC(),
	}
	if err := c.interactionDAO.Insert(ctx, interaction); err != nil {
		logging.ErrorLogger.Error("failed to log interaction", zap.Error(err))
		return nil, err
	}
	logging.AppLogger.Info("interaction logged",
		zap.String("id", interaction.ID),
		zap.String("user_message", truncate(req.UserMessage, 50)),
		zap.String("gpt_response", truncate(req.GptResponse, 50)),
	)
	return map[string]string{
		"status":  "success",
		"message": "Interaction logged successfully",
	}, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
