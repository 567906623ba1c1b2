package database

import (
	"context"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"
)

// GeneratedText represents a persisted prompt/response pair owned by a user.
// Rows are created once per successful generation call and are immutable.
type GeneratedText struct {
	gorm.Model
	Prompt   string `gorm:"not null"`
	Response string `gorm:"not null"`
	UserID   uint   `gorm:"index;not null"`
}

func (c *Client) CreateGeneratedText(ctx context.Context, userID uint, prompt, response string) (*GeneratedText, error) {
	text := GeneratedText{
		Prompt:   prompt,
		Response: response,
		UserID:   userID,
	}
	if err := c.db.WithContext(ctx).Create(&text).Error; err != nil {
		log.Error("failed to create generated text", "error", err)
		return nil, err
	}
	return &text, nil
}

func (c *Client) ListGeneratedTextsByUser(ctx context.Context, userID uint) ([]GeneratedText, error) {
	var texts []GeneratedText
	if err := c.db.WithContext(ctx).Where("user_id = ?", userID).Find(&texts).Error; err != nil {
		log.Error("failed to list generated texts", "error", err)
		return nil, err
	}
	return texts, nil
}
