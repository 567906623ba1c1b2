package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/genvault/genvault/api/models"
	"github.com/genvault/genvault/database"
	"github.com/genvault/genvault/generator"
)

// defaultMaxTokens is applied when a generation request omits the hint.
const defaultMaxTokens = 1000

// Generator produces a completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type Handler struct {
	db        database.DB
	generator Generator
}

func New(db database.DB, gen Generator) *Handler {
	return &Handler{
		db:        db,
		generator: gen,
	}
}

// Generate forwards the prompt to the text-generation service, persists the
// resulting prompt/response pair for the authenticated user and returns the
// response text.
func (h *Handler) Generate(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}
	if req.MaxTokens == 0 {
		req.MaxTokens = defaultMaxTokens
	}
	// TODO: forward req.MaxTokens to the completion request once product
	// confirms the limit should be enforced upstream.

	ctx := c.Request.Context()

	text, err := h.generator.Generate(ctx, req.Prompt)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, generator.ErrUpstream) {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.db.CreateGeneratedText(ctx, userID, req.Prompt, text); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, text)
}

// Responses lists every prompt/response pair owned by the authenticated user.
func (h *Handler) Responses(c *gin.Context) {
	userID := c.MustGet("user_id").(uint)

	texts, err := h.db.ListGeneratedTextsByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	responses := lo.Map(texts, func(t database.GeneratedText, _ int) models.GeneratedTextResponse {
		return models.GeneratedTextResponse{
			ID:       t.ID,
			Prompt:   t.Prompt,
			Response: t.Response,
		}
	})

	c.JSON(http.StatusOK, responses)
}
