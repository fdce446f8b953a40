package http

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/teamarchive/member-qa/internal/domain/answer"
	apperrors "github.com/teamarchive/member-qa/pkg/errors"
)

// Handler wires the HTTP transport to the answering domain.
type Handler struct {
	answerSvc answer.Service
	logger    *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(answerSvc answer.Service, logger *slog.Logger) *Handler {
	return &Handler{
		answerSvc: answerSvc,
		logger:    logger.With("component", "http.handler"),
	}
}

// Root reports liveness.
func (h *Handler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Member Q&A API is running."})
}

// Ask answers a natural-language question about a member. Pipeline failures
// (unreachable archive, unknown member, nothing relevant) come back as
// diagnostic answers with a 200, mirroring how callers consume them.
func (h *Handler) Ask(c *gin.Context) {
	question := strings.TrimSpace(c.Query("question"))
	if question == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "question query parameter is required", nil))
		return
	}

	resp, err := h.answerSvc.Ask(c.Request.Context(), answer.Request{Question: question})
	if err != nil {
		status := http.StatusInternalServerError
		code := "ask_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, resp)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
