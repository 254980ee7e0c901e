package app

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	domerrors "github.com/campusvoice/campus-assistant-go/internal/errors"
	"github.com/campusvoice/campus-assistant-go/internal/sentry"
)

var validate = validator.New()

// queryRequest is the POST /api/query body. Text may be empty: the assistant
// answers malformed input with a clarification prompt instead of an error.
type queryRequest struct {
	Text string `json:"text" validate:"max=1000"`
}

type queryEntities struct {
	Department string `json:"department,omitempty"`
	Day        string `json:"day,omitempty"`
	Facility   string `json:"facility,omitempty"`
}

type queryResponse struct {
	Response   string        `json:"response"`
	Intent     string        `json:"intent"`
	Confidence float64       `json:"confidence"`
	Entities   queryEntities `json:"entities"`
	RequestID  string        `json:"request_id"`
}

func (a *Application) handleQuery(c *gin.Context) {
	var req queryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query text too long"})
		return
	}

	ctx, cancel := a.queryContext(c)
	defer cancel()

	reply, err := a.assistant.Answer(ctx, req.Text)
	if err != nil {
		// Store failure is the one error class the core cannot mask.
		if errors.Is(err, domerrors.ErrStoreUnavailable) {
			sentry.CaptureExceptionWithContext(c.Request.Context(), err)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"error":      domerrors.GetUserMessage(err),
				"request_id": requestID(c),
			})
			return
		}
		a.logger.WithError(err).WithRequestID(requestID(c)).Errorf("query handling failed")
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":      "Sorry, something went wrong. Please try again.",
			"request_id": requestID(c),
		})
		return
	}

	c.JSON(http.StatusOK, queryResponse{
		Response:   reply.Response,
		Intent:     string(reply.Result.Intent),
		Confidence: reply.Result.Confidence,
		Entities: queryEntities{
			Department: reply.Result.Entities.Department,
			Day:        reply.Result.Entities.Day,
			Facility:   reply.Result.Entities.Facility,
		},
		RequestID: requestID(c),
	})
}
