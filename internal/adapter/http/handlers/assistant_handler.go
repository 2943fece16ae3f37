package handlers

import (
	"net/http"

	request "fieldflow/internal/adapter/http/dto/request"
	response "fieldflow/internal/adapter/http/dto/response"
	"fieldflow/internal/usecase"
	"fieldflow/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidAudioPayload = pkg.NewDomainErrorSimple("INVALID_AUDIO_INPUT", "Invalid audio data URI", http.StatusBadRequest)

// AssistantHandler exposes the generative-AI lifecycle steps: voice
// transcription, job analysis and coordination.

type AssistantHandler struct {
	usecase usecase.IAssistantUseCase
}

func NewAssistantHandler(uc usecase.IAssistantUseCase) *AssistantHandler {
	return &AssistantHandler{usecase: uc}
}

// Transcribe extracts draft work order fields from an uploaded recording.
// Nothing is stored; the client reviews the draft and creates the order with
// a separate request.
func (h *AssistantHandler) Transcribe(c *gin.Context) {
	var payload request.TranscriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidAudioPayload.HTTPStatus, errInvalidAudioPayload.ToHTTPError())
		return
	}

	mimeType, audio, err := payload.DecodeAudio()
	if err != nil {
		c.JSON(errInvalidAudioPayload.HTTPStatus, errInvalidAudioPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.TranscribeWorkOrder(c.Request.Context(), audio, mimeType)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromTranscription(result))
}

// Analyze runs the job analysis for an order and merges the estimate into it.
func (h *AssistantHandler) Analyze(c *gin.Context) {
	order, err := h.usecase.AnalyzeWorkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromWorkOrder(order))
}

// Coordinate asks the coordinator for a proactive action on the order.
func (h *AssistantHandler) Coordinate(c *gin.Context) {
	result, err := h.usecase.CoordinateWorkOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromCoordination(result))
}
