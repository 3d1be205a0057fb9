package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authdelivery "voicelog-backend/internal/auth/delivery"
	"voicelog-backend/internal/voicelog/dto"
	"voicelog-backend/internal/voicelog/usecase"
	"voicelog-backend/pkg/apperr"
)

type VoiceLogHandler struct {
	voiceLogUsecase usecase.VoiceLogUsecase
}

func NewVoiceLogHandler(voiceLogUsecase usecase.VoiceLogUsecase) *VoiceLogHandler {
	return &VoiceLogHandler{voiceLogUsecase: voiceLogUsecase}
}

// SendToDify handles POST /api/dify/send: forward the submission to the
// workflow app and return the normalized answer.
func (h *VoiceLogHandler) SendToDify(c *gin.Context) {
	var req dto.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.InvalidArgument("必要なパラメータが不足しています"))
		return
	}

	res, err := h.voiceLogUsecase.Submit(c.Request.Context(), authdelivery.UserFrom(c), req)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *VoiceLogHandler) Append(c *gin.Context) {
	var req dto.AppendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.InvalidArgument(err.Error()))
		return
	}

	entry, err := h.voiceLogUsecase.Append(c.Request.Context(), authdelivery.UserFrom(c), req)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "id": entry.ID, "log": entry})
}

func (h *VoiceLogHandler) History(c *gin.Context) {
	res, err := h.voiceLogUsecase.History(c.Request.Context(), authdelivery.UserFrom(c).UID)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *VoiceLogHandler) Calendar(c *gin.Context) {
	res, err := h.voiceLogUsecase.Calendar(c.Request.Context(), authdelivery.UserFrom(c).UID)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *VoiceLogHandler) ByDate(c *gin.Context) {
	logs, err := h.voiceLogUsecase.ByDate(c.Request.Context(), authdelivery.UserFrom(c).UID, c.Param("date"))
	if err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs, "count": len(logs)})
}

func (h *VoiceLogHandler) MangaAllowance(c *gin.Context) {
	allowed, err := h.voiceLogUsecase.MangaAllowedToday(c.Request.Context(), authdelivery.UserFrom(c).UID)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MangaAllowanceResponse{Allowed: allowed})
}

func (h *VoiceLogHandler) GenerateManga(c *gin.Context) {
	var req dto.MangaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperr.Write(c, apperr.InvalidArgument(err.Error()))
		return
	}

	res, err := h.voiceLogUsecase.GenerateManga(c.Request.Context(), authdelivery.UserFrom(c).UID, req)
	if err != nil {
		apperr.Write(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
