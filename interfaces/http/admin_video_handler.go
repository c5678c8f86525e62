package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"vespa-academy/domain/dto"
	"vespa-academy/domain/model"
	"vespa-academy/infrastructure/logger"
	"vespa-academy/usecase"
)

type IAdminVideoHandler interface {
	AddVideo(c *gin.Context)
	EditVideo(c *gin.Context)
	DeleteVideo(c *gin.Context)
}

type AdminVideoHandler struct {
	videoUsecase usecase.IVideoAdminUsecase
}

func NewAdminVideoHandler(videoUsecase usecase.IVideoAdminUsecase) IAdminVideoHandler {
	return &AdminVideoHandler{videoUsecase: videoUsecase}
}

func (h *AdminVideoHandler) AddVideo(c *gin.Context) {
	var req dto.VideoUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: err.Error()})
		return
	}

	res, warnings, err := h.videoUsecase.AddVideo(c.Request.Context(), req)
	if err != nil {
		respondWriteError(c, err, "Error while adding video")
		return
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK", Warnings: warningStrings(warnings), Data: res})
}

func (h *AdminVideoHandler) EditVideo(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: "invalid video id"})
		return
	}
	var req dto.VideoUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: err.Error()})
		return
	}

	warnings, err := h.videoUsecase.EditVideo(c.Request.Context(), videoID, req)
	if err != nil {
		respondWriteError(c, err, "Error while editing video")
		return
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK", Warnings: warningStrings(warnings)})
}

func (h *AdminVideoHandler) DeleteVideo(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: "invalid video id"})
		return
	}
	if err := h.videoUsecase.DeleteVideo(c.Request.Context(), videoID); err != nil {
		respondWriteError(c, err, "Error while deleting video")
		return
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK"})
}

// respondWriteError maps the write-path error taxonomy onto HTTP codes.
func respondWriteError(c *gin.Context, err error, logMsg string) {
	var ve *model.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: ve.Error()})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Res{ResponseCode: "404", ResponseMessage: "not found"})
	default:
		logger.GetLogger().WithField("error", err).Error(logMsg)
		c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: err.Error()})
	}
}

func warningStrings(warnings []model.ConstraintWarning) []string {
	if len(warnings) == 0 {
		return nil
	}
	out := make([]string, 0, len(warnings))
	for _, w := range warnings {
		out = append(out, w.Item+": "+w.Reason)
	}
	return out
}
