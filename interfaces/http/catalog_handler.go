package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"vespa-academy/domain/dto"
	"vespa-academy/domain/model"
	"vespa-academy/infrastructure/logger"
	"vespa-academy/usecase"
)

type ICatalogHandler interface {
	Home(c *gin.Context)
	Search(c *gin.Context)
	LikeVideo(c *gin.Context)
}

type CatalogHandler struct {
	catalogUsecase usecase.ICatalogUsecase
}

func NewCatalogHandler(catalogUsecase usecase.ICatalogUsecase) ICatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase}
}

// Home aggregates the whole landing page view model. On a storage failure
// it still answers 200 with an empty catalog and an advisory error so the
// page renders instead of crashing.
func (h *CatalogHandler) Home(c *gin.Context) {
	view, err := h.catalogUsecase.Home(c.Request.Context(), time.Now().UTC())
	if err != nil {
		view.Error = "The video catalog is temporarily unavailable."
	}
	// Form flows redirect back to the home page carrying advisory text
	if msg := c.Query("message"); msg != "" {
		view.Message = msg
	}
	if e := c.Query("error"); e != "" {
		view.Error = e
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK", Data: view})
}

func (h *CatalogHandler) Search(c *gin.Context) {
	query := c.Query("query")
	results, err := h.catalogUsecase.Search(c.Request.Context(), query)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while searching catalog")
		c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "Search is temporarily unavailable",
			Data: dto.SearchResponse{Query: query, Results: []*model.Video{}}})
		return
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK",
		Data: dto.SearchResponse{Query: query, Results: results}})
}

func (h *CatalogHandler) LikeVideo(c *gin.Context) {
	videoID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: "invalid video id"})
		return
	}
	likes, err := h.catalogUsecase.Like(c.Request.Context(), videoID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.Res{ResponseCode: "404", ResponseMessage: "video not found"})
			return
		}
		logger.GetLogger().WithField("error", err).Error("Error while incrementing likes")
		c.JSON(http.StatusInternalServerError, dto.Res{ResponseCode: "500", ResponseMessage: "could not record like"})
		return
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK",
		Data: dto.LikeResponse{VideoID: videoID, Likes: likes}})
}
