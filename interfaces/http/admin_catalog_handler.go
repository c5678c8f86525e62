package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vespa-academy/domain/dto"
	"vespa-academy/usecase"
)

type IAdminCatalogHandler interface {
	CreateCategory(c *gin.Context)
	UpdateCategory(c *gin.Context)
	DeleteCategory(c *gin.Context)
	CreateSeries(c *gin.Context)
	UpdateSeries(c *gin.Context)
	DeleteSeries(c *gin.Context)
	FeatureSeries(c *gin.Context)
}

type AdminCatalogHandler struct {
	adminUsecase usecase.ICatalogAdminUsecase
}

func NewAdminCatalogHandler(adminUsecase usecase.ICatalogAdminUsecase) IAdminCatalogHandler {
	return &AdminCatalogHandler{adminUsecase: adminUsecase}
}

func (h *AdminCatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: err.Error()})
		return
	}
	if err := h.adminUsecase.CreateCategory(c.Request.Context(), req); err != nil {
		respondWriteError(c, err, "Error while creating category")
		return
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK"})
}

func (h *AdminCatalogHandler) UpdateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: err.Error()})
		return
	}
	req.Key = c.Param("key")
	if err := h.adminUsecase.UpdateCategory(c.Request.Context(), req); err != nil {
		respondWriteError(c, err, "Error while updating category")
		return
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK"})
}

func (h *AdminCatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.adminUsecase.DeleteCategory(c.Request.Context(), c.Param("key")); err != nil {
		respondWriteError(c, err, "Error while deleting category")
		return
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK"})
}

func (h *AdminCatalogHandler) CreateSeries(c *gin.Context) {
	var req dto.SeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: err.Error()})
		return
	}
	id, err := h.adminUsecase.CreateSeries(c.Request.Context(), req)
	if err != nil {
		respondWriteError(c, err, "Error while creating series")
		return
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK", Data: gin.H{"series_id": id}})
}

func (h *AdminCatalogHandler) UpdateSeries(c *gin.Context) {
	var req dto.SeriesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: err.Error()})
		return
	}
	req.Key = c.Param("key")
	if err := h.adminUsecase.UpdateSeries(c.Request.Context(), req); err != nil {
		respondWriteError(c, err, "Error while updating series")
		return
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK"})
}

func (h *AdminCatalogHandler) DeleteSeries(c *gin.Context) {
	if err := h.adminUsecase.DeleteSeries(c.Request.Context(), c.Param("key")); err != nil {
		respondWriteError(c, err, "Error while deleting series")
		return
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK"})
}

func (h *AdminCatalogHandler) FeatureSeries(c *gin.Context) {
	if err := h.adminUsecase.SetFeaturedSeries(c.Request.Context(), c.Param("key")); err != nil {
		respondWriteError(c, err, "Error while featuring series")
		return
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "OK"})
}
