package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"vespa-academy/domain/dto"
	"vespa-academy/domain/model"
	"vespa-academy/infrastructure/logger"
	"vespa-academy/usecase"
)

type IEnquiryHandler interface {
	Submit(c *gin.Context)
}

type EnquiryHandler struct {
	enquiryUsecase usecase.IEnquiryUsecase
}

func NewEnquiryHandler(enquiryUsecase usecase.IEnquiryUsecase) IEnquiryHandler {
	return &EnquiryHandler{enquiryUsecase: enquiryUsecase}
}

// Submit accepts both the site's form post and JSON.
func (h *EnquiryHandler) Submit(c *gin.Context) {
	var req dto.EnquiryRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: err.Error()})
		return
	}

	if err := h.enquiryUsecase.Submit(c.Request.Context(), req); err != nil {
		var ve *model.ValidationError
		if errors.As(err, &ve) {
			c.JSON(http.StatusBadRequest, dto.Res{ResponseCode: "400", ResponseMessage: "Please fill in all required fields.", Warnings: []string{ve.Error()}})
			return
		}
		logger.GetLogger().WithField("error", err).Error("Error while submitting enquiry")
		c.JSON(http.StatusOK, dto.Res{ResponseCode: "500", ResponseMessage: "Sorry, an error occurred sending your message."})
		return
	}
	c.JSON(http.StatusOK, dto.Res{ResponseCode: "200", ResponseMessage: "Thank you! Your message has been sent."})
}
