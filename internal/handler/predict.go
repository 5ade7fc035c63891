package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"valuation-service/internal/dto"
)

func (h *Handler) Predict(c *gin.Context) {
	var req dto.PredictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	log.WithFields(log.Fields{
		"city_code": req.CityCode,
		"features":  len(req.Features),
	}).Info("valuation request received")

	result, err := h.predictUC.Predict(c.Request.Context(), dto.ToPredictionRequest(req))
	if err != nil {
		log.WithError(err).WithField("city_code", req.CityCode).Error("prediction failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPredictResponse(result))
}
