package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"valuation-service/internal/dto"
)

func (h *Handler) GenerateDocument(c *gin.Context) {
	// Best-effort decode: the assembler defaults every missing or malformed
	// field, so a bad body never fails the request.
	var req dto.GenerateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithError(err).Debug("proposal request body not fully decoded, using defaults")
	}

	log.Info("proposal document request received")

	doc, err := h.documentUC.Generate(c.Request.Context(), dto.ToDocumentRequest(req))
	if err != nil {
		log.WithError(err).Error("proposal generation failed")
		mapDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}
