package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhiman/studiobackend/dto"
	"github.com/abhiman/studiobackend/mailer"
	"github.com/abhiman/studiobackend/pdf"
	"github.com/abhiman/studiobackend/quotation"
	"github.com/abhiman/studiobackend/utils"
)

// SendQuotation renders the priced summary to HTML, exports it to PDF, and
// emails both to the customer and the studio. Each stage returns a typed
// error the handler maps to its structured response; gin.Recovery remains
// the outer boundary so nothing escapes unstructured.
func SendQuotation(renderer *quotation.Renderer, exporter pdf.Renderer, sender mailer.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.QuotationRequest
		_ = c.ShouldBindJSON(&req)
		if req.Name == "" {
			req.Name = "Customer"
		}

		html, err := renderer.Render(req)
		if err != nil {
			utils.GetLogger().Error("Error rendering quotation document", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email", "details": err.Error()})
			return
		}

		pdfBytes, err := exporter.Render(c.Request.Context(), html)
		if err != nil {
			utils.GetLogger().Error("PDF generation failed", zap.Error(err))
			details := err.Error()
			var genErr *pdf.GenerationError
			if errors.As(err, &genErr) {
				details = genErr.Detail
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "PDF generation failed", "details": details})
			return
		}

		msg := mailer.Message{
			Subject: "Wedding Quotation for " + req.Name,
			HTML:    html,
			Attachments: []mailer.Attachment{{
				Filename:    "Quotation.pdf",
				ContentType: "application/pdf",
				Disposition: "attachment",
				Content:     pdfBytes,
			}},
		}
		if req.Email != "" {
			msg.To = []string{req.Email}
		}
		if err := sender.Send(c.Request.Context(), msg); err != nil {
			utils.GetLogger().Error("Error sending quotation email", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send email", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Quotation sent successfully!"})
	}
}
