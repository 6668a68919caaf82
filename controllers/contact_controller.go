package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhiman/studiobackend/dto"
	"github.com/abhiman/studiobackend/mailer"
	"github.com/abhiman/studiobackend/utils"
)

// Contact handles enquiry form submissions: validate, compose the enquiry
// email, dispatch. The studio inbox is always copied by the dispatcher.
func Contact(sender mailer.Sender) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req dto.ContactRequest
		// A missing or invalid body is an empty submission, not a parse
		// error; the field check below produces the real response.
		_ = c.ShouldBindJSON(&req)

		if !req.HasRequiredFields() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required fields: name, email, eventDate, or eventType"})
			return
		}

		body := fmt.Sprintf(`
New Enquiry Received:

Name: %s
Email: %s
Phone: %s
Event Type: %s
Event Date: %s
Preferred Contact Date: %s
Preferred Contact Time: %s
Message: %s
`, req.Name, req.Email, req.Phone, req.EventType, req.EventDate, req.PreferredDate, req.PreferredTime, req.Message)

		msg := mailer.Message{
			Subject:   "New Enquiry from " + req.Name,
			To:        []string{req.Email},
			PlainText: body,
		}
		if err := sender.Send(c.Request.Context(), msg); err != nil {
			utils.GetLogger().Error("Error sending contact email", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Email sending failed", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Email sent successfully"})
	}
}
