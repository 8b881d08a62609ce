package contact_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hallbook/hallbook/logger"
	"github.com/hallbook/hallbook/utils/mail"
)

// ContactController delivers contact-form submissions to the venue team.
type ContactController struct {
	Send func(mail.ContactMessage) error
}

// NewContactController creates a new instance of ContactController.
func NewContactController() *ContactController {
	return &ContactController{Send: mail.SendContactMessage}
}

// ContactRequest is the contact form payload.
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

// SubmitMessage validates and emails a contact-form entry.
func (cc *ContactController) SubmitMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request data: " + err.Error()})
		return
	}

	err := cc.Send(mail.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		logger.ErrorLogger.Errorf("Failed to deliver contact message from %s: %v", req.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Could not send your message. Please try again."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Thanks for reaching out! We'll get back to you soon."})
}
