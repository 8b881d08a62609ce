package mail

import (
	"bytes"
	"crypto/tls"
	"embed"
	"fmt"
	"html/template"
	"os"
	"strconv"

	"github.com/hallbook/hallbook/logger"
	gomail "gopkg.in/gomail.v2"
)

var templates *template.Template

// InitTemplates parses the embedded email templates. Call once at startup.
func InitTemplates(fs embed.FS) {
	templates = template.Must(template.ParseFS(fs, "templates/email/*.html"))
}

// ContactMessage is a submitted contact-form entry, delivered to the venue
// team's inbox.
type ContactMessage struct {
	Name    string
	Email   string
	Phone   string
	Subject string
	Message string
}

// SendContactMessage emails a contact-form submission to CONTACT_EMAIL.
func SendContactMessage(msg ContactMessage) error {
	if templates == nil {
		return fmt.Errorf("email templates not initialized")
	}

	var body bytes.Buffer
	if err := templates.ExecuteTemplate(&body, "contact_message.html", msg); err != nil {
		logger.ErrorLogger.Errorf("Failed to execute contact email template: %v", err)
		return fmt.Errorf("failed to execute email template: %w", err)
	}

	subject := msg.Subject
	if subject == "" {
		subject = "New contact message"
	}

	mailer := gomail.NewMessage()
	mailer.SetHeader("From", os.Getenv("FROM_EMAIL"))
	mailer.SetHeader("To", os.Getenv("CONTACT_EMAIL"))
	mailer.SetHeader("Reply-To", msg.Email)
	mailer.SetHeader("Subject", fmt.Sprintf("Contact form: %s", subject))
	mailer.SetBody("text/html", body.String())

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		logger.ErrorLogger.Errorf("Invalid SMTP port: %v", err)
		return fmt.Errorf("invalid SMTP port: %w", err)
	}

	smtpHost := os.Getenv("SMTP_HOST")
	dialer := gomail.NewDialer(smtpHost, port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"))
	dialer.TLSConfig = &tls.Config{ServerName: smtpHost}

	if err := dialer.DialAndSend(mailer); err != nil {
		logger.ErrorLogger.Errorf("Failed to send contact email: %v", err)
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	logger.InfoLogger.Infof("Contact message from %s delivered", msg.Email)
	return nil
}
