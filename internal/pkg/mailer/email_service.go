// FILE: internal/pkg/mailer/email_service.go
package mailer

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendReviewReturned(toEmail, contractID, reason string) error
	SendExpiryNotice(toEmail, contractID, endDate string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	frontendURL string // Added to construct links
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	// Get Frontend URL from ENV or default to a safe placeholder
	frontendURL := os.Getenv("FRONTEND_URL")

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
		frontendURL: frontendURL,
	}
}

func (s *emailService) SendReviewReturned(toEmail, contractID, reason string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Contract %s review returned", contractID))

	contractLink := fmt.Sprintf("%s/contracts/%s", s.frontendURL, contractID)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Review Returned</h2>
			<p>The review you submitted for contract <strong>%s</strong> was returned by the Contract Admin.</p>
			<p>Reason:</p>
			<blockquote style="border-left: 4px solid #ccc; padding-left: 10px;">%s</blockquote>
			<p>Please correct and resubmit:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Open Contract</a>
		</div>
	`, contractID, reason, contractLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send return notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Return notice sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendExpiryNotice(toEmail, contractID, endDate string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Contract %s has expired", contractID))

	contractLink := fmt.Sprintf("%s/contracts/%s", s.frontendURL, contractID)

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Contract Expired</h2>
			<p>Contract <strong>%s</strong> reached its end date (%s) and is now marked Expired.</p>
			<p>Submit a review to extend, renew or terminate it:</p>
			<a href="%s" style="background-color: #007BFF; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px; display: inline-block;">Open Contract</a>
		</div>
	`, contractID, endDate, contractLink)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send expiry notice to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Expiry notice sent to %s\n", toEmail)
	return nil
}
