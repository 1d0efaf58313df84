package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendOfferEmail(toEmail, candidateName, jobTitle string) error
	SendRejectionEmail(toEmail, candidateName, jobTitle string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendOfferEmail(toEmail, candidateName, jobTitle string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Offer: %s", jobTitle))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Congratulations, %s!</h2>
			<p>We are pleased to extend you an offer for the <strong>%s</strong> position.</p>
			<p>The hiring team will reach out shortly with the details.</p>
		</div>
	`, candidateName, jobTitle)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send offer email to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Offer email sent to %s\n", toEmail)
	return nil
}

func (s *emailService) SendRejectionEmail(toEmail, candidateName, jobTitle string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Update on your application for %s", jobTitle))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hello %s,</h2>
			<p>Thank you for your interest in the <strong>%s</strong> position.</p>
			<p>After careful consideration we have decided not to move forward with your application.</p>
			<p>We encourage you to apply for future openings that match your skills.</p>
		</div>
	`, candidateName, jobTitle)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send rejection email to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Rejection email sent to %s\n", toEmail)
	return nil
}
