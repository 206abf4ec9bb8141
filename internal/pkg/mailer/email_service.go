package mailer

import (
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"
)

// PestRecommendations is one pest's advice block in the results email.
type PestRecommendations struct {
	PestType        string
	Recommendations []string
}

type IEmailService interface {
	SendRecommendations(toEmail, pestType, tier string, recommendations []string, otherPests []PestRecommendations) error
	SendLeadNotification(toEmail, contactName, contactPhone, pestType, tier string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
	senderName  string
}

func NewEmailService(host string, port int, username, password, senderName string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: username,
		senderName:  senderName,
	}
}

// SendRecommendations mails the customer the tier-specific care steps for
// their primary pest, plus default-tier advice for every other pest they
// selected.
func (s *emailService) SendRecommendations(toEmail, pestType, tier string, recommendations []string, otherPests []PestRecommendations) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("Your %s Assessment Results", pestType))

	var items strings.Builder
	for _, rec := range recommendations {
		items.WriteString(fmt.Sprintf("<li style=\"margin-bottom: 8px;\">%s</li>", rec))
	}

	var others strings.Builder
	if len(otherPests) > 0 {
		others.WriteString("<h3>Other pests you selected</h3>")
		for _, other := range otherPests {
			others.WriteString(fmt.Sprintf("<h4>%s</h4><ul>", other.PestType))
			for _, rec := range other.Recommendations {
				others.WriteString(fmt.Sprintf("<li style=\"margin-bottom: 8px;\">%s</li>", rec))
			}
			others.WriteString("</ul>")
		}
	}

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Your Pest Assessment Results</h2>
			<p>Based on your answers, your <strong>%s</strong> situation is rated <strong>%s</strong>.</p>
			<p>Recommended next steps:</p>
			<ul>%s</ul>
			%s
			<p>Our team is happy to help - reply to this email or schedule a consultation any time.</p>
		</div>
	`, pestType, tier, items.String(), others.String())

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send recommendations to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Recommendations sent to %s\n", toEmail)
	return nil
}

// SendLeadNotification alerts the sales inbox that a new qualified lead is
// waiting in the database.
func (s *emailService) SendLeadNotification(toEmail, contactName, contactPhone, pestType, tier string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.senderEmail, s.senderName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", fmt.Sprintf("New %s lead: %s (%s)", tier, contactName, pestType))

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>New Qualified Lead</h2>
			<p><strong>Name:</strong> %s</p>
			<p><strong>Phone:</strong> %s</p>
			<p><strong>Pest:</strong> %s</p>
			<p><strong>Severity:</strong> %s</p>
			<p>Please reach out within 24 hours.</p>
		</div>
	`, contactName, contactPhone, pestType, tier)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send lead notification to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Lead notification sent to %s\n", toEmail)
	return nil
}
