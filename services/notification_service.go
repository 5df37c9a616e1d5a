// services/notification_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"salon-booking-backend/models"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// EmailSender delivers one email and returns the provider message id.
type EmailSender interface {
	SendEmail(to, toName, subject, body string) (string, error)
}

// SMSSender delivers one SMS and returns the provider message id.
type SMSSender interface {
	SendSMS(to, body string) (string, error)
}

// SendGridEmailSender sends booking confirmations through SendGrid.
type SendGridEmailSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

// NewSendGridEmailSender builds a sender from SENDGRID_* env vars, or nil
// when no API key is configured.
func NewSendGridEmailSender() *SendGridEmailSender {
	apiKey := os.Getenv("SENDGRID_API_KEY")
	if apiKey == "" {
		return nil
	}
	fromName := os.Getenv("SENDGRID_FROM_NAME")
	if fromName == "" {
		fromName = "Salon Bookings"
	}
	return &SendGridEmailSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: os.Getenv("SENDGRID_FROM_EMAIL"),
		fromName:  fromName,
	}
}

func (s *SendGridEmailSender) SendEmail(to, toName, subject, body string) (string, error) {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, body, body)

	response, err := s.client.Send(message)
	if err != nil {
		return "", err
	}
	if response.StatusCode >= 400 {
		return "", fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}
	if ids := response.Headers["X-Message-Id"]; len(ids) > 0 {
		return ids[0], nil
	}
	return "", nil
}

// TwilioSMSSender sends booking confirmations through Twilio.
type TwilioSMSSender struct {
	client *twilio.RestClient
	from   string
}

// NewTwilioSMSSender builds a sender from TWILIO_* env vars, or nil when no
// account is configured.
func NewTwilioSMSSender() *TwilioSMSSender {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	if accountSid == "" || authToken == "" {
		return nil
	}
	return &TwilioSMSSender{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

func (s *TwilioSMSSender) SendSMS(to, body string) (string, error) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		return "", err
	}
	if resp.Sid != nil {
		return *resp.Sid, nil
	}
	return "", nil
}

// NotificationService drains queued notification rows and delivers them over
// the configured channels, moving each row to sent or failed.
type NotificationService struct {
	db    *gorm.DB
	email EmailSender
	sms   SMSSender
}

func NewNotificationService(db *gorm.DB) *NotificationService {
	svc := &NotificationService{db: db}
	if sender := NewSendGridEmailSender(); sender != nil {
		svc.email = sender
	}
	if sender := NewTwilioSMSSender(); sender != nil {
		svc.sms = sender
	}
	return svc
}

// NewNotificationServiceWithSenders wires explicit senders; used by tests.
func NewNotificationServiceWithSenders(db *gorm.DB, email EmailSender, sms SMSSender) *NotificationService {
	return &NotificationService{db: db, email: email, sms: sms}
}

// StartScheduler dispatches once at startup and then every minute.
func (s *NotificationService) StartScheduler() {
	c := cron.New()

	s.DispatchQueued()

	c.AddFunc("@every 1m", func() {
		s.DispatchQueued()
	})

	c.Start()
	log.Println("Notification dispatcher started")
}

// DispatchQueued processes every notification still in the queued state.
// There is no retry policy: a failed delivery stays failed.
func (s *NotificationService) DispatchQueued() {
	var pending []models.Notification
	if err := s.db.Where("status = ?", models.NotificationStatusQueued).
		Order("created_at asc").Find(&pending).Error; err != nil {
		log.Printf("Failed to fetch queued notifications: %v", err)
		return
	}

	for i := range pending {
		s.dispatch(&pending[i])
	}
}

func (s *NotificationService) dispatch(n *models.Notification) {
	var booking models.Booking
	if err := s.db.First(&booking, "id = ?", n.BookingID).Error; err != nil {
		s.markFailed(n, fmt.Errorf("booking lookup failed: %w", err))
		return
	}

	var externalID string
	var err error

	switch n.Type {
	case models.NotificationTypeEmail:
		if s.email == nil {
			err = errors.New("no email sender configured")
		} else {
			externalID, err = s.email.SendEmail(booking.CustomerEmail, booking.CustomerName, n.Subject, n.Body)
		}
	case models.NotificationTypeSMS:
		if s.sms == nil {
			err = errors.New("no sms sender configured")
		} else {
			externalID, err = s.sms.SendSMS(booking.CustomerPhone, n.Body)
		}
	default:
		err = fmt.Errorf("unsupported notification type: %s", n.Type)
	}

	if err != nil {
		s.markFailed(n, err)
		return
	}

	now := time.Now()
	n.Status = models.NotificationStatusSent
	n.ExternalID = externalID
	n.SentAt = &now
	if err := s.db.Save(n).Error; err != nil {
		log.Printf("Failed to mark notification %s as sent: %v", n.ID, err)
	}
}

func (s *NotificationService) markFailed(n *models.Notification, cause error) {
	log.Printf("Notification %s delivery failed: %v", n.ID, cause)
	n.Status = models.NotificationStatusFailed
	if err := s.db.Save(n).Error; err != nil {
		log.Printf("Failed to mark notification %s as failed: %v", n.ID, err)
	}
}
