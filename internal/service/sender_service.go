package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"salascrea/internal/auth"
	"salascrea/internal/config"
	"salascrea/internal/entities"
)

// SenderService sends reservation confirmations over email and SMS.
// Both channels are best effort: a failed or unconfigured channel is
// logged and never fails the submission that triggered it.
type SenderService struct {
	cfg    config.NotifyConfig
	logger *zap.Logger
}

func NewSenderService(cfg config.NotifyConfig, logger *zap.Logger) *SenderService {
	return &SenderService{cfg: cfg, logger: logger}
}

// ReservationConfirmed implements engine.Notifier.
func (s *SenderService) ReservationConfirmed(res entities.Reservation, session auth.Session) {
	roomName := res.RoomID
	if room, ok := entities.RoomByID(res.RoomID); ok {
		roomName = room.Name
	}

	data := entities.ReservationEmailData{
		UserName:      session.UserName,
		RoomName:      roomName,
		DayFormatted:  res.Date.Day,
		TimeFormatted: res.Date.Time,
		People:        res.People,
		CurrentYear:   time.Now().Year(),
	}

	if session.Email != "" {
		go func(toEmail string) {
			if err := s.sendEmail(toEmail, data); err != nil {
				s.logger.Error("Failed to send confirmation email",
					zap.String("room_id", res.RoomID),
					zap.Error(err),
				)
			}
		}(session.Email)
	}

	if session.Phone != "" {
		go func(toNumber string) {
			if err := s.sendSMS(toNumber, data); err != nil {
				s.logger.Error("Failed to send confirmation SMS",
					zap.String("room_id", res.RoomID),
					zap.Error(err),
				)
			}
		}(session.Phone)
	}
}

func (s *SenderService) sendEmail(toEmail string, data entities.ReservationEmailData) error {
	if s.cfg.SendGridAPIKey == "" || s.cfg.SendGridFromEmail == "" {
		s.logger.Warn("SendGrid not configured, skipping confirmation email")
		return nil
	}

	subject := fmt.Sprintf("Tu reserva en %s está confirmada", data.RoomName)
	body := fmt.Sprintf(
		"Hola %s,\n\nTu reserva está confirmada.\n\n"+
			"Detalles de la reserva:\n"+
			"Sala: %s\n"+
			"Fecha: %s\n"+
			"Hora: %s\n"+
			"Personas: %d\n\n"+
			"Gracias por reservar con nosotros.\n\n"+
			"Salas CREA %d. Todos los derechos reservados.",
		data.UserName, data.RoomName, data.DayFormatted, data.TimeFormatted,
		data.People, data.CurrentYear,
	)

	from := mail.NewEmail(s.cfg.SendGridFromName, s.cfg.SendGridFromEmail)
	to := mail.NewEmail(data.UserName, toEmail)
	message := mail.NewSingleEmail(from, subject, to, body, body)

	sgClient := sendgrid.NewSendClient(s.cfg.SendGridAPIKey)
	response, err := sgClient.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email through SendGrid: %w", err)
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return fmt.Errorf("SendGrid returned status %d: %s", response.StatusCode, response.Body)
	}

	s.logger.Info("Confirmation email sent", zap.String("subject", subject))
	return nil
}

func (s *SenderService) sendSMS(toNumber string, data entities.ReservationEmailData) error {
	if s.cfg.TwilioAccountSID == "" || s.cfg.TwilioAuthToken == "" || s.cfg.TwilioFromNumber == "" {
		s.logger.Warn("Twilio not configured, skipping confirmation SMS")
		return nil
	}
	if !strings.HasPrefix(toNumber, "+") {
		s.logger.Warn("Destination number is not E.164, SMS may fail",
			zap.String("to", toNumber),
		)
	}

	message := fmt.Sprintf("Salas CREA: ¡Tu reserva en %s está confirmada!\nFecha: %s %s.\nMás detalles en tu correo.",
		data.RoomName, data.DayFormatted, data.TimeFormatted)

	twClient := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: s.cfg.TwilioAccountSID,
		Password: s.cfg.TwilioAuthToken,
	})

	params := &openapi.CreateMessageParams{}
	params.SetTo(toNumber)
	params.SetFrom(s.cfg.TwilioFromNumber)
	params.SetBody(message)

	if _, err := twClient.Api.CreateMessage(params); err != nil {
		return fmt.Errorf("failed to send SMS: %w", err)
	}

	s.logger.Info("Confirmation SMS sent", zap.String("room", data.RoomName))
	return nil
}
