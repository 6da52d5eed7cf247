package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"salascrea/internal/auth"
	"salascrea/internal/config"
	"salascrea/internal/entities"
)

func TestSendEmailUnconfiguredIsNoop(t *testing.T) {
	s := NewSenderService(config.NotifyConfig{}, zap.NewNop())

	err := s.sendEmail("ana@example.com", entities.ReservationEmailData{UserName: "Ana"})
	assert.NoError(t, err)
}

func TestSendSMSUnconfiguredIsNoop(t *testing.T) {
	s := NewSenderService(config.NotifyConfig{}, zap.NewNop())

	err := s.sendSMS("+391234567890", entities.ReservationEmailData{UserName: "Ana"})
	assert.NoError(t, err)
}

func TestReservationConfirmedWithoutContactChannels(t *testing.T) {
	s := NewSenderService(config.NotifyConfig{}, zap.NewNop())

	// No email or phone in the session: nothing to send, must not panic.
	s.ReservationConfirmed(entities.Reservation{
		RoomID: "Sala-Crea",
		People: 2,
		State:  entities.StatusConfirmed,
	}, auth.Session{UserName: "Ana"})
}
