package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// MessageBuilder dựng thông báo chấm công gửi qua WebSocket
type MessageBuilder struct {
	userID         uint
	date           string
	attendanceType string
}

func NewMessageBuilder(userID uint, date string, attendanceType string) *MessageBuilder {
	return &MessageBuilder{
		userID:         userID,
		date:           date,
		attendanceType: attendanceType,
	}
}

func (b *MessageBuilder) Build() string {
	return fmt.Sprintf("🔔 User %d đã chấm công %s cho ngày %s.", b.userID, b.attendanceType, b.date)
}
