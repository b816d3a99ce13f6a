package services

import (
	"context"
	"fmt"
	"time"

	"chamcong/services/notification"

	"github.com/olahol/melody"
)

// SalaryCalculatorAdapter nối SalaryCalculator với cron job quét lương hằng đêm
type SalaryCalculatorAdapter struct {
	calculator *SalaryCalculator
}

func NewSalaryCalculatorAdapter(calculator *SalaryCalculator) *SalaryCalculatorAdapter {
	return &SalaryCalculatorAdapter{calculator: calculator}
}

func (a *SalaryCalculatorAdapter) RecalculateMonthlySalaries(m *melody.Melody) error {
	if err := a.calculator.RecalculateCurrentMonth(context.Background()); err != nil {
		return err
	}

	notificationService := notification.NewMelodyService(m)
	message := fmt.Sprintf("🔔 Lương tháng %s đã được cập nhật theo dữ liệu chấm công.", MonthOf(time.Now()))
	if err := notificationService.SendMessage(message); err != nil {
		// WebSocket lỗi không làm hỏng lần quét đã hoàn tất
		a.calculator.logger.Warn("Không gửi được thông báo quét lương: %v", err)
	}
	return nil
}
