package jobs

import (
	"log"
	"time"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// SalaryRecalculator định nghĩa interface cho việc quét lại lương tháng
type SalaryRecalculator interface {
	RecalculateMonthlySalaries(m *melody.Melody) error
}

var salaryRecalculator SalaryRecalculator

// SetSalaryRecalculator thiết lập implementation cho SalaryRecalculator
func SetSalaryRecalculator(recalculator SalaryRecalculator) {
	salaryRecalculator = recalculator
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày
	_, err := c.AddFunc("0 0 * * *", func() {
		now := time.Now()
		log.Printf("Đang quét lại lương tháng hiện tại lúc: %v", now)
		if salaryRecalculator == nil {
			log.Printf("Lỗi: SalaryRecalculator chưa được thiết lập")
			return
		}
		if err := salaryRecalculator.RecalculateMonthlySalaries(m); err != nil {
			log.Printf("Lỗi khi quét lại lương tháng: %v", err)
		}
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
