package jobs

import (
	"log"
	"time"

	"github.com/midiiiwo/frozen-haven-api/models"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

const (
	stalePendingAfter  = 24 * time.Hour
	stalePayLaterAfter = 48 * time.Hour
)

// StartOrderReminder schedules a nightly reminder that logs orders stuck in
// pending or awaiting mobile money payment, so an operator can chase them.
func StartOrderReminder(db *gorm.DB) *cron.Cron {
	c := cron.New()
	c.AddFunc("@midnight", func() {
		RunOrderReminder(db)
	})
	c.Start()
	return c
}

// RunOrderReminder counts stale orders and logs the result.
func RunOrderReminder(db *gorm.DB) {
	now := time.Now()

	var stalePending int64
	if err := db.Model(&models.Order{}).
		Where("status = ? AND created_at < ?", models.OrderStatusPending, now.Add(-stalePendingAfter)).
		Count(&stalePending).Error; err != nil {
		log.Printf("❌ Order reminder: failed to count pending orders: %v", err)
		return
	}

	var stalePayLater int64
	if err := db.Model(&models.Order{}).
		Where("status = ? AND created_at < ?", models.OrderStatusPayLater, now.Add(-stalePayLaterAfter)).
		Count(&stalePayLater).Error; err != nil {
		log.Printf("❌ Order reminder: failed to count pay_later orders: %v", err)
		return
	}

	if stalePending == 0 && stalePayLater == 0 {
		log.Println("✅ Order reminder: no stale orders")
		return
	}
	log.Printf("⏰ Order reminder: %d order(s) pending > %s, %d order(s) awaiting payment > %s",
		stalePending, stalePendingAfter, stalePayLater, stalePayLaterAfter)
}
