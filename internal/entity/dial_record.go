package entity

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// DialRecord is one entry of the dial history
type DialRecord struct {
	gorm.Model
	PhoneNumber string    `json:"phone_number" gorm:"size:100;not null;index"`
	DialedAt    time.Time `json:"dialed_at" gorm:"not null"`
}

func NewDialRecord(number PhoneNumber, dialedAt time.Time) *DialRecord {
	return &DialRecord{PhoneNumber: string(number), DialedAt: dialedAt}
}

func (r *DialRecord) Format() string {
	return fmt.Sprintf("%s  %s", r.DialedAt.Format("02.01.2006 15:04:05"), r.PhoneNumber)
}
