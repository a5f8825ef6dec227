package models

import "time"

// WeightLog keeps at most one row per user per calendar day. Date is stored
// at local midnight and the composite unique index makes the per-day upsert
// atomic even under concurrent submissions.
type WeightLog struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:uidx_weight_user_date" json:"userId"`
	Date      time.Time `gorm:"not null;uniqueIndex:uidx_weight_user_date" json:"date"`
	Weight    float64   `gorm:"not null" json:"weight"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
