package models

import "time"

// Janela recorrente de expediente. Pode existir mais de uma por dia
// (turno da manhã / turno da tarde).
type WorkHours struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"uniqueIndex:idx_work_hours_window" json:"barber_id"`

	Weekday int `gorm:"uniqueIndex:idx_work_hours_window" json:"weekday"`

	StartTime string `gorm:"size:5;uniqueIndex:idx_work_hours_window" json:"start_time"`
	EndTime   string `gorm:"size:5;uniqueIndex:idx_work_hours_window" json:"end_time"`
	Active    bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
