package models

import "time"

// Bloco recorrente de expediente: dia da semana + faixa de horário local.
// O conjunto de blocos de um dia nunca pode se sobrepor (ver schedule.ValidateWeek).
type AvailabilityBlock struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"index" json:"professional_id"`

	// 0 = domingo ... 6 = sábado
	DayOfWeek int `gorm:"not null" json:"day_of_week"`

	// Horário local do profissional, "HH:MM"
	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
