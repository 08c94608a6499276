package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Referência externa entregue ao aluno (nunca expor o ID sequencial)
	PublicID uuid.UUID `gorm:"type:uuid;uniqueIndex" json:"public_id"`

	ProfessionalID uint         `json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	StudentID uint    `json:"student_id"`
	Student   Student `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"student"`

	// Instantes absolutos em UTC
	StartTime time.Time `gorm:"not null" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	Status string `gorm:"size:20;default:'pending'" json:"status"`

	PaymentPreferenceID string `gorm:"size:100" json:"payment_preference_id,omitempty"`
	CalendarEventID     string `gorm:"size:100" json:"-"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CanceledAt  *time.Time `json:"canceled_at"`
	ConfirmedAt *time.Time `json:"confirmed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
