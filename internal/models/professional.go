package models

import "time"

type Professional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string `gorm:"size:100;not null" json:"name"`
	Email        string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Phone        string `gorm:"size:20" json:"phone"`

	// Slug identifica a página pública de agendamento (/public/:slug)
	Slug      string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Timezone  string `gorm:"size:64;default:'America/Sao_Paulo'" json:"timezone"`
	AvatarURL string `gorm:"size:255" json:"avatar_url"`

	MinAdvanceMinutes int `gorm:"default:0" json:"min_advance_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
