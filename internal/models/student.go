package models

import "time"

// Aluno simples, sem login, vinculado ao profissional.
// Upsert por (professional_id, email) no fluxo público de agendamento.
type Student struct {
	ID             uint `gorm:"primaryKey" json:"id"`
	ProfessionalID uint `gorm:"uniqueIndex:idx_students_prof_email" json:"professional_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:100;uniqueIndex:idx_students_prof_email;not null" json:"email"`
	Phone string `gorm:"size:20" json:"phone"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
