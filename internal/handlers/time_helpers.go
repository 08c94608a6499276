package handlers

import (
	"time"

	"github.com/agendalivre/agenda-api/internal/models"
	"github.com/agendalivre/agenda-api/internal/timezone"
)

// resolve o fuso oficial do profissional
func locationFromProfessional(prof *models.Professional) *time.Location {
	if prof != nil {
		return timezone.Location(prof.Timezone)
	}
	return timezone.Location("")
}

func parseDateFor(prof *models.Professional, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromProfessional(prof),
	)
}
