package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinutes(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"08:00", 480, false},
		{"8:5", 485, false},
		{"23:59", 1439, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"-1:00", 0, true},
		{"0800", 0, true},
		{"ab:cd", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseMinutes(tt.in)
		if tt.wantErr {
			assert.Error(t, err, "entrada %q", tt.in)
			continue
		}
		require.NoError(t, err, "entrada %q", tt.in)
		assert.Equal(t, tt.want, got, "entrada %q", tt.in)
	}
}

func TestNormalizeHM(t *testing.T) {
	got, err := NormalizeHM("8:5")
	require.NoError(t, err)
	assert.Equal(t, "08:05", got)

	got, err = NormalizeHM("23:59")
	require.NoError(t, err)
	assert.Equal(t, "23:59", got)

	_, err = NormalizeHM("25:00")
	assert.Error(t, err)
}

func TestValidateWeekOK(t *testing.T) {
	blocks := []BlockInput{
		{DayOfWeek: 1, StartTime: "08:00", EndTime: "12:00"},
		{DayOfWeek: 1, StartTime: "14:00", EndTime: "18:00"},
		{DayOfWeek: 3, StartTime: "09:00", EndTime: "17:00"},
	}

	assert.Empty(t, ValidateWeek(blocks))
}

func TestValidateWeekBackToBackAllowed(t *testing.T) {
	// fim == início do próximo não é sobreposição
	blocks := []BlockInput{
		{DayOfWeek: 2, StartTime: "08:00", EndTime: "12:00"},
		{DayOfWeek: 2, StartTime: "12:00", EndTime: "16:00"},
	}

	assert.Empty(t, ValidateWeek(blocks))
}

func TestValidateWeekInvertedBlock(t *testing.T) {
	blocks := []BlockInput{
		{DayOfWeek: 1, StartTime: "12:00", EndTime: "08:00"},
	}

	violations := ValidateWeek(blocks)
	require.Len(t, violations, 1)
	assert.Equal(t,
		"Segunda: Horário de início (12:00) deve ser antes do fim (08:00).",
		violations[0])
}

func TestValidateWeekOverlap(t *testing.T) {
	blocks := []BlockInput{
		{DayOfWeek: 5, StartTime: "08:00", EndTime: "12:00"},
		{DayOfWeek: 5, StartTime: "11:00", EndTime: "15:00"},
	}

	violations := ValidateWeek(blocks)
	require.Len(t, violations, 1)
	assert.Equal(t,
		"Sexta: Blocos se sobrepõem (08:00-12:00 e 11:00-15:00).",
		violations[0])
}

func TestValidateWeekOverlapDifferentDaysOK(t *testing.T) {
	// mesmo horário em dias diferentes nunca conflita
	blocks := []BlockInput{
		{DayOfWeek: 1, StartTime: "08:00", EndTime: "12:00"},
		{DayOfWeek: 2, StartTime: "08:00", EndTime: "12:00"},
	}

	assert.Empty(t, ValidateWeek(blocks))
}

func TestValidateWeekCollectsAllViolations(t *testing.T) {
	blocks := []BlockInput{
		{DayOfWeek: 9, StartTime: "08:00", EndTime: "12:00"},  // dia inválido
		{DayOfWeek: 1, StartTime: "8h00", EndTime: "12:00"},   // formato
		{DayOfWeek: 2, StartTime: "14:00", EndTime: "10:00"},  // invertido
		{DayOfWeek: 3, StartTime: "08:00", EndTime: "12:00"},  // ok
		{DayOfWeek: 3, StartTime: "10:00", EndTime: "11:00"},  // sobrepõe o anterior
	}

	violations := ValidateWeek(blocks)
	assert.Len(t, violations, 4)
}

func TestValidateWeekMalformedBlockSkipsOverlapCheck(t *testing.T) {
	// bloco com formato inválido não entra na varredura de sobreposição:
	// uma violação só, não duas
	blocks := []BlockInput{
		{DayOfWeek: 4, StartTime: "xx:00", EndTime: "12:00"},
		{DayOfWeek: 4, StartTime: "08:00", EndTime: "12:00"},
	}

	violations := ValidateWeek(blocks)
	assert.Len(t, violations, 1)
}
