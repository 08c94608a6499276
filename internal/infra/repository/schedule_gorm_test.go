package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Abre o dialector do Postgres sem conexão (dry-run) e captura o SQL
// gerado por cada consulta, para validar a forma das queries críticas.
func dryRunRepo(t *testing.T) (*ScheduleGormRepository, *[]string) {
	t.Helper()

	db, err := gorm.Open(
		postgres.Open("host=localhost user=agenda dbname=agenda"),
		&gorm.Config{DisableAutomaticPing: true},
	)
	require.NoError(t, err)

	var queries []string
	err = db.Callback().Query().After("gorm:query").Register("capture_sql", func(tx *gorm.DB) {
		queries = append(queries, tx.Statement.SQL.String())
	})
	require.NoError(t, err)

	repo := NewScheduleGormRepository(db.Session(&gorm.Session{DryRun: true}))
	return repo, &queries
}

func TestAssertNoTimeConflictQueryShape(t *testing.T) {
	repo, queries := dryRunRepo(t)

	start := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	err := repo.AssertNoTimeConflict(context.Background(), 1, start, end)
	require.NoError(t, err)

	require.Len(t, *queries, 1)
	sql := (*queries)[0]

	// predicado semiaberto de sobreposição, ignorando cancelados
	assert.Contains(t, sql, "count(*)")
	assert.Contains(t, sql, "status <> 'canceled'")
	assert.Contains(t, sql, "start_time < ")
	assert.Contains(t, sql, "end_time > ")

	// Postgres rejeita FOR UPDATE junto de agregação (SQLSTATE 0A000);
	// a checagem é sem lock e a corrida é decidida pela exclusion
	// constraint no insert.
	assert.NotContains(t, sql, "FOR UPDATE")
}

func TestListAppointmentsForDayQueryShape(t *testing.T) {
	repo, queries := dryRunRepo(t)

	day := time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)

	_, err := repo.ListAppointmentsForDay(context.Background(), 1, day, day.AddDate(0, 0, 1))
	require.NoError(t, err)

	require.Len(t, *queries, 1)
	sql := (*queries)[0]

	assert.Contains(t, sql, "status <> 'canceled'")
	assert.Contains(t, sql, "ORDER BY start_time")
}
