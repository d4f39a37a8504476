package postgres

import (
	"context"
	"testing"
	"time"

	"shield-srv/internal/ledger/repository"
	"shield-srv/internal/model"
	pkgLog "shield-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testCompanyID = "7a9b2c64-1f7d-4f2a-9a6e-0c4d3b2a1f00"
	testRunID     = "11111111-2222-3333-4444-555555555555"
)

var cronRunCols = []string{"id", "company_id", "run_date", "source", "ok", "posted", "spend", "cap", "error_detail", "created_at", "updated_at"}

func newTestRepository(t *testing.T) (*implRepository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	l := pkgLog.Init(pkgLog.ZapConfig{Level: "fatal", Mode: pkgLog.ModeDevelopment, Encoding: pkgLog.EncodingConsole})
	repo := New(l, db)
	repo.clock = func() time.Time { return time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC) }
	return repo, mock
}

func TestFind(t *testing.T) {
	repo, mock := newTestRepository(t)
	runDate := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM cron_runs WHERE company_id = \$1 AND run_date = \$2 AND source = \$3`).
		WithArgs(testCompanyID, runDate, model.SourceSpend).
		WillReturnRows(sqlmock.NewRows(cronRunCols).
			AddRow(testRunID, testCompanyID, runDate, model.SourceSpend, true, true, 120.5, 200.0, nil, runDate, runDate))

	run, err := repo.Find(context.Background(), testCompanyID, runDate, model.SourceSpend)
	require.NoError(t, err)
	assert.True(t, run.Posted)
	assert.True(t, run.OK)
	assert.Equal(t, 120.5, run.Spend)
	assert.Equal(t, 200.0, run.Cap)
	assert.Empty(t, run.ErrorDetail)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFind_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)
	runDate := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM cron_runs`).
		WithArgs(testCompanyID, runDate, model.SourceDigest).
		WillReturnRows(sqlmock.NewRows(cronRunCols))

	_, err := repo.Find(context.Background(), testCompanyID, runDate, model.SourceDigest)
	assert.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFind_InvalidCompanyID(t *testing.T) {
	repo, _ := newTestRepository(t)

	_, err := repo.Find(context.Background(), "not-a-uuid", time.Now(), model.SourceDigest)
	require.Error(t, err)
}

func TestUpsertPending(t *testing.T) {
	repo, mock := newTestRepository(t)
	runDate := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`(?s)INSERT INTO cron_runs.+ON CONFLICT \(company_id, run_date, source\)`).
		WithArgs(sqlmock.AnyArg(), testCompanyID, runDate, model.SourceSpend, 42.5, 100.0, now).
		WillReturnRows(sqlmock.NewRows(cronRunCols).
			AddRow(testRunID, testCompanyID, runDate, model.SourceSpend, true, false, 42.5, 100.0, nil, now, now))

	run, err := repo.UpsertPending(context.Background(), repository.UpsertPendingOptions{
		CompanyID: testCompanyID,
		RunDate:   runDate,
		Source:    model.SourceSpend,
		Spend:     42.5,
		Cap:       100.0,
	})
	require.NoError(t, err)
	assert.True(t, run.OK)
	assert.False(t, run.Posted)
	assert.Equal(t, 42.5, run.Spend)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkOutcome(t *testing.T) {
	repo, mock := newTestRepository(t)
	runDate := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE cron_runs SET posted = \$1, ok = \$2, error_detail = \$3`).
		WithArgs(true, true, sqlmock.AnyArg(), sqlmock.AnyArg(), testCompanyID, runDate, model.SourceSpend).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.MarkOutcome(context.Background(), repository.MarkOutcomeOptions{
		CompanyID: testCompanyID,
		RunDate:   runDate,
		Source:    model.SourceSpend,
		Posted:    true,
		OK:        true,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkOutcome_NotFound(t *testing.T) {
	repo, mock := newTestRepository(t)
	runDate := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(`UPDATE cron_runs SET`).
		WithArgs(false, false, sqlmock.AnyArg(), sqlmock.AnyArg(), testCompanyID, runDate, model.SourceAlerts).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkOutcome(context.Background(), repository.MarkOutcomeOptions{
		CompanyID:   testCompanyID,
		RunDate:     runDate,
		Source:      model.SourceAlerts,
		Posted:      false,
		OK:          false,
		ErrorDetail: "slack 404: no_team",
	})
	assert.ErrorIs(t, err, repository.ErrNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListWindow(t *testing.T) {
	repo, mock := newTestRepository(t)
	from := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT (.+) FROM cron_runs\s+WHERE company_id = \$1 AND run_date >= \$2 AND run_date <= \$3 AND source IN \(\$4\)`).
		WithArgs(testCompanyID, from, to, model.SourceSpend).
		WillReturnRows(sqlmock.NewRows(cronRunCols).
			AddRow(testRunID, testCompanyID, from, model.SourceSpend, true, true, 10.0, 100.0, nil, from, from).
			AddRow("22222222-3333-4444-5555-666666666666", testCompanyID, to, model.SourceSpend, false, false, 95.0, 100.0, "slack 500: oops", to, to))

	runs, err := repo.ListWindow(context.Background(), repository.WindowOptions{
		CompanyID: testCompanyID,
		Sources:   []string{model.SourceSpend},
		From:      from,
		To:        to,
	})
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].Posted)
	assert.Equal(t, "slack 500: oops", runs[1].ErrorDetail)
	require.NoError(t, mock.ExpectationsWereMet())
}
