package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"mergingtonactivities/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestMigrate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS activities`).WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Migrate(context.Background(), db))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSeed(t *testing.T) {
	ctx := context.Background()
	chess := domain.NewActivity("Chess Club", "Strategy", "Fridays", 12)
	chess.Participants = []string{"michael@mergington.edu"}
	tennis := domain.NewActivity("Tennis Club", "Racquets", "Mondays", 10)
	tennis.Participants = []string{"lucas@mergington.edu"}

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		wantErr bool
	}{
		{
			name: "inserts new activities and skips existing ones",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO activities \(name, description, schedule, max_participants\)`).
					WithArgs("Chess Club", "Strategy", "Fridays", 12).
					WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Chess Club"))
				mock.ExpectExec(`INSERT INTO activity_participants`).
					WithArgs("Chess Club", "michael@mergington.edu").
					WillReturnResult(sqlmock.NewResult(1, 1))
				mock.ExpectQuery(`INSERT INTO activities`).
					WithArgs("Tennis Club", "Racquets", "Mondays", 10).
					WillReturnRows(sqlmock.NewRows([]string{"name"}))
				mock.ExpectCommit()
			},
		},
		{
			name: "insert error rolls back",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectQuery(`INSERT INTO activities`).WillReturnError(sql.ErrConnDone)
				mock.ExpectRollback()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			err = Seed(ctx, db, []*domain.Activity{chess, tennis})
			if tt.wantErr {
				require.ErrorIs(t, err, sql.ErrConnDone)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
