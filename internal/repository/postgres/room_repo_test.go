package postgres

import (
	"context"
	"database/sql"
	"testing"

	"communitycenter/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestRoomRepository_List(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mock    func(mock sqlmock.Sqlmock)
		want    int
		wantErr bool
	}{
		{
			name: "success",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, capacity FROM rooms`).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "capacity"}).
						AddRow(1, "Main Hall", 200).
						AddRow(2, "Banquet Room", 80))
			},
			want: 2,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, capacity FROM rooms`).
					WillReturnError(sql.ErrConnDone)
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
			repo := NewRoomRepository(db)
			rooms, err := repo.List(ctx)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Len(t, rooms, tt.want)
			require.Equal(t, "Main Hall", rooms[0].Name)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRoomRepository_GetByID(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      int
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Room
		wantErr error
	}{
		{
			name: "success",
			id:   2,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, capacity FROM rooms WHERE id = \$1`).
					WithArgs(2).
					WillReturnRows(sqlmock.NewRows([]string{"id", "name", "capacity"}).
						AddRow(2, "Banquet Room", 80))
			},
			want: &domain.Room{ID: 2, Name: "Banquet Room", Capacity: 80},
		},
		{
			name: "not found",
			id:   99,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, name, capacity FROM rooms WHERE id = \$1`).
					WithArgs(99).
					WillReturnError(sql.ErrNoRows)
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewRoomRepository(db)
			room, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, room)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
