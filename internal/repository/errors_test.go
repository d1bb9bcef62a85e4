package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fadilmartias/studylink/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestDuplicateOr(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name    string
		err     error
		wantDup bool
	}{
		{name: "nil", err: nil},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"}, wantDup: true},
		{name: "wrapped unique violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), wantDup: true},
		{name: "translated by gorm", err: gorm.ErrDuplicatedKey, wantDup: true},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}},
		{name: "other", err: boom},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := duplicateOr(tt.err)
			if tt.wantDup {
				assert.ErrorIs(t, got, ErrDuplicate)
				return
			}
			assert.Equal(t, tt.err, got)
		})
	}
}

func TestUserRepository_CreateUser_Duplicate(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectQuery(`INSERT INTO "users" .* RETURNING "id"`).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "idx_users_email"})

	err := NewUserRepository(db).CreateUser(&model.User{Email: "alice@example.com", Nickname: "alice"})
	assert.ErrorIs(t, err, ErrDuplicate)
	assert.Contains(t, err.Error(), "idx_users_email")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInterestRepository_CreateInterest(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantDup bool
	}{
		{name: "inserted"},
		{name: "duplicate", dbErr: &pgconn.PgError{Code: "23505", ConstraintName: "idx_interest_user_group"}, wantDup: true},
		{name: "other failure", dbErr: errors.New("connection refused")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			q := mock.ExpectQuery(`INSERT INTO "interests" .* RETURNING "id"`)
			if tt.dbErr != nil {
				q.WillReturnError(tt.dbErr)
			} else {
				q.WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))
			}

			err := NewInterestRepository(db).CreateInterest(&model.Interest{UserID: uuid.New(), StudyGroupID: uuid.New()})
			switch {
			case tt.dbErr == nil:
				assert.NoError(t, err)
			case tt.wantDup:
				assert.ErrorIs(t, err, ErrDuplicate)
			default:
				assert.Equal(t, tt.dbErr, err)
				assert.NotErrorIs(t, err, ErrDuplicate)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
