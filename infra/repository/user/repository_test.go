package user

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fortizbank/fortiz/pkg/domain"
	"github.com/fortizbank/fortiz/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = mockDb.Close() })
	db, err := gorm.Open(postgres.New(postgres.Config{Conn: mockDb, DriverName: "postgres"}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectExec(`INSERT INTO "bank_users"`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), &dto.UserCreate{
		ID:           uuid.New(),
		Email:        "ada@example.com",
		FullName:     "Ada Lovelace",
		PasswordHash: "hash",
		Role:         "customer",
		KycStatus:    "unverified",
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)
	id := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "bank_users" WHERE email = \$1`).
		WithArgs("ada@example.com", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "role", "kyc_status", "created_at"}).
			AddRow(id, "ada@example.com", "admin", "verified", time.Now()))

	u, err := repo.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "admin", u.Role)
}

func TestRepository_UpdateRoleMissingUser(t *testing.T) {
	db, mock := newMockDB(t)
	repo := New(db)

	mock.ExpectExec(`UPDATE "bank_users" SET "role"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateRole(context.Background(), uuid.New(), "admin")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
