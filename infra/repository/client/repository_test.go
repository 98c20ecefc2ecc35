package client_test

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	clientinfra "github.com/jamadeu/multicontas/infra/repository/client"
	"github.com/jamadeu/multicontas/pkg/domain"
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

	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	require.NoError(t, err)
	return db, mock
}

func newStoredClient(t *testing.T) *domain.Client {
	t.Helper()
	c, err := domain.NewClient("Jane Doe", "11144477735")
	require.NoError(t, err)
	return c
}

func TestClientRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := clientinfra.New(db)
	c := newStoredClient(t)

	mock.ExpectExec(`INSERT INTO "clients"`).
		WithArgs(c.ID, c.Name, c.Cpf, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Create(context.Background(), c))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClientRepository_Create_DuplicateCpf(t *testing.T) {
	db, mock := newMockDB(t)
	repo := clientinfra.New(db)
	c := newStoredClient(t)

	mock.ExpectExec(`INSERT INTO "clients"`).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	err := repo.Create(context.Background(), c)
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestClientRepository_Get(t *testing.T) {
	db, mock := newMockDB(t)
	repo := clientinfra.New(db)
	id := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "name", "cpf", "created_at", "updated_at"}).
		AddRow(id, "Jane Doe", "11144477735", now, now)
	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE id = (.+) ORDER BY "clients"\."id" LIMIT (.+)`).
		WillReturnRows(rows)

	c, err := repo.Get(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, c.ID)
	assert.Equal(t, "Jane Doe", c.Name)
	assert.Equal(t, "11144477735", c.Cpf)
}

func TestClientRepository_Get_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := clientinfra.New(db)

	mock.ExpectQuery(`SELECT \* FROM "clients"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "cpf", "created_at", "updated_at"}))

	c, err := repo.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, c)
}

func TestClientRepository_GetByCpf(t *testing.T) {
	db, mock := newMockDB(t)
	repo := clientinfra.New(db)
	id := uuid.New()
	now := time.Now().UTC()

	rows := sqlmock.NewRows([]string{"id", "name", "cpf", "created_at", "updated_at"}).
		AddRow(id, "Jane Doe", "11144477735", now, now)
	mock.ExpectQuery(`SELECT \* FROM "clients" WHERE cpf = (.+)`).
		WithArgs("11144477735", 1).
		WillReturnRows(rows)

	c, err := repo.GetByCpf(context.Background(), "11144477735")
	require.NoError(t, err)
	assert.Equal(t, id, c.ID)
}

func TestClientRepository_ExistsByCpf(t *testing.T) {
	db, mock := newMockDB(t)
	repo := clientinfra.New(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "clients" WHERE cpf = (.+)`).
		WithArgs("11144477735").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.ExistsByCpf(context.Background(), "11144477735")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestClientRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := clientinfra.New(db)
	c := newStoredClient(t)

	mock.ExpectExec(`UPDATE "clients" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Update(context.Background(), c))
}

func TestClientRepository_Delete_AbsentRowIsNoOp(t *testing.T) {
	db, mock := newMockDB(t)
	repo := clientinfra.New(db)

	mock.ExpectExec(`DELETE FROM "clients"`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.Delete(context.Background(), uuid.New()))
}
