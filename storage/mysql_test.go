package storage_test

import (
	"context"
	"errors"
	"math/rand"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/bxcodec/faker/v3"
	"github.com/stretchr/testify/require"

	converter "github.com/smartconv/converter"
	"github.com/smartconv/converter/storage"
)

func fakeRecord() converter.Record {
	amount := rand.Float64() * 1000

	return converter.Record{
		Amount: amount,
		From:   faker.Currency(),
		To:     faker.Currency(),
		Result: amount * rand.Float64() * 100,
	}
}

func TestMySQLStorage_Store(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	db, mock, err := sqlmock.New()
	asserts.Nil(err)
	defer db.Close()

	record := fakeRecord()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO conversion_history(amount, source, target, result) VALUES(?,?,?,?);")).
		WithArgs(record.Amount, record.From, record.To, record.Result).
		WillReturnResult(sqlmock.NewResult(42, 1))

	st := storage.NewMySQLStorageWithDB(context.Background(), db, "")

	saved, err := st.Store(record)
	asserts.Nil(err)
	asserts.Equal(int64(42), saved.ID)
	asserts.Equal(record.Amount, saved.Amount)
	asserts.Equal(record.From, saved.From)
	asserts.Equal(record.To, saved.To)
	asserts.Equal(record.Result, saved.Result)

	asserts.Nil(mock.ExpectationsWereMet())
}

func TestMySQLStorage_StoreFailure(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	db, mock, err := sqlmock.New()
	asserts.Nil(err)
	defer db.Close()

	record := fakeRecord()

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO conversion_history")).
		WillReturnError(errors.New("connection lost"))

	st := storage.NewMySQLStorageWithDB(context.Background(), db, "")

	saved, err := st.Store(record)
	asserts.NotNil(err)
	asserts.Empty(saved.ID)
}

func TestMySQLStorage_Migrate(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	db, mock, err := sqlmock.New()
	asserts.Nil(err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS history_migrate_test").
		WillReturnResult(sqlmock.NewResult(0, 0))

	st := storage.NewMySQLStorageWithDB(context.Background(), db, "history_migrate_test")

	asserts.Nil(st.Migrate())
	asserts.Nil(mock.ExpectationsWereMet())
}

func TestMySQLStorage_Drop(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	db, mock, err := sqlmock.New()
	asserts.Nil(err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("DROP TABLE IF EXISTS conversion_history;")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	st := storage.NewMySQLStorageWithDB(context.Background(), db, "")

	asserts.Nil(st.Drop())
	asserts.Nil(mock.ExpectationsWereMet())
}

func TestMySQLStorage_ProviderName(t *testing.T) {
	t.Parallel()
	asserts := require.New(t)

	db, _, err := sqlmock.New()
	asserts.Nil(err)
	defer db.Close()

	st := storage.NewMySQLStorageWithDB(context.Background(), db, "")
	asserts.Equal("mysql", st.GetStorageProviderName())
}
