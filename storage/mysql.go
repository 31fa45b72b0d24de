package storage

import (
	"context"
	"database/sql"
	"fmt"

	converter "github.com/smartconv/converter"
)

type mysqlStorage struct {
	ctx       context.Context
	db        *sql.DB
	tableName string
}

func NewMySQLStorage(config MySQLConfig) (converter.Storage, error) {
	db, err := sql.Open("mysql", config.ConnectionString)

	if err != nil {
		return nil, err
	}

	ctx := config.Ctx

	if ctx == nil {
		ctx = context.Background()
	}

	tableName := config.TableName

	if tableName == "" {
		tableName = DefaultTableName
	}

	storage := mysqlStorage{
		ctx:       ctx,
		db:        db,
		tableName: tableName,
	}

	if config.Migrate {
		if err := storage.Migrate(); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return storage, nil
}

// NewMySQLStorageWithDB wraps an already opened connection, used by
// tests and callers that manage the pool themselves.
func NewMySQLStorageWithDB(ctx context.Context, db *sql.DB, tableName string) converter.Storage {
	if tableName == "" {
		tableName = DefaultTableName
	}

	return mysqlStorage{
		ctx:       ctx,
		db:        db,
		tableName: tableName,
	}
}

// Store is a single INSERT with four bound parameters, no transaction.
func (m mysqlStorage) Store(record converter.Record) (converter.RecordWithID, error) {
	result, err := m.db.ExecContext(
		m.ctx,
		fmt.Sprintf("INSERT INTO %s(amount, source, target, result) VALUES(?,?,?,?);", m.tableName),
		record.Amount,
		record.From,
		record.To,
		record.Result,
	)

	if err != nil {
		return converter.RecordWithID{}, err
	}

	id, err := result.LastInsertId()

	if err != nil {
		return converter.RecordWithID{}, err
	}

	return converter.RecordWithID{
		Record: record,
		ID:     id,
	}, nil
}

func (m mysqlStorage) Migrate() error {
	query := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s(
		id BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		amount DOUBLE NOT NULL,
		source VARCHAR(3) NOT NULL,
		target VARCHAR(3) NOT NULL,
		result DOUBLE NOT NULL
	);`, m.tableName)

	_, err := m.db.ExecContext(m.ctx, query)

	return err
}

func (m mysqlStorage) Drop() error {
	_, err := m.db.ExecContext(m.ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s;", m.tableName))

	return err
}

func (m mysqlStorage) Close() error {
	return m.db.Close()
}

func (m mysqlStorage) GetStorageProviderName() string {
	return string(MySQL)
}
