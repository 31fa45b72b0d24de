package converter

type Storage interface {
	Store(Record) (RecordWithID, error)
	Migrate() error
	Drop() error
	Close() error
	GetStorageProviderName() string
}
