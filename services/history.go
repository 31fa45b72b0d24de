package services

import (
	"log/slog"
	"sync"

	converter "github.com/smartconv/converter"
)

const DefaultHistoryBuffer = 64

// HistoryService persists conversion records and logs them in the
// background. Record never blocks and never reports failure to the
// caller, a conversion that was already shown to the user stands
// whether or not its record made it to storage.
type HistoryService struct {
	storages []converter.Storage
	logger   *slog.Logger

	records   chan converter.Record
	done      chan struct{}
	closeOnce sync.Once

	mu     sync.RWMutex
	closed bool
}

func NewHistoryService(storages []converter.Storage, logger *slog.Logger, buffer int) *HistoryService {
	if buffer <= 0 {
		buffer = DefaultHistoryBuffer
	}

	if logger == nil {
		logger = slog.Default()
	}

	h := &HistoryService{
		storages: storages,
		logger:   logger,
		records:  make(chan converter.Record, buffer),
		done:     make(chan struct{}),
	}

	go h.run()

	return h
}

func (h *HistoryService) Record(record converter.Record) {
	// The read lock keeps Close from closing the channel mid-send.
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		h.logger.Warn("history already closed, dropping record",
			"from", record.From, "to", record.To)
		return
	}

	select {
	case h.records <- record:
	default:
		h.logger.Warn("history buffer full, dropping record",
			"from", record.From, "to", record.To)
	}
}

// Close drains pending records and stops the background consumer.
func (h *HistoryService) Close() {
	h.closeOnce.Do(func() {
		h.mu.Lock()
		h.closed = true
		h.mu.Unlock()

		close(h.records)
		<-h.done
	})
}

func (h *HistoryService) run() {
	defer close(h.done)

	for record := range h.records {
		h.persist(record)

		h.logger.Info("conversion recorded",
			"amount", record.Amount,
			"from", record.From,
			"result", record.Result,
			"to", record.To,
		)
	}
}

func (h *HistoryService) persist(record converter.Record) {
	var wg sync.WaitGroup

	wg.Add(len(h.storages))

	for _, storage := range h.storages {
		go func(storage converter.Storage) {
			defer wg.Done()

			saved, err := storage.Store(record)

			if err != nil {
				h.logger.Error("failed to save conversion record",
					"storage", storage.GetStorageProviderName(),
					"error", err,
				)
				return
			}

			h.logger.Debug("conversion record saved",
				"storage", storage.GetStorageProviderName(),
				"id", saved.ID,
			)
		}(storage)
	}

	wg.Wait()
}
