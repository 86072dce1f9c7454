package menu

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/giandomeniconigro90-pixel/menu-lucciola/internal/sheet"
)

// Source fetches the raw rows of the published sheet.
type Source interface {
	Fetch(ctx context.Context) ([]sheet.Row, error)
}

// Service owns the menu for the lifetime of the process. The current
// snapshot sits behind an atomic pointer: Reload builds a complete new
// snapshot off to the side and publishes it in one swap, so readers
// never observe a partially built model. A failed reload publishes
// nothing and the previous snapshot stays live.
type Service struct {
	source  Source
	log     *zap.Logger
	current atomic.Pointer[Snapshot]
}

func NewService(source Source, log *zap.Logger) *Service {
	return &Service{source: source, log: log}
}

// Snapshot returns the last published snapshot, or nil before the
// first successful ingest.
func (s *Service) Snapshot() *Snapshot {
	return s.current.Load()
}

// Reload fetches the sheet and replaces the menu wholesale. Overlapping
// reloads are not coordinated: each builds its own snapshot and the
// last one to complete wins the swap.
func (s *Service) Reload(ctx context.Context) (*Snapshot, error) {
	ingestID := uuid.New().String()
	start := time.Now()

	rows, err := s.source.Fetch(ctx)
	if err != nil {
		s.log.Warn("menu reload failed, keeping previous menu",
			zap.String("ingest_id", ingestID),
			zap.Error(err),
		)
		return nil, err
	}

	model, banner := Build(rows)

	snap := &Snapshot{
		Model:     model,
		Banner:    banner,
		IngestID:  ingestID,
		FetchedAt: start,
		RowCount:  len(rows),
	}
	s.current.Store(snap)

	s.log.Info("menu reloaded",
		zap.String("ingest_id", ingestID),
		zap.Int("rows", len(rows)),
		zap.Int("items", model.ItemCount()),
		zap.Int("categories", len(model.keys)),
		zap.Bool("banner", banner.Visible),
		zap.Duration("elapsed", time.Since(start)),
	)
	return snap, nil
}
