package menu

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RunRefreshWorker reloads the menu every interval until the context
// is cancelled. Each tick is an ordinary Reload: a failed fetch keeps
// the previous menu on screen, so the board degrades to stale rather
// than blank when the sheet is unreachable.
func (s *Service) RunRefreshWorker(ctx context.Context, interval time.Duration) {
	s.log.Info("menu refresh worker started", zap.Duration("interval", interval))

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.log.Info("menu refresh worker stopped")
			return
		case <-ticker.C:
			_, _ = s.Reload(ctx) // failure already logged inside Reload
		}
	}
}
