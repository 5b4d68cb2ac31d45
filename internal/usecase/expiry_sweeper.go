package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/matchboard/internal/domain/match"
	"github.com/riskibarqy/matchboard/internal/platform/logging"
	"github.com/sourcegraph/conc/pool"
)

// ExpirySweeper removes finished matches together with their user links.
type ExpirySweeper struct {
	repo    match.Repository
	workers int
	logger  *logging.Logger
	now     func() time.Time
}

func NewExpirySweeper(repo match.Repository, workers int, logger *logging.Logger) *ExpirySweeper {
	if logger == nil {
		logger = logging.Default()
	}
	if workers <= 0 {
		workers = 4
	}
	return &ExpirySweeper{repo: repo, workers: workers, logger: logger, now: time.Now}
}

// Sweep deletes every match whose end time has passed and returns how many
// were removed. A failed deletion does not stop the others.
func (s *ExpirySweeper) Sweep(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ExpirySweeper.Sweep")
	defer span.End()

	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("list matches: %w", err)
	}

	now := s.now()
	var deleted atomic.Int32
	p := pool.New().WithContext(ctx).WithMaxGoroutines(s.workers)
	for _, item := range items {
		if !item.IsExpired(now) {
			continue
		}
		p.Go(func(ctx context.Context) error {
			if err := s.repo.DeleteWithLinks(ctx, item.ID); err != nil {
				return fmt.Errorf("delete expired match id=%s: %w", item.ID, err)
			}
			deleted.Add(1)
			return nil
		})
	}

	err = p.Wait()
	count := int(deleted.Load())
	if count > 0 {
		s.logger.InfoContext(ctx, "expired matches removed", "count", count)
	}
	return count, err
}
