package cache

import (
	"context"

	"github.com/riskibarqy/matchboard/internal/domain/match"
	basecache "github.com/riskibarqy/matchboard/internal/platform/cache"
)

const (
	matchListKey  = "match:list"
	sportsListKey = "sports:list"
)

// MatchRepository caches the full schedule and drops it on every write.
type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store[[]match.Match]
}

func NewMatchRepository(next match.Repository, cache *basecache.Store[[]match.Match]) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) ListAll(ctx context.Context) ([]match.Match, error) {
	items, err := r.cache.GetOrLoad(ctx, matchListKey, func(ctx context.Context) ([]match.Match, error) {
		items, err := r.next.ListAll(ctx)
		if err != nil {
			return nil, err
		}
		return append([]match.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	return append([]match.Match(nil), items...), nil
}

func (r *MatchRepository) InsertMany(ctx context.Context, items []match.Match) error {
	defer r.cache.Delete(ctx, matchListKey)
	return r.next.InsertMany(ctx, items)
}

func (r *MatchRepository) DeleteWithLinks(ctx context.Context, matchID string) error {
	defer r.cache.Delete(ctx, matchListKey)
	return r.next.DeleteWithLinks(ctx, matchID)
}

func (r *MatchRepository) DeleteManyWithLinks(ctx context.Context, matchIDs []string) error {
	defer r.cache.Delete(ctx, matchListKey)
	return r.next.DeleteManyWithLinks(ctx, matchIDs)
}

// SportsLister is the uncached provider sport list.
type SportsLister interface {
	ListSports(ctx context.Context) ([]string, error)
}

type SportsCatalog struct {
	next  SportsLister
	cache *basecache.Store[[]string]
}

func NewSportsCatalog(next SportsLister, cache *basecache.Store[[]string]) *SportsCatalog {
	return &SportsCatalog{next: next, cache: cache}
}

func (c *SportsCatalog) ListSports(ctx context.Context) ([]string, error) {
	items, err := c.cache.GetOrLoad(ctx, sportsListKey, c.next.ListSports)
	if err != nil {
		return nil, err
	}

	return append([]string(nil), items...), nil
}
