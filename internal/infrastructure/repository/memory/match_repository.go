package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/riskibarqy/matchboard/internal/domain/match"
)

// Link is the minimal user-link record the match repository cleans up.
type Link struct {
	ID      string
	MatchID string
}

type MatchRepository struct {
	mu      sync.RWMutex
	matches map[string]match.Match
	links   map[string]Link

	// FailInsertAt makes InsertMany fail on the item with that index (1-based).
	FailInsertAt int
}

func NewMatchRepository(matches []match.Match, links []Link) *MatchRepository {
	repo := &MatchRepository{
		matches: make(map[string]match.Match, len(matches)),
		links:   make(map[string]Link, len(links)),
	}
	for _, item := range matches {
		repo.matches[item.ID] = item
	}
	for _, link := range links {
		repo.links[link.ID] = link
	}

	return repo
}

func (r *MatchRepository) ListAll(_ context.Context) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, item := range r.matches {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Timestamp == out[j].Timestamp {
			return out[i].ID < out[j].ID
		}
		return out[i].Timestamp < out[j].Timestamp
	})
	return out, nil
}

func (r *MatchRepository) InsertMany(_ context.Context, items []match.Match) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	staged := make(map[string]match.Match, len(items))
	for idx, item := range items {
		if r.FailInsertAt > 0 && idx+1 == r.FailInsertAt {
			return fmt.Errorf("insert match id=%s: forced failure", item.ID)
		}
		if _, exists := r.matches[item.ID]; exists {
			return fmt.Errorf("insert match id=%s: duplicate key", item.ID)
		}
		if _, exists := staged[item.ID]; exists {
			return fmt.Errorf("insert match id=%s: duplicate key", item.ID)
		}
		staged[item.ID] = item
	}
	for id, item := range staged {
		r.matches[id] = item
	}

	return nil
}

func (r *MatchRepository) DeleteWithLinks(ctx context.Context, matchID string) error {
	return r.DeleteManyWithLinks(ctx, []string{matchID})
}

func (r *MatchRepository) DeleteManyWithLinks(_ context.Context, matchIDs []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	targets := make(map[string]struct{}, len(matchIDs))
	for _, id := range matchIDs {
		targets[id] = struct{}{}
	}
	for id, link := range r.links {
		if _, ok := targets[link.MatchID]; ok {
			delete(r.links, id)
		}
	}
	for id := range targets {
		delete(r.matches, id)
	}

	return nil
}

// LinksFor returns the link ids still pointing at matchID.
func (r *MatchRepository) LinksFor(matchID string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for id, link := range r.links {
		if link.MatchID == matchID {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
