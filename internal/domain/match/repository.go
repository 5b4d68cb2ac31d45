package match

import "context"

// Repository persists schedule rows and their user links.
type Repository interface {
	ListAll(ctx context.Context) ([]Match, error)
	// InsertMany inserts every item or none of them.
	InsertMany(ctx context.Context, items []Match) error
	// DeleteWithLinks removes the match and every user link that points at it in one transaction.
	DeleteWithLinks(ctx context.Context, matchID string) error
	// DeleteManyWithLinks removes several matches and their links in one transaction.
	DeleteManyWithLinks(ctx context.Context, matchIDs []string) error
}
