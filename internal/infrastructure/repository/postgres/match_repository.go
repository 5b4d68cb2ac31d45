package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/matchboard/internal/domain/match"
	qb "github.com/riskibarqy/matchboard/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) ListAll(ctx context.Context) ([]match.Match, error) {
	query, args, err := qb.Select(matchColumns...).From("matches").
		OrderBy("timestamp", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Match{
			ID:            row.ID,
			Slug:          row.Slug,
			League:        row.League,
			LeagueSlug:    row.LeagueSlug,
			LeagueImage:   row.LeagueImage,
			LeagueCountry: row.LeagueCountry.String,
			LeagueID:      row.LeagueID,
			Sport:         row.Sport,
			SportSlug:     row.SportSlug,
			Team1:         row.Team1,
			Team1Image:    row.Team1Image,
			Team2:         row.Team2,
			Team2Image:    row.Team2Image,
			Venue:         row.Venue,
			Timestamp:     row.Timestamp,
			Duration:      row.Duration,
			ExternalID:    row.ExternalID.String,
		})
	}

	return out, nil
}

func (r *MatchRepository) InsertMany(ctx context.Context, items []match.Match) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx insert matches: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, item := range items {
		insertModel := matchInsertModel{
			ID:            item.ID,
			Slug:          item.Slug,
			League:        item.League,
			LeagueSlug:    item.LeagueSlug,
			LeagueImage:   item.LeagueImage,
			LeagueCountry: nullableString(item.LeagueCountry),
			LeagueID:      item.LeagueID,
			Sport:         item.Sport,
			SportSlug:     item.SportSlug,
			Team1:         item.Team1,
			Team1Image:    item.Team1Image,
			Team2:         item.Team2,
			Team2Image:    item.Team2Image,
			Venue:         item.Venue,
			Timestamp:     item.Timestamp,
			Duration:      item.Duration,
			ExternalID:    nullableString(item.ExternalID),
		}

		query, args, err := qb.InsertModel("matches", insertModel, "")
		if err != nil {
			return fmt.Errorf("build insert match query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert match id=%s: %w", item.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert matches tx: %w", err)
	}

	return nil
}

func (r *MatchRepository) DeleteWithLinks(ctx context.Context, matchID string) error {
	return r.DeleteManyWithLinks(ctx, []string{matchID})
}

func (r *MatchRepository) DeleteManyWithLinks(ctx context.Context, matchIDs []string) error {
	if len(matchIDs) == 0 {
		return nil
	}

	ids := make([]any, 0, len(matchIDs))
	for _, id := range matchIDs {
		ids = append(ids, id)
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx delete matches: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	linksQuery, linksArgs, err := qb.DeleteFrom("user_links").
		Where(qb.In("match_id", ids)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete user links query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, linksQuery, linksArgs...); err != nil {
		return fmt.Errorf("delete user links: %w", err)
	}

	matchesQuery, matchesArgs, err := qb.DeleteFrom("matches").
		Where(qb.In("id", ids)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete matches query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, matchesQuery, matchesArgs...); err != nil {
		return fmt.Errorf("delete matches: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit delete matches tx: %w", err)
	}

	return nil
}
