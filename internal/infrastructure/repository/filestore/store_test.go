package filestore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/matchboard/internal/domain/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MissingDocumentsReadAsZeroValues(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := New(t.TempDir())
	require.NoError(t, err)

	cfg, err := store.ReadRunConfig(ctx)
	require.NoError(t, err)
	assert.Empty(t, cfg.Sports)
	assert.Empty(t, cfg.Dates)

	status, err := store.ReadRunStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, scrape.StatusIdle, status.Status)
	assert.Nil(t, status.WorkerPID)

	items, err := store.ReadStagedMatches(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)

	countries, err := store.ReadLeagueCountries(ctx)
	require.NoError(t, err)
	assert.NotNil(t, countries)
	assert.Empty(t, countries)
}

func TestStore_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := New(t.TempDir())
	require.NoError(t, err)

	cfg := scrape.RunConfig{Sports: []string{"Soccer"}, Dates: []string{"2024-05-01", "2024-05-02"}}
	require.NoError(t, store.WriteRunConfig(ctx, cfg))
	gotCfg, err := store.ReadRunConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, cfg, gotCfg)

	pid := 4242
	startedAt := int64(1714564800000)
	status := scrape.RunStatus{Status: scrape.StatusRunning, WorkerPID: &pid, LastRunStartedAt: &startedAt}
	require.NoError(t, store.WriteRunStatus(ctx, status))
	gotStatus, err := store.ReadRunStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, status, gotStatus)

	country := "England"
	lt := int64(1714590000000)
	items := []scrape.StagedMatch{{
		ID:            "m1",
		League:        "English Premier League",
		LeagueCountry: &country,
		LeagueID:      "4328",
		Team1:         "Arsenal",
		Team2:         "Chelsea",
		Timestamp:     1714593600000,
		LTTimestamp:   &lt,
		DateStr:       "2024-05-01",
		TimeStr:       "19:00:00",
		Duration:      120,
		ExternalID:    "e1",
	}}
	require.NoError(t, store.WriteStagedMatches(ctx, items))
	gotItems, err := store.ReadStagedMatches(ctx)
	require.NoError(t, err)
	assert.Equal(t, items, gotItems)

	countries := scrape.LeagueCountries{"4328": "England"}
	require.NoError(t, store.WriteLeagueCountries(ctx, countries))
	gotCountries, err := store.ReadLeagueCountries(ctx)
	require.NoError(t, err)
	assert.Equal(t, countries, gotCountries)
}

func TestStore_WriteStagedMatchesEmptiesStage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, store.WriteStagedMatches(ctx, []scrape.StagedMatch{{ID: "m1", Team1: "Arsenal"}}))
	require.NoError(t, store.WriteStagedMatches(ctx, nil))

	raw, err := os.ReadFile(filepath.Join(dir, MatchesFile))
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestStore_WriteStagedMatchesRejectsUnreadableStage(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := New(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.WriteStagedMatches(ctx, []scrape.StagedMatch{{ID: "m1", Team1: "Arsenal"}}))

	err = store.WriteStagedMatches(ctx, []scrape.StagedMatch{{ID: "m2", Team2: "Only Away"}})
	require.Error(t, err)
	assert.True(t, crerr.Is(err, ErrMalformedDocument))

	staged, err := store.ReadStagedMatches(ctx)
	require.NoError(t, err)
	require.Len(t, staged, 1)
	assert.Equal(t, "m1", staged[0].ID)
}

func TestStore_MalformedDocuments(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, StatusFile), []byte("{not json"), 0o644))
	_, err = store.ReadRunStatus(ctx)
	require.Error(t, err)
	assert.True(t, crerr.Is(err, ErrMalformedDocument))

	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFile), []byte(`{"sports":["Soccer"],"dates":["01/05/2024"]}`), 0o644))
	_, err = store.ReadRunConfig(ctx)
	require.Error(t, err)
	assert.True(t, crerr.Is(err, ErrMalformedDocument))

	require.NoError(t, os.WriteFile(filepath.Join(dir, MatchesFile), []byte(`[{"id":"","team1":"Arsenal"}]`), 0o644))
	_, err = store.ReadStagedMatches(ctx)
	require.Error(t, err)
	assert.True(t, crerr.Is(err, ErrMalformedDocument))
}

func TestStore_EmptyFileReadsAsMissing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := New(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, LeagueCountriesFile), []byte("\n"), 0o644))

	countries, err := store.ReadLeagueCountries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, countries)
}
