package filestore

import (
	"bytes"
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/matchboard/internal/domain/scrape"
	"github.com/valyala/bytebufferpool"
)

const (
	ConfigFile          = "scraping-config.json"
	StatusFile          = "scraping-status.json"
	MatchesFile         = "scraping-matches.json"
	LeagueCountriesFile = "thesportsdb-league-countries.json"
)

// ErrMalformedDocument marks a state document that exists but cannot be decoded.
var ErrMalformedDocument = crerr.New("malformed scrape state document")

// Store keeps the scrape state documents as JSON files in one directory.
// Every write replaces the whole file through a rename.
type Store struct {
	dir      string
	validate *validator.Validate
	mu       sync.Mutex
}

func New(dir string) (*Store, error) {
	if dir == "" {
		return nil, crerr.New("scrape state dir is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, crerr.Wrapf(err, "create scrape state dir %q", dir)
	}

	return &Store{dir: dir, validate: validator.New()}, nil
}

// Dir returns the directory holding the documents.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) ReadRunConfig(ctx context.Context) (scrape.RunConfig, error) {
	var cfg scrape.RunConfig
	found, err := s.read(ConfigFile, &cfg)
	if err != nil || !found {
		return scrape.RunConfig{}, err
	}
	if err := s.validate.StructCtx(ctx, cfg); err != nil {
		return scrape.RunConfig{}, crerr.Mark(crerr.Wrapf(err, "validate %s", ConfigFile), ErrMalformedDocument)
	}

	return cfg, nil
}

func (s *Store) WriteRunConfig(_ context.Context, cfg scrape.RunConfig) error {
	return s.write(ConfigFile, cfg)
}

func (s *Store) ReadRunStatus(_ context.Context) (scrape.RunStatus, error) {
	var status scrape.RunStatus
	found, err := s.read(StatusFile, &status)
	if err != nil {
		return scrape.RunStatus{}, err
	}
	if !found || status.Status == "" {
		status.Status = scrape.StatusIdle
	}

	return status, nil
}

func (s *Store) WriteRunStatus(_ context.Context, status scrape.RunStatus) error {
	return s.write(StatusFile, status)
}

func (s *Store) ReadStagedMatches(ctx context.Context) ([]scrape.StagedMatch, error) {
	var items []scrape.StagedMatch
	if _, err := s.read(MatchesFile, &items); err != nil {
		return nil, err
	}
	for i := range items {
		if err := s.validate.StructCtx(ctx, items[i]); err != nil {
			return nil, crerr.Mark(crerr.Wrapf(err, "validate %s item %d", MatchesFile, i), ErrMalformedDocument)
		}
	}
	if items == nil {
		items = []scrape.StagedMatch{}
	}

	return items, nil
}

// WriteStagedMatches refuses a stage it could not read back.
func (s *Store) WriteStagedMatches(ctx context.Context, items []scrape.StagedMatch) error {
	if items == nil {
		items = []scrape.StagedMatch{}
	}
	for i := range items {
		if err := s.validate.StructCtx(ctx, items[i]); err != nil {
			return crerr.Mark(crerr.Wrapf(err, "validate %s item %d", MatchesFile, i), ErrMalformedDocument)
		}
	}
	return s.write(MatchesFile, items)
}

func (s *Store) ReadLeagueCountries(_ context.Context) (scrape.LeagueCountries, error) {
	countries := scrape.LeagueCountries{}
	if _, err := s.read(LeagueCountriesFile, &countries); err != nil {
		return nil, err
	}
	if countries == nil {
		countries = scrape.LeagueCountries{}
	}

	return countries, nil
}

func (s *Store) WriteLeagueCountries(_ context.Context, countries scrape.LeagueCountries) error {
	if countries == nil {
		countries = scrape.LeagueCountries{}
	}
	return s.write(LeagueCountriesFile, countries)
}

func (s *Store) read(name string, dest any) (bool, error) {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if crerr.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, crerr.Wrapf(err, "read %s", name)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return false, nil
	}
	if err := sonic.Unmarshal(raw, dest); err != nil {
		return false, crerr.Mark(crerr.Wrapf(err, "decode %s", name), ErrMalformedDocument)
	}

	return true, nil
}

func (s *Store) write(name string, value any) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	enc := sonic.ConfigStd.NewEncoder(buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(value); err != nil {
		return crerr.Wrapf(err, "encode %s", name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return crerr.Wrapf(err, "create temp file for %s", name)
	}
	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(buf.B); err != nil {
		_ = tmp.Close()
		return crerr.Wrapf(err, "write %s", name)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return crerr.Wrapf(err, "sync %s", name)
	}
	if err := tmp.Close(); err != nil {
		return crerr.Wrapf(err, "close %s", name)
	}
	if err := os.Rename(tmpPath, filepath.Join(s.dir, name)); err != nil {
		return crerr.Wrapf(err, "replace %s", name)
	}

	return nil
}
