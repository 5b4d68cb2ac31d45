package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/riskibarqy/matchboard/external/thesportsdb"
	"github.com/riskibarqy/matchboard/internal/usecase"
)

var _ usecase.ScheduleProvider = (*thesportsdb.Client)(nil)

func TestResolveWorkerBinary(t *testing.T) {
	t.Run("configured path wins", func(t *testing.T) {
		got, err := resolveWorkerBinary(" /opt/matchboard/scraper ")
		if err != nil {
			t.Fatalf("resolve worker binary: %v", err)
		}
		if got != "/opt/matchboard/scraper" {
			t.Fatalf("unexpected binary: %q", got)
		}
	})

	t.Run("defaults next to executable", func(t *testing.T) {
		self, err := os.Executable()
		if err != nil {
			t.Skipf("executable path unavailable: %v", err)
		}

		got, err := resolveWorkerBinary("")
		if err != nil {
			t.Fatalf("resolve worker binary: %v", err)
		}
		want := filepath.Join(filepath.Dir(self), defaultWorkerBinaryName)
		if got != want {
			t.Fatalf("unexpected binary: got=%q want=%q", got, want)
		}
	})
}
