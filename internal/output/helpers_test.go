package output

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/preston-bernstein/standings-overlay/internal/domain"
	"github.com/preston-bernstein/standings-overlay/internal/standings"
)

const standingsPage = `<table>
<thead><tr><th>Pos</th><th>Equip</th><th>PJ</th><th>Punts</th></tr></thead>
<tbody>
<tr><td>1</td><td>CV Manresa</td><td>10</td><td>27</td></tr>
<tr><td>2</td><td>CV Sant Just</td><td>10</td><td>24</td></tr>
<tr><td>3</td><td>CV Sabadell</td><td>10</td><td>18</td></tr>
<tr><td>4</td><td>CV Rubí</td><td>10</td><td>9</td></tr>
</tbody>
</table>`

func runSnapshot(team, markup string) domain.Snapshot {
	res := standings.New(standings.Options{TeamName: team}).Run(markup)
	return domain.NewSnapshot("run-1", "fixture", time.Date(2024, 3, 2, 18, 0, 0, 0, time.UTC), res)
}

func readArtifact(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("expected artifact %s: %v", name, err)
	}
	return string(data)
}

func modTime(t *testing.T, path string) time.Time {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat %s: %v", path, err)
	}
	return info.ModTime()
}
