package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/preston-bernstein/standings-overlay/internal/domain"
	"github.com/preston-bernstein/standings-overlay/internal/standings"
)

var (
	// ErrNoSnapshot is returned when nothing has been written to the directory yet.
	ErrNoSnapshot = errors.New("no snapshot on disk")
	// ErrUnknownArtifact is returned for names outside Published.
	ErrUnknownArtifact = errors.New("unknown artifact")
	// ErrArtifactMissing is returned when a published artifact has not been written yet.
	ErrArtifactMissing = errors.New("artifact not written yet")
)

// FSStore loads artifacts written by a Writer.
type FSStore struct {
	dir string
}

// NewFSStore constructs a store rooted at dir.
func NewFSStore(dir string) *FSStore {
	return &FSStore{dir: dir}
}

// LoadSnapshot rebuilds the last snapshot from standings.json and the manifest.
func (s *FSStore) LoadSnapshot() (domain.Snapshot, error) {
	if s == nil {
		return domain.Snapshot{}, errors.New("snapshot store not configured")
	}
	var res standings.Result
	if err := decodeFile(ArtifactPath(s.dir, SnapshotFile), &res); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.Snapshot{}, ErrNoSnapshot
		}
		return domain.Snapshot{}, fmt.Errorf("load %s: %w", SnapshotFile, err)
	}

	snap := domain.Snapshot{Result: res}
	if m, err := s.LoadManifest(); err == nil {
		snap.RunID = m.LastRun.RunID
		snap.Source = m.LastRun.Source
		snap.FetchedAt = m.LastRun.FetchedAt
	}
	return snap, nil
}

// LoadManifest reads manifest.json.
func (s *FSStore) LoadManifest() (Manifest, error) {
	if s == nil {
		return Manifest{}, errors.New("snapshot store not configured")
	}
	return readManifest(ArtifactPath(s.dir, ManifestFile))
}

// OverlayPath returns where the HTML overlay lives.
func (s *FSStore) OverlayPath() string {
	return ArtifactPath(s.dir, OverlayFile)
}

// HasOverlay reports whether the overlay has been written.
func (s *FSStore) HasOverlay() bool {
	_, err := s.ArtifactFile(OverlayFile)
	return err == nil
}

// ArtifactFile resolves a published artifact to its path on disk.
func (s *FSStore) ArtifactFile(name string) (string, error) {
	if s == nil {
		return "", errors.New("snapshot store not configured")
	}
	if !IsPublished(name) {
		return "", fmt.Errorf("%w: %q", ErrUnknownArtifact, name)
	}
	path := ArtifactPath(s.dir, name)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrArtifactMissing, name)
	}
	return path, nil
}

func decodeFile(path string, payload any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(payload)
}
