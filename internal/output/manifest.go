package output

import (
	"encoding/json"
	"os"
	"time"

	"github.com/preston-bernstein/standings-overlay/internal/standings"
)

const manifestVersion = 1

// Manifest records the last run that produced artifacts and per-file metadata.
type Manifest struct {
	Version     int                     `json:"version"`
	GeneratedAt time.Time               `json:"generatedAt"`
	LastRun     RunMeta                 `json:"lastRun"`
	Artifacts   map[string]ArtifactMeta `json:"artifacts"`
}

// RunMeta describes the run behind the current artifacts.
type RunMeta struct {
	RunID     string             `json:"runId"`
	Source    string             `json:"source"`
	FetchedAt time.Time          `json:"fetchedAt"`
	Outcome   standings.Outcome  `json:"outcome"`
	Team      string             `json:"team"`
	Strategy  standings.Strategy `json:"strategy"`
}

// ArtifactMeta describes one file. UpdatedAt only moves when the content changed.
type ArtifactMeta struct {
	Size      int       `json:"size"`
	SHA256    string    `json:"sha256"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func defaultManifest() Manifest {
	return Manifest{
		Version:   manifestVersion,
		Artifacts: map[string]ArtifactMeta{},
	}
}

func readManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return defaultManifest(), err
	}
	defer f.Close()
	var m Manifest
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return defaultManifest(), err
	}
	if m.Artifacts == nil {
		m.Artifacts = map[string]ArtifactMeta{}
	}
	return m, nil
}

func writeManifest(path string, m Manifest, now time.Time) error {
	m.Version = manifestVersion
	m.GeneratedAt = now.UTC()
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(path, data)
}
