package output

import "path/filepath"

// Artifact file names inside the output directory.
const (
	CSVFile      = "classificacio.csv"
	TopFile      = "classificacio_top3.txt"
	TeamFile     = "classificacio_team.txt"
	OverlayFile  = "classificacio.html"
	XLSXFile     = "classificacio.xlsx"
	SnapshotFile = "standings.json"
	ManifestFile = "manifest.json"
)

// ArtifactPath builds the path to an artifact under dir.
func ArtifactPath(dir, name string) string {
	return filepath.Join(dir, name)
}

// Published lists the artifacts that may be served over HTTP.
var Published = []string{CSVFile, TopFile, TeamFile, OverlayFile, XLSXFile, SnapshotFile, ManifestFile}

// IsPublished reports whether name is one of the served artifacts.
func IsPublished(name string) bool {
	for _, p := range Published {
		if p == name {
			return true
		}
	}
	return false
}
