package server

import (
	"context"
	"strings"
	"testing"

	"github.com/preston-bernstein/standings-overlay/internal/config"
	"github.com/preston-bernstein/standings-overlay/internal/metrics"
	"github.com/preston-bernstein/standings-overlay/internal/source/fixture"
	"github.com/preston-bernstein/standings-overlay/internal/source/httpsource"
	"github.com/preston-bernstein/standings-overlay/internal/testutil"
)

func TestSelectSourceByKind(t *testing.T) {
	cases := []struct {
		kind string
		want string
	}{
		{kind: config.SourceHTTP, want: httpsource.Name},
		{kind: config.SourceFixture, want: fixture.Name},
		{kind: "", want: fixture.Name},
	}
	for _, tc := range cases {
		_, name := selectSource(config.SourceConfig{Kind: tc.kind, URL: "http://example.invalid"}, nil)
		if name != tc.want {
			t.Fatalf("kind %q: expected %s, got %s", tc.kind, tc.want, name)
		}
	}
}

func TestSelectSourceUnknownFallsBackWithWarning(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	_, name := selectSource(config.SourceConfig{Kind: "ftp"}, logger)
	if name != fixture.Name {
		t.Fatalf("expected fixture fallback, got %s", name)
	}
	if !strings.Contains(buf.String(), "unknown source") {
		t.Fatalf("expected warning, got %q", buf.String())
	}
}

func TestSourceFactoryBuildsWorkingFixtureChain(t *testing.T) {
	recorder := metrics.NewRecorder()
	src, name := newSourceFactory(nil, recorder).build(config.SourceConfig{Kind: config.SourceFixture, Retries: 1})
	if name != fixture.Name {
		t.Fatalf("expected fixture name, got %s", name)
	}

	markup, err := src.FetchMarkup(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !strings.Contains(markup, "<table") {
		t.Fatal("expected fixture page markup")
	}
	if recorder.SourceCalls(fixture.Name) != 1 {
		t.Fatalf("expected one recorded attempt, got %d", recorder.SourceCalls(fixture.Name))
	}
}
