package world

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"testing"

	"football-client/internal/domain"
	"football-client/internal/domain/countries"
	"football-client/internal/domain/leagues"
	"football-client/internal/metrics"
	"football-client/internal/providers"
	"football-client/internal/providers/fixture"
	"football-client/internal/resolver"
	"football-client/internal/serializer"
	"football-client/internal/testutil"
	"football-client/internal/teststubs"
)

func premierLeagueOnly() domain.Collection[leagues.League] {
	return domain.NewCollection(leagues.Entity, []leagues.League{
		testutil.SampleLeague(39, "Premier League", "England"),
	})
}

func newWorld(t *testing.T, dir string, format serializer.Format, p providers.DataProvider) *World {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	w, err := New(Options{
		DataDir:  dir,
		Format:   format,
		Provider: p,
		Logger:   logger,
		Recorder: metrics.NewRecorder(),
	})
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	return w
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

func compactFile(t *testing.T, path string) string {
	t.Helper()
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		t.Fatalf("compact %s: %v", path, err)
	}
	return buf.String()
}

func TestNewCreatesDataDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	w := newWorld(t, dir, "", fixture.New())

	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected data dir to exist, err=%v", err)
	}
	if w.DataDir() != dir || w.Format() != serializer.FormatJSON {
		t.Fatalf("unexpected world settings dir=%s format=%s", w.DataDir(), w.Format())
	}
	if w.Leagues.State() != resolver.StateUnresolved || w.Countries.State() != resolver.StateUnresolved {
		t.Fatalf("expected fresh resolvers")
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	if _, err := New(Options{DataDir: t.TempDir(), Format: "xml", Provider: fixture.New()}); !errors.Is(err, serializer.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration for unknown format, got %v", err)
	}
	if _, err := New(Options{Provider: fixture.New()}); !errors.Is(err, serializer.ErrInvalidConfiguration) {
		t.Fatalf("expected invalid configuration for missing data dir, got %v", err)
	}
	if _, err := New(Options{DataDir: t.TempDir()}); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected missing provider error, got %v", err)
	}
}

func TestLeagueFetchWritesSimplifiedProjections(t *testing.T) {
	dir := t.TempDir()
	stub := &teststubs.StubProvider{Leagues: premierLeagueOnly()}
	w := newWorld(t, dir, serializer.FormatJSON, stub)

	lg, ok, err := w.Leagues.Get(context.Background(), resolver.Lookup{ID: "39"})
	if err != nil || !ok || lg.League.Name != "Premier League" {
		t.Fatalf("unexpected lookup result %+v ok=%v err=%v", lg, ok, err)
	}

	want := []string{"leagues.json", "leagues_simplified.json", "seasons_simplified.json"}
	if got := listFiles(t, dir); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected files %v, got %v", want, got)
	}

	simplified := compactFile(t, filepath.Join(dir, "leagues_simplified.json"))
	if simplified != `[{"id":39,"name":"Premier League","country":"England","seasons":[2021,2022]}]` {
		t.Fatalf("unexpected simplified leagues %s", simplified)
	}

	seasons := compactFile(t, filepath.Join(dir, "seasons_simplified.json"))
	wantSeasons := `[` +
		`{"league_id":39,"league_name":"Premier League","country":"England","year":2021,"start":"2021-08-13","end":"2022-05-22"},` +
		`{"league_id":39,"league_name":"Premier League","country":"England","year":2022,"start":"2022-08-05","end":"2023-05-28"}` +
		`]`
	if seasons != wantSeasons {
		t.Fatalf("unexpected simplified seasons %s", seasons)
	}
}

func TestLeaguesTSVRoundTripIsLossy(t *testing.T) {
	dir := t.TempDir()
	w := newWorld(t, dir, serializer.FormatTSV, &teststubs.StubProvider{Leagues: premierLeagueOnly()})

	if _, err := w.Leagues.All(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	factory := serializer.NewFactory(dir, LeaguesProfile())
	s, err := factory.Create(serializer.FormatTSV, leagues.Entity)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	rows, err := s.(serializer.RowReader).ReadRows()
	if err != nil {
		t.Fatalf("read rows: %v", err)
	}
	want := []serializer.Row{{
		"ID":      "39",
		"Name":    "Premier League",
		"Type":    "League",
		"Country": "England",
		"Seasons": "2021, 2022",
	}}
	if !reflect.DeepEqual(rows, want) {
		t.Fatalf("expected %v, got %v", want, rows)
	}
}

func TestCountriesUseGenericSerializers(t *testing.T) {
	dir := t.TempDir()
	w := newWorld(t, dir, serializer.FormatTSV, fixture.New())

	c, ok, err := w.Countries.Get(context.Background(), resolver.Lookup{Name: "Spain"})
	if err != nil || !ok || c.RecordID() != "ES" {
		t.Fatalf("unexpected country %+v ok=%v err=%v", c, ok, err)
	}

	want := []string{"countries.json", "countries.tsv"}
	if got := listFiles(t, dir); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected files %v, got %v", want, got)
	}

	rows, err := serializer.NewTSV[countries.Country](dir, countries.Entity, serializer.Options[countries.Country]{}).ReadRows()
	if err != nil || len(rows) != 3 {
		t.Fatalf("unexpected rows %v err=%v", rows, err)
	}
	if rows[0]["name"] != "England" || rows[0]["code"] != "GB" {
		t.Fatalf("expected derived columns, got %v", rows[0])
	}
}

func TestYAMLOutputAlsoWritesProjections(t *testing.T) {
	dir := t.TempDir()
	w := newWorld(t, dir, serializer.FormatYAML, &teststubs.StubProvider{Leagues: premierLeagueOnly()})

	if _, err := w.Leagues.All(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"leagues.json", "leagues.yaml", "leagues_simplified.json", "seasons_simplified.json"}
	if got := listFiles(t, dir); !reflect.DeepEqual(got, want) {
		t.Fatalf("expected files %v, got %v", want, got)
	}
}

func TestSecondWorldReadsFromDisk(t *testing.T) {
	dir := t.TempDir()
	first := &teststubs.StubProvider{Leagues: premierLeagueOnly()}
	if _, err := newWorld(t, dir, serializer.FormatJSON, first).Leagues.All(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second := &teststubs.StubProvider{}
	lg, ok, err := newWorld(t, dir, serializer.FormatJSON, second).Leagues.Get(context.Background(), resolver.Lookup{Name: "Premier League"})
	if err != nil || !ok || lg.League.ID != 39 {
		t.Fatalf("unexpected league %+v ok=%v err=%v", lg, ok, err)
	}
	if second.Calls.Load() != 0 {
		t.Fatalf("expected disk cache hit without fetching, got %d calls", second.Calls.Load())
	}
}

func TestAPIErrorWritesNoFiles(t *testing.T) {
	dir := t.TempDir()
	stub := &teststubs.StubProvider{Err: &providers.APIError{Provider: "stub", Entity: leagues.Entity, Messages: []string{"rate limited"}}}
	w := newWorld(t, dir, serializer.FormatTSV, stub)

	if _, err := w.Leagues.All(context.Background()); err == nil {
		t.Fatalf("expected api error")
	}
	if got := listFiles(t, dir); len(got) != 0 {
		t.Fatalf("expected no files, got %v", got)
	}
}
