package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksFetchesAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordFetch("apisports", "leagues", 10*time.Millisecond, nil)
	rec.RecordFetch("apisports", "leagues", 15*time.Millisecond, errors.New("boom"))
	rec.RecordFetch("apisports", "countries", time.Millisecond, nil)

	if got := rec.FetchCalls("apisports", "leagues"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.FetchErrors("apisports", "leagues"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}

	snap := rec.Snapshot("apisports", "leagues")
	if snap.LastCallLatency != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", snap.LastCallLatency)
	}
	if got := rec.FetchCalls("apisports", "countries"); got != 1 {
		t.Fatalf("expected entities to be tracked separately, got %d", got)
	}
}

func TestRecorderTracksResolutionTiers(t *testing.T) {
	rec := NewRecorder()
	rec.RecordResolution("leagues", "remote")
	rec.RecordResolution("leagues", "memory")
	rec.RecordResolution("leagues", "memory")

	if got := rec.Resolutions("leagues", "memory"); got != 2 {
		t.Fatalf("expected 2 memory hits, got %d", got)
	}
	if got := rec.Resolutions("leagues", "disk"); got != 0 {
		t.Fatalf("expected no disk hits, got %d", got)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordFetch("p", "e", time.Millisecond, nil)
	rec.RecordResolution("e", "memory")
	if rec.FetchCalls("p", "e") != 0 || rec.Resolutions("e", "memory") != 0 {
		t.Fatalf("expected zero values from nil recorder")
	}
}
