package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/footballower/backend/internal/domain/standings"
	"github.com/footballower/backend/internal/domain/teaminfo"
)

type stubStandingsFetcher struct {
	rows []standings.Row
	err  error
}

func (s *stubStandingsFetcher) FetchStandings(context.Context) ([]standings.Row, error) {
	return s.rows, s.err
}

func testProfiles() []teaminfo.TeamProfile {
	return []teaminfo.TeamProfile{
		{Name: "Arsenal FC", Coach: "Mikel Arteta", ID: 57},
		{Name: "Liverpool FC", Coach: "Arne Slot", ID: 64},
	}
}

func TestStandingsServiceList_MergesCatalogProfiles(t *testing.T) {
	t.Parallel()

	fetcher := &stubStandingsFetcher{rows: []standings.Row{
		{Team: "Liverpool FC", Rank: "1", Points: "45"},
		{Team: "Arsenal FC", Rank: "2", Points: "42"},
	}}
	svc := NewStandingsService(fetcher, testProfiles(), nil)

	out := svc.List(context.Background())
	if len(out) != 2 {
		t.Fatalf("expected 2 rows, got=%d", len(out))
	}

	if out[0].Team != "Liverpool FC" || out[0].Profile == nil || out[0].Profile.ID != 64 {
		t.Fatalf("unexpected first row: %+v", out[0])
	}
	if out[1].Team != "Arsenal FC" || out[1].Profile == nil || out[1].Profile.Coach != "Mikel Arteta" {
		t.Fatalf("unexpected second row: %+v", out[1])
	}
}

func TestStandingsServiceList_FetchFailureDegradesToEmpty(t *testing.T) {
	t.Parallel()

	fetcher := &stubStandingsFetcher{err: errors.New("upstream down")}
	svc := NewStandingsService(fetcher, testProfiles(), nil)

	out := svc.List(context.Background())
	if out == nil {
		t.Fatal("expected empty slice, not nil")
	}
	if len(out) != 0 {
		t.Fatalf("expected no rows, got=%d", len(out))
	}
}

func TestMergeStandings_UnmatchedRowPassesThrough(t *testing.T) {
	t.Parallel()

	rows := []standings.Row{
		{Team: "Arsenal FC", Rank: "1", Points: "50"},
		{Team: "Newly Promoted FC", Rank: "2", Points: "48"},
	}

	out := MergeStandings(rows, teaminfo.IndexByName(testProfiles()))
	if len(out) != len(rows) {
		t.Fatalf("expected one output row per input row, got=%d", len(out))
	}

	if out[0].Profile == nil {
		t.Fatal("expected catalog profile for Arsenal")
	}
	if out[1].Profile != nil {
		t.Fatalf("expected nil profile for unknown team, got=%+v", out[1].Profile)
	}
	if out[1].Rank != "2" || out[1].Points != "48" {
		t.Fatalf("scraped fields must survive the merge untouched: %+v", out[1])
	}
}

func TestMergeStandings_DoesNotAliasCatalogEntries(t *testing.T) {
	t.Parallel()

	index := teaminfo.IndexByName(testProfiles())
	rows := []standings.Row{{Team: "Arsenal FC"}}

	out := MergeStandings(rows, index)
	out[0].Profile.Coach = "changed"

	if index["Arsenal FC"].Coach != "Mikel Arteta" {
		t.Fatal("merge must not share catalog backing memory with callers")
	}
}
