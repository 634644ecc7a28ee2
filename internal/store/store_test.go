package store

import (
	"strings"
	"testing"

	"github.com/rlisboa/stream-eda-tools/internal/cleaning"
	"github.com/rlisboa/stream-eda-tools/internal/dataset"
)

const fixtureCSV = `track_name,artist(s)_name,streams,key,mode
Song A,Artist X,"1,000,000",C#,Major
Song B,Artist Y,500000,,Minor
Song C,Artist X,250000,F,Major
`

func cleanedFixture(t *testing.T) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.FromCSV(strings.NewReader(fixtureCSV))
	if err != nil {
		t.Fatalf("FromCSV failed: %v", err)
	}
	if _, err := cleaning.Clean(ds); err != nil {
		t.Fatalf("Clean failed: %v", err)
	}
	return ds
}

func memoryStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestWriteDataset(t *testing.T) {
	s := memoryStore(t)
	ds := cleanedFixture(t)

	written, err := s.WriteDataset(ds)
	if err != nil {
		t.Fatalf("WriteDataset failed: %v", err)
	}
	if written != 3 {
		t.Errorf("expected 3 rows written, got %d", written)
	}

	count, err := s.CountTracks()
	if err != nil {
		t.Fatalf("CountTracks failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 tracks, got %d", count)
	}
}

func TestWriteDatasetReplaces(t *testing.T) {
	s := memoryStore(t)
	ds := cleanedFixture(t)

	if _, err := s.WriteDataset(ds); err != nil {
		t.Fatalf("first WriteDataset failed: %v", err)
	}
	if _, err := s.WriteDataset(ds); err != nil {
		t.Fatalf("second WriteDataset failed: %v", err)
	}

	count, err := s.CountTracks()
	if err != nil {
		t.Fatalf("CountTracks failed: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3 tracks after rewrite, got %d", count)
	}
}

func TestWriteDatasetNumericValues(t *testing.T) {
	s := memoryStore(t)
	ds := cleanedFixture(t)

	if _, err := s.WriteDataset(ds); err != nil {
		t.Fatalf("WriteDataset failed: %v", err)
	}

	var total float64
	err := s.db.QueryRow(`SELECT SUM("streams") FROM Track`).Scan(&total)
	if err != nil {
		t.Fatalf("querying streams failed: %v", err)
	}
	if total != 1750000 {
		t.Errorf("expected streams sum 1750000, got %v", total)
	}
}

func TestExists(t *testing.T) {
	s := memoryStore(t)

	exists, err := s.Exists()
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if exists {
		t.Error("expected no Track table before export")
	}

	if _, err := s.WriteDataset(cleanedFixture(t)); err != nil {
		t.Fatalf("WriteDataset failed: %v", err)
	}

	exists, err = s.Exists()
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !exists {
		t.Error("expected Track table after export")
	}
}
