package serializer

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"football-client/internal/domain"
)

type team struct {
	ID      int    `json:"id" yaml:"id"`
	Name    string `json:"name" yaml:"name"`
	Founded int    `json:"founded" yaml:"founded"`
	Years   []int  `json:"years" yaml:"years"`
}

func sampleTeams() domain.Collection[team] {
	c := domain.NewCollection("teams", []team{
		{ID: 1, Name: "A", Founded: 1880, Years: []int{2021, 2022}},
		{ID: 2, Name: "B", Founded: 1902, Years: []int{2022}},
	})
	c.Parameters = domain.Parameters{"league": "39"}
	return c
}

func teamColumns() []Column[team] {
	return []Column[team]{
		{Header: "ID", Value: func(t team) string { return strconv.Itoa(t.ID) }},
		{Header: "Name", Value: func(t team) string { return t.Name }},
		{Header: "Years", Value: func(t team) string {
			parts := make([]string, 0, len(t.Years))
			for _, y := range t.Years {
				parts = append(parts, strconv.Itoa(y))
			}
			return strings.Join(parts, ", ")
		}},
	}
}

func writeRaw(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func requireFile(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected file %s: %v", path, err)
	}
	return data
}

func listFiles(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, filepath.Base(e.Name()))
	}
	return names
}
