package cache

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
)

func TestExporter_Export(t *testing.T) {
	c := NewInMemoryCache(0)
	c.Set("5eb63bbbe01eeed093cb22bb8f5acdc3", "hello artifact")
	c.Set("d41d8cd98f00b204e9800998ecf8427e", "empty artifact")

	var buf bytes.Buffer
	exporter := NewExporter(c)
	err := exporter.Export(&buf, map[string]string{"source": "test"})
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var export ExportFormat
	if err := json.Unmarshal(buf.Bytes(), &export); err != nil {
		t.Fatalf("Export produced invalid JSON: %v", err)
	}

	if export.Version != "1.0" {
		t.Errorf("Version = %q, want 1.0", export.Version)
	}
	if len(export.Entries) != 2 {
		t.Errorf("Exported %d entries, want 2", len(export.Entries))
	}
	if export.Metadata["source"] != "test" {
		t.Errorf("Metadata = %v, want source=test", export.Metadata)
	}
}

// unsupportedCache satisfies KeyCache but cannot enumerate its entries.
type unsupportedCache struct{}

func (unsupportedCache) Get(string) (string, bool) { return "", false }
func (unsupportedCache) Set(string, string) error  { return nil }

func TestExporter_UnsupportedCache(t *testing.T) {
	exporter := NewExporter(unsupportedCache{})

	var buf bytes.Buffer
	if err := exporter.Export(&buf, nil); err == nil {
		t.Error("Export should fail for caches without enumeration support")
	}
}

func TestImporter_Import(t *testing.T) {
	input := `{
		"version": "1.0",
		"exported_at": "2026-01-01T00:00:00Z",
		"entries": [
			{"key": "abc", "value": "one"},
			{"key": "def", "value": "two"}
		],
		"metadata": {"origin": "unit"}
	}`

	c := NewInMemoryCache(0)
	importer := NewImporter(c)

	result, err := importer.Import(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if result.Imported != 2 {
		t.Errorf("Imported = %d, want 2", result.Imported)
	}
	if result.Failed != 0 {
		t.Errorf("Failed = %d, want 0", result.Failed)
	}
	if result.Metadata["origin"] != "unit" {
		t.Errorf("Metadata = %v, want origin=unit", result.Metadata)
	}

	if val, ok := c.Get("abc"); !ok || val != "one" {
		t.Errorf("Get(abc) = %q (ok=%v), want 'one'", val, ok)
	}
}

func TestImporter_InvalidJSON(t *testing.T) {
	importer := NewImporter(NewInMemoryCache(0))

	if _, err := importer.Import(strings.NewReader("{not json")); err == nil {
		t.Error("Import should fail on invalid JSON")
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	src := NewInMemoryCache(0)
	src.Set("k1", "v1")
	src.Set("k2", "v2")

	path := filepath.Join(t.TempDir(), "cache.json")
	if err := NewExporter(src).ExportToFile(path, nil); err != nil {
		t.Fatalf("ExportToFile failed: %v", err)
	}

	dst := NewInMemoryCache(0)
	result, err := NewImporter(dst).ImportFromFile(path)
	if err != nil {
		t.Fatalf("ImportFromFile failed: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("Imported = %d, want 2", result.Imported)
	}
	if val, _ := dst.Get("k2"); val != "v2" {
		t.Errorf("round-trip lost value: Get(k2) = %q", val)
	}
}
