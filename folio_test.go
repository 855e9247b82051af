package folio

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

type fixedProvider struct {
	w, h int
}

func (p fixedProvider) Resolve(_ context.Context, _ string) (int, int, error) {
	return p.w, p.h, nil
}

func TestCheckerChainingImmutability(t *testing.T) {
	base := Check("pages/")
	configured := base.Shuffle().GallicaV3().GitVersion("v1.0.0")

	if base.options.shuffle || base.options.gallicaV3 || base.options.gitVersion != "" {
		t.Errorf("base checker was mutated by chaining: %+v", base.options)
	}
	if !configured.options.shuffle || !configured.options.gallicaV3 || configured.options.gitVersion != "v1.0.0" {
		t.Errorf("configured checker = %+v", configured.options)
	}
}

func TestCheckRun(t *testing.T) {
	dir := t.TempDir()
	bundle := filepath.Join(dir, "pages.jsonl")
	records := `{"id": "p1", "iiif_img_base_uri": "https://example.org/iiif/p1", "cc": true, "r": [{"p": [{"l": [{"c": [10, 80, 100, 50], "t": [{"tx": "hello"}]}]}]}]}
{"id": "p2", "iiif_img_base_uri": "https://example.org/iiif/p2", "cc": true, "r": []}
`
	if err := os.WriteFile(bundle, []byte(records), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	totals, err := Check(bundle).
		Provider(fixedProvider{w: 200, h: 100}).
		GitVersion("abc123").
		Run(context.Background(), &buf)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if totals.TotalPages != 2 {
		t.Errorf("TotalPages = %d, want 2", totals.TotalPages)
	}
	if totals.TotalLines != 1 {
		t.Errorf("TotalLines = %d, want 1", totals.TotalLines)
	}
	if totals.OutOfBoundsLines != 1 {
		t.Errorf("OutOfBoundsLines = %d, want 1", totals.OutOfBoundsLines)
	}

	var first map[string]any
	if err := json.Unmarshal(bytes.Split(buf.Bytes(), []byte("\n"))[0], &first); err != nil {
		t.Fatalf("decoding first report: %v", err)
	}
	if first["page_id"] != "p1" {
		t.Errorf("page_id = %v, want p1", first["page_id"])
	}
	if first["git_version"] != "abc123" {
		t.Errorf("git_version = %v, want abc123", first["git_version"])
	}
}

func TestCheckRunSchemaViolationAborts(t *testing.T) {
	dir := t.TempDir()
	bundle := filepath.Join(dir, "pages.jsonl")
	// Second record's region is missing its paragraph sequence.
	records := `{"id": "ok", "iiif_img_base_uri": "https://example.org/iiif/ok", "r": []}
{"id": "bad", "iiif_img_base_uri": "https://example.org/iiif/bad", "r": [{"c": [0, 0, 1, 1]}]}
`
	if err := os.WriteFile(bundle, []byte(records), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if _, err := Check(bundle).Provider(fixedProvider{w: 10, h: 10}).Run(context.Background(), &buf); err == nil {
		t.Error("Run() should abort on a schema violation")
	}
}
