package iiif

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const paginationXML = `<?xml version="1.0" encoding="UTF-8"?>
<livre>
  <structure>
    <pages>
      <page>
        <ordre>1</ordre>
        <image_width>2000</image_width>
        <image_height>3000</image_height>
      </page>
      <page>
        <ordre>4</ordre>
        <image_width>2400</image_width>
        <image_height>3600</image_height>
      </page>
    </pages>
  </structure>
</livre>`

func newGallicaTestServer(t *testing.T, calls *int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*calls++
		if r.URL.Path != "/services/Pagination" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if ark := r.URL.Query().Get("ark"); ark != "bpt6k6703122r" {
			t.Errorf("ark = %q, want bpt6k6703122r", ark)
		}
		fmt.Fprint(w, paginationXML)
	}))
}

func TestGallicaDimensions(t *testing.T) {
	var calls int
	server := newGallicaTestServer(t, &calls)
	defer server.Close()

	g := NewGallicaClient(http.DefaultClient)
	g.SetBaseURL(server.URL)

	w, h, err := g.Dimensions(context.Background(), "bpt6k6703122r", "f4")
	if err != nil {
		t.Fatalf("Dimensions() error = %v", err)
	}
	if w != 2400 || h != 3600 {
		t.Errorf("Dimensions() = %dx%d, want 2400x3600", w, h)
	}
}

func TestGallicaBareNumberAccepted(t *testing.T) {
	var calls int
	server := newGallicaTestServer(t, &calls)
	defer server.Close()

	g := NewGallicaClient(http.DefaultClient)
	g.SetBaseURL(server.URL)

	w, h, err := g.Dimensions(context.Background(), "bpt6k6703122r", "1")
	if err != nil {
		t.Fatalf("Dimensions() error = %v", err)
	}
	if w != 2000 || h != 3000 {
		t.Errorf("Dimensions() = %dx%d, want 2000x3000", w, h)
	}
}

func TestGallicaCachesPerARK(t *testing.T) {
	var calls int
	server := newGallicaTestServer(t, &calls)
	defer server.Close()

	g := NewGallicaClient(http.DefaultClient)
	g.SetBaseURL(server.URL)

	ctx := context.Background()
	if _, _, err := g.Dimensions(ctx, "bpt6k6703122r", "f1"); err != nil {
		t.Fatalf("first Dimensions() error = %v", err)
	}
	if _, _, err := g.Dimensions(ctx, "bpt6k6703122r", "f4"); err != nil {
		t.Fatalf("second Dimensions() error = %v", err)
	}

	if calls != 1 {
		t.Errorf("pagination fetches = %d, want 1 (second lookup served from cache)", calls)
	}
	if g.CacheSize() != 1 {
		t.Errorf("CacheSize() = %d, want 1", g.CacheSize())
	}
}

func TestGallicaPageNotFound(t *testing.T) {
	var calls int
	server := newGallicaTestServer(t, &calls)
	defer server.Close()

	g := NewGallicaClient(http.DefaultClient)
	g.SetBaseURL(server.URL)

	if _, _, err := g.Dimensions(context.Background(), "bpt6k6703122r", "f99"); err == nil {
		t.Error("Dimensions() should fail for a page absent from the pagination XML")
	}
}

func TestGallicaServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer server.Close()

	g := NewGallicaClient(http.DefaultClient)
	g.SetBaseURL(server.URL)

	if _, _, err := g.Dimensions(context.Background(), "bpt6k6703122r", "f1"); err == nil {
		t.Error("Dimensions() should surface the service error")
	}
	if g.CacheSize() != 0 {
		t.Errorf("failed fetches must not be cached, CacheSize() = %d", g.CacheSize())
	}
}
