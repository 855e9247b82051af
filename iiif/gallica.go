package iiif

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/sirupsen/logrus"
)

// DefaultGallicaBaseURL is the production Gallica service endpoint.
const DefaultGallicaBaseURL = "https://gallica.bnf.fr"

// GallicaClient answers dimension lookups from Gallica's pagination XML
// service. One fetch covers every page of an issue, so the parsed document
// is cached per ARK identifier for the lifetime of the client. The cache is
// never evicted and is cold on every new run.
type GallicaClient struct {
	httpClient *http.Client
	baseURL    string
	cache      map[string]*xmlquery.Node
}

// NewGallicaClient creates a client with an empty cache.
func NewGallicaClient(httpClient *http.Client) *GallicaClient {
	return &GallicaClient{
		httpClient: httpClient,
		baseURL:    DefaultGallicaBaseURL,
		cache:      make(map[string]*xmlquery.Node),
	}
}

// SetBaseURL overrides the service endpoint. Used in tests.
func (g *GallicaClient) SetBaseURL(baseURL string) {
	g.baseURL = strings.TrimSuffix(baseURL, "/")
}

// CacheSize returns the number of cached pagination documents.
func (g *GallicaClient) CacheSize() int {
	return len(g.cache)
}

// Dimensions looks up the width and height of one page of an issue.
// pageNumber is Gallica's page token (e.g. "f4"); a bare number is accepted
// too.
func (g *GallicaClient) Dimensions(ctx context.Context, arkID, pageNumber string) (int, int, error) {
	pageNum := strings.TrimPrefix(pageNumber, "f")

	root, ok := g.cache[arkID]
	if ok {
		logrus.Debugf("Using cached pagination XML for ARK %s", arkID)
	} else {
		var err error
		root, err = g.fetchPagination(ctx, arkID)
		if err != nil {
			return 0, 0, err
		}
		g.cache[arkID] = root
		logrus.Infof("Cached pagination XML for ARK %s", arkID)
	}

	for _, page := range xmlquery.Find(root, "//page") {
		ordre := page.SelectElement("ordre")
		if ordre == nil || strings.TrimSpace(ordre.InnerText()) != pageNum {
			continue
		}

		widthElem := page.SelectElement("image_width")
		heightElem := page.SelectElement("image_height")
		if widthElem == nil || heightElem == nil {
			continue
		}

		width, werr := strconv.Atoi(strings.TrimSpace(widthElem.InnerText()))
		height, herr := strconv.Atoi(strings.TrimSpace(heightElem.InnerText()))
		if werr != nil || herr != nil {
			continue
		}

		logrus.Debugf("Found dimensions for page %s: %dx%d", pageNum, width, height)
		return width, height, nil
	}

	logrus.Warnf("Page %s not found in pagination XML for %s", pageNum, arkID)
	return 0, 0, fmt.Errorf("iiif: page %s not found in pagination XML for %s", pageNum, arkID)
}

func (g *GallicaClient) fetchPagination(ctx context.Context, arkID string) (*xmlquery.Node, error) {
	paginationURL := fmt.Sprintf("%s/services/Pagination?ark=%s", g.baseURL, arkID)
	logrus.Infof("Fetching pagination XML from %s", paginationURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, paginationURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("iiif: fetching pagination XML for %s: %w", arkID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("iiif: pagination service returned %s for %s", resp.Status, arkID)
	}

	root, err := xmlquery.Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("iiif: parsing pagination XML for %s: %w", arkID, err)
	}
	return root, nil
}
