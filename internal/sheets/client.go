// Package sheets pulls deck rows from the Google Sheets CSV export endpoint.
package sheets

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/thaivocab/thaivocab/internal/logger"
)

// Row is one spreadsheet row with the recognized columns. Missing or
// malformed columns come through as empty strings.
type Row struct {
	Thai     string
	Phonetic string
	English  string
	Override string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	log        *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the Google endpoint, used by tests.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    "https://docs.google.com",
		log:        logger.Default().WithPrefix("sheets"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchTab downloads one tab of a spreadsheet as CSV and returns its rows.
func (c *Client) FetchTab(ctx context.Context, sheetID, tab string) ([]Row, error) {
	log := logger.FromContext(ctx).WithPrefix("sheets").WithFields(map[string]any{
		"sheet_id": sheetID,
		"tab":      tab,
	})

	fetchURL := fmt.Sprintf("%s/spreadsheets/d/%s/gviz/tq?tqx=out:csv&sheet=%s",
		c.baseURL, sheetID, url.QueryEscape(tab))

	log.Debug("fetching tab CSV")
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		log.Error("failed to create request: %v", err)
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Error("failed to fetch tab: %v", err)
		return nil, err
	}
	defer resp.Body.Close()

	log.Debug("tab response received in %v, status=%d", time.Since(start), resp.StatusCode)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		log.Error("tab request failed: status=%d, body=%s", resp.StatusCode, string(body))
		return nil, fmt.Errorf("tab %q status %d: %s", tab, resp.StatusCode, string(body))
	}

	rows, err := ParseCSV(resp.Body)
	if err != nil {
		log.Error("failed to parse tab CSV: %v", err)
		return nil, err
	}

	log.Info("fetched %d rows from tab %q", len(rows), tab)
	return rows, nil
}

// ParseCSV decodes a header-first CSV stream into rows. Unknown columns are
// ignored; recognized columns missing from the header stay empty.
func ParseCSV(r io.Reader) ([]Row, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // sheets pad short rows inconsistently

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}
		rows = append(rows, Row{
			Thai:     field(record, cols, "Thai"),
			Phonetic: field(record, cols, "Pronunciation"),
			English:  field(record, cols, "English"),
			Override: field(record, cols, "Override"),
		})
	}
	return rows, nil
}

func field(record []string, cols map[string]int, name string) string {
	i, ok := cols[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
