package csvfeed

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/friendsofgo/errors"
)

// Row is one parsed alert feed entry. Severity is kept verbatim; callers
// map it to the canonical vocabulary.
type Row struct {
	ID        string
	Text      string
	Severity  string
	UpdatedAt string
	Brand     string
}

// IFetcher downloads and parses a CSV alert feed.
type IFetcher interface {
	// Fetch returns the parsed rows and the raw payload as downloaded.
	Fetch(ctx context.Context, feedURL string) ([]Row, []byte, error)
}

// Config holds fetcher configuration.
type Config struct {
	Timeout time.Duration
	// MaxBodyBytes caps the feed download size. Zero means the default.
	MaxBodyBytes int64
}

const (
	defaultTimeout      = 20 * time.Second
	defaultMaxBodyBytes = 10 << 20 // 10 MiB
)

// ErrMissingColumns is returned when the feed header lacks required columns.
var ErrMissingColumns = errors.New("csvfeed: header must contain id, text, severity, updatedAt")

type fetcher struct {
	cfg        Config
	httpClient *http.Client
}

// New creates a new feed fetcher.
func New(cfg Config) IFetcher {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	if cfg.MaxBodyBytes == 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	return &fetcher{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}
}

// Fetch implements IFetcher.
func (f *fetcher) Fetch(ctx context.Context, feedURL string) ([]Row, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "csvfeed: build request")
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, nil, errors.Wrap(err, "csvfeed: download feed")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("csvfeed %d: %s", resp.StatusCode, feedURL)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxBodyBytes))
	if err != nil {
		return nil, nil, errors.Wrap(err, "csvfeed: read feed")
	}

	rows, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, nil, err
	}
	return rows, raw, nil
}

// Parse reads a feed from r. The header must contain id, text, severity and
// updatedAt columns (case-insensitive); brand is optional. Rows with an
// empty id are skipped.
func Parse(r io.Reader) ([]Row, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrMissingColumns
	}
	if err != nil {
		return nil, errors.Wrap(err, "csvfeed: read header")
	}

	idx := map[string]int{}
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, required := range []string{"id", "text", "severity", "updatedat"} {
		if _, ok := idx[required]; !ok {
			return nil, ErrMissingColumns
		}
	}

	var rows []Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "csvfeed: read row")
		}

		row := Row{
			ID:        field(record, idx["id"]),
			Text:      field(record, idx["text"]),
			Severity:  field(record, idx["severity"]),
			UpdatedAt: field(record, idx["updatedat"]),
		}
		if brandIdx, ok := idx["brand"]; ok {
			row.Brand = field(record, brandIdx)
		}
		if row.ID == "" {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func field(record []string, i int) string {
	if i < 0 || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}
