package oeis

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/big"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/jjtimmons/goeis/config"
)

// pageSize is the number of results the OEIS returns per search page
const pageSize = 10

// Client fetches records from an OEIS server. It's safe for concurrent use.
type Client struct {
	http *http.Client
	conf config.Config

	// Logger receives a line per request when conf.Verbose is set
	Logger *log.Logger
}

// NewClient returns a Client using the settings in conf,
// config.Default() is used if conf is nil.
func NewClient(conf *config.Config) *Client {
	if conf == nil {
		conf = config.Default()
	}
	c := *conf
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.BaseURL == "" {
		c.BaseURL = config.DefaultBaseURL
	}
	if c.Results <= 0 {
		c.Results = config.DefaultResults
	}

	return &Client{
		http:   &http.Client{Timeout: c.Timeout},
		conf:   c,
		Logger: log.New(os.Stderr, "", 0),
	}
}

// BaseURL is the root of the server the client talks to.
func (c *Client) BaseURL() string {
	return c.conf.BaseURL
}

// FetchBrief looks up a single entry by id. It returns a *NotFoundError
// if the server has no entry with that id.
func (c *Client) FetchBrief(ctx context.Context, id ID) (*Record, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, int(id))
	}

	u := c.searchURL(url.Values{"q": {"id:" + id.String()}})
	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	entries, _, err := decodeResults(u, body)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, &NotFoundError{ID: id}
	}

	rec, err := entries[0].record(u, c.conf.BaseURL)
	if err != nil {
		return nil, err
	}
	if rec.ID != id {
		return nil, &ParseError{URL: u, Msg: fmt.Sprintf("asked for %s, got %s", id, rec.ID)}
	}
	return rec, nil
}

// FetchFull reads every term in the entry's b-file. This is far more
// terms than FetchBrief returns, and a far bigger download.
func (c *Client) FetchFull(ctx context.Context, id ID) ([]*big.Int, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidID, int(id))
	}

	u := id.bFileURL(c.conf.BaseURL)
	resp, err := c.do(ctx, u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return parseBFile(u, resp.Body)
}

// Search finds entries containing terms, skipping the first start
// matches and returning at most limit. A limit <= 0 means the configured
// default. No matches is an empty slice and a nil error.
func (c *Client) Search(ctx context.Context, terms []*big.Int, start, limit int) ([]*Record, error) {
	if len(terms) == 0 {
		return nil, fmt.Errorf("failed to search: %w", ErrNilTerm)
	}
	for i, t := range terms {
		if t == nil {
			return nil, fmt.Errorf("failed to search: term %d: %w", i, ErrNilTerm)
		}
	}
	if start < 0 {
		return nil, &IndexError{Index: start, Msg: fmt.Sprintf("search start (%d) is negative", start)}
	}
	if limit <= 0 {
		limit = c.conf.Results
	}

	query := make([]string, len(terms))
	for i, t := range terms {
		query[i] = t.String()
	}
	q := strings.Join(query, ",")

	records := []*Record{}
	for offset := start; len(records) < limit; {
		u := c.searchURL(url.Values{"q": {q}, "start": {strconv.Itoa(offset)}})
		body, err := c.get(ctx, u)
		if err != nil {
			return nil, err
		}

		entries, count, err := decodeResults(u, body)
		if err != nil {
			return nil, err
		}

		for i := range entries {
			if len(records) == limit {
				break
			}
			rec, err := entries[i].record(u, c.conf.BaseURL)
			if err != nil {
				return nil, err
			}
			records = append(records, rec)
		}

		offset += len(entries)
		if len(entries) < pageSize || (count >= 0 && offset >= count) {
			break // last page
		}
	}

	return records, nil
}

// searchURL builds a fmt=json search request against the server
func (c *Client) searchURL(params url.Values) string {
	params.Set("fmt", "json")
	return c.conf.BaseURL + "/search?" + params.Encode()
}

// get returns the whole body of a GET request
func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	resp, err := c.do(ctx, u)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	return body, nil
}

// do issues a GET request, the caller closes the body of a non-nil response
func (c *Client) do(ctx context.Context, u string) (*http.Response, error) {
	if c.conf.Verbose {
		c.Logger.Printf("GET %s", u)
	}

	req, err := http.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	req = req.WithContext(ctx)
	if c.conf.UserAgent != "" {
		req.Header.Set("User-Agent", c.conf.UserAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &TransportError{URL: u, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, err := io.Copy(io.Discard, resp.Body) // drain so the connection is reused
		resp.Body.Close()
		return nil, &TransportError{URL: u, StatusCode: resp.StatusCode, Err: err}
	}
	return resp, nil
}
