// Package client calls the admin API on behalf of an operator.
package client

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"eduadmin/backend/listing"

	"github.com/bytedance/sonic"
	"github.com/pkg/errors"
)

// EnvBaseURL names the variable holding the API base URL.
const EnvBaseURL = "EDUADMIN_API_URL"

// TokenSource yields the bearer token. session.Session implements it.
type TokenSource interface {
	Token() (string, error)
}

// APIError is a non-2xx answer. Message is the backend's own message when it
// sent one.
type APIError struct {
	Status  int
	Message string
	Details map[string]string
}

func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Details))
	for field, msg := range e.Details {
		parts = append(parts, field+": "+msg)
	}
	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

type Client struct {
	BaseURL string
	HTTP    *http.Client
	Tokens  TokenSource

	// RetryDelay is the pause between university count attempts.
	RetryDelay time.Duration
}

func New(baseURL string, tokens TokenSource) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTP:       &http.Client{Timeout: 30 * time.Second},
		Tokens:     tokens,
		RetryDelay: time.Second,
	}
}

// Query is the common list query: search term, page and one or more
// dropdown filters.
type Query struct {
	Search   string
	Page     int
	PageSize int
	Filters  map[string]string
}

func (q Query) values() url.Values {
	v := url.Values{}
	if s := strings.TrimSpace(q.Search); s != "" {
		v.Set("search", s)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("pageSize", strconv.Itoa(q.PageSize))
	}
	for k, val := range q.Filters {
		if val != "" {
			v.Set(k, val)
		}
	}
	return v
}

type errorBody struct {
	Error   string            `json:"error"`
	Message string            `json:"message"`
	Details map[string]string `json:"details"`
}

type envelope[T any] struct {
	Data T `json:"data"`
}

func (c *Client) request(ctx context.Context, method, path string, query url.Values, body any, auth bool) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		raw, err := sonic.Marshal(body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request")
		}
		reader = bytes.NewReader(raw)
	}

	var token string
	if auth {
		t, err := c.Tokens.Token()
		if err != nil {
			return nil, err
		}
		token = t
	}

	target := c.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "%s %s", method, path)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		defer resp.Body.Close()
		return nil, decodeError(resp)
	}
	return resp, nil
}

func decodeError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}
	raw, _ := io.ReadAll(resp.Body)
	var body errorBody
	if len(raw) > 0 && sonic.Unmarshal(raw, &body) == nil {
		apiErr.Message = body.Message
		apiErr.Details = body.Details
		if apiErr.Message == "" && len(body.Details) > 0 {
			apiErr.Message = body.Error
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}
	return apiErr
}

// call sends the request and decodes the JSON answer into out, if given.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any, auth bool) error {
	resp, err := c.request(ctx, method, path, query, body, auth)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "read response")
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	return errors.Wrap(sonic.Unmarshal(raw, out), "decode response")
}

func getData[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	var env envelope[T]
	err := c.call(ctx, http.MethodGet, path, query, nil, &env, true)
	return env.Data, err
}

func sendData[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	var env envelope[T]
	err := c.call(ctx, method, path, nil, body, &env, true)
	return env.Data, err
}

func getPage[T any](ctx context.Context, c *Client, path string, q Query) (listing.Page[T], error) {
	var page listing.Page[T]
	err := c.call(ctx, http.MethodGet, path, q.values(), nil, &page, true)
	return page, err
}

func (c *Client) delete(ctx context.Context, path string) error {
	return c.call(ctx, http.MethodDelete, path, nil, nil, nil, true)
}

// FetchAll walks every page of a list endpoint.
func FetchAll[T any](ctx context.Context, get func(context.Context, int) (listing.Page[T], error)) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		p, err := get(ctx, page)
		if err != nil {
			return nil, err
		}
		all = append(all, p.Items...)
		if page >= p.TotalPages {
			return all, nil
		}
	}
}

// Download is a file answered by the API.
type Download struct {
	Name string
	Data []byte
}

func (c *Client) download(ctx context.Context, path string, query url.Values) (Download, error) {
	resp, err := c.request(ctx, http.MethodGet, path, query, nil, true)
	if err != nil {
		return Download{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Download{}, errors.Wrap(err, "read download")
	}
	d := Download{Data: data}
	if _, params, err := mime.ParseMediaType(resp.Header.Get("Content-Disposition")); err == nil {
		d.Name = params["filename"]
	}
	return d, nil
}
