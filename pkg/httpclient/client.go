package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	charsetpkg "golang.org/x/net/html/charset"
)

// Client represents an HTTP client bound to a base URL.
// Each request is a single attempt: the client performs no retries.
type Client struct {
	baseURL            string
	client             *http.Client
	rawQuery           string
	defaultHeaders     map[string]string
	defaultContentType string
}

// ClientOptions represents the configuration options for the HTTP client.
type ClientOptions struct {
	FollowRedirect     bool
	DefaultHeaders     map[string]string
	DefaultContentType string
	// RawQuery is an extra query string appended verbatim to every request.
	RawQuery          string
	ConnectionTimeout time.Duration
	RequestTimeout    time.Duration
}

// NewClient creates a new HTTP client with the given base URL and configuration options.
func NewClient(baseURL string, opts ClientOptions) *Client {
	if opts.RequestTimeout == 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.ConnectionTimeout == 0 {
		opts.ConnectionTimeout = opts.RequestTimeout
	}
	if opts.DefaultContentType == "" {
		opts.DefaultContentType = "application/json"
	}

	transport := &http.Transport{
		DisableKeepAlives: true,
		DialContext: (&net.Dialer{
			Timeout: opts.ConnectionTimeout,
		}).DialContext,
	}

	client := &http.Client{
		Transport: transport,
		Timeout:   opts.RequestTimeout,
	}

	if !opts.FollowRedirect {
		client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}
	}

	return &Client{
		baseURL:            strings.TrimRight(baseURL, "/"),
		client:             client,
		rawQuery:           strings.TrimLeft(opts.RawQuery, "?&"),
		defaultHeaders:     opts.DefaultHeaders,
		defaultContentType: opts.DefaultContentType,
	}
}

// Request creates a new Request object for the client.
func (hc *Client) Request() *Request {
	return NewClientRequest(hc)
}

// doRequest sends an HTTP request with the given method, path, query parameters, headers and body.
// On a 2xx status the body is unmarshalled into successResp; otherwise into errorResp.
// When rawBody is non-nil the unparsed response body is copied into it in either case.
// It returns the success response, error response, status code, and error if any.
func (hc *Client) doRequest(ctx context.Context, method, path string, queryParams map[string]string, headers map[string]string, body any, successResp any, errorResp any, rawBody *[]byte) (any, any, int, error) {
	reqURL := hc.buildURL(path, queryParams)

	var bodyReader io.Reader
	var contentType string

	if body != nil {
		switch body := body.(type) {
		case string:
			bodyReader = bytes.NewBufferString(body)
			contentType = "text/plain"
		case []byte:
			bodyReader = bytes.NewBuffer(body)
			contentType = "application/octet-stream"
		default:
			contentType = hc.defaultContentType
			encoded, err := json.Marshal(body)
			if err != nil {
				return nil, nil, 0, fmt.Errorf("failed to marshal request body: %w", err)
			}
			bodyReader = bytes.NewBuffer(encoded)
		}
	}

	if ctx == nil {
		ctx = context.Background()
	}
	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, nil, 0, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for k, v := range hc.defaultHeaders {
		req.Header.Set(k, v)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := hc.client.Do(req)
	if err != nil {
		return nil, nil, 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	// The transport may deliver the body in multiple chunks; accumulate all of it.
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, resp.Body); err != nil {
		return nil, nil, resp.StatusCode, err
	}
	bodyBytes := buf.Bytes()

	if rawBody != nil {
		*rawBody = append((*rawBody)[:0], bodyBytes...)
	}

	respContentType := resp.Header.Get("Content-Type")
	if respContentType == "" {
		respContentType = hc.defaultContentType
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if successResp != nil {
			if err = hc.unmarshalResponse(bodyBytes, respContentType, successResp); err != nil {
				return nil, nil, resp.StatusCode, err
			}
		}
		return successResp, nil, resp.StatusCode, nil
	}

	if errorResp != nil {
		// Error bodies are best-effort: upstreams often answer plain text on failure.
		_ = hc.unmarshalResponse(bodyBytes, respContentType, errorResp)
	}

	return nil, errorResp, resp.StatusCode, fmt.Errorf("http error: status %d", resp.StatusCode)
}

// unmarshalResponse unmarshals response body based on content type
func (hc *Client) unmarshalResponse(bodyBytes []byte, contentType string, target any) error {
	mainContentType := strings.TrimSpace(strings.Split(contentType, ";")[0])

	switch mainContentType {
	case "application/xml", "text/xml":
		dec := xml.NewDecoder(bytes.NewReader(bodyBytes))
		dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
			return charsetpkg.NewReaderLabel(charset, input)
		}
		return dec.Decode(target)
	case "text/plain":
		if strPtr, ok := target.(*string); ok {
			*strPtr = string(bodyBytes)
			return nil
		}
		return json.Unmarshal(bodyBytes, target)
	default:
		return json.Unmarshal(bodyBytes, target)
	}
}

// buildURL joins the base URL, path, per-request query parameters and the
// client's verbatim extra query string.
func (hc *Client) buildURL(path string, queryParams map[string]string) string {
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	full := hc.baseURL + path

	query := buildQueryString(queryParams)
	if hc.rawQuery != "" {
		if query != "" {
			query += "&" + hc.rawQuery
		} else {
			query = hc.rawQuery
		}
	}
	if query != "" {
		full += "?" + query
	}

	return full
}

// buildQueryString builds a deterministic, URL-escaped query string
func buildQueryString(params map[string]string) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, url.QueryEscape(key)+"="+url.QueryEscape(params[key]))
	}

	return strings.Join(parts, "&")
}
