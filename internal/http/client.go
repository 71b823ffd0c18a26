// Package http implements the session every resource client shares: request
// construction, token auth, JSON and multipart encoding, and the mapping of
// HTTP failures onto the error types of pkg/paperless.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/paperless-community/paperless-go/pkg/paperless"
)

const (
	acceptHeader     = "application/json; version=2"
	defaultUserAgent = "paperless-go"
	defaultTimeout   = 30 * time.Second
)

// Request describes one API call.
type Request struct {
	Method string
	Path   string
	Query  url.Values

	// Body is JSON-encoded when non-nil. Raw []byte and json.RawMessage
	// bodies are sent as-is.
	Body any

	Headers http.Header
}

// Response carries the outcome of one API call.
type Response struct {
	StatusCode  int
	Headers     http.Header
	Body        []byte
	ContentType string
}

// JSON decodes the response body into v. A body that does not parse maps to
// BadJSONError, like a non-JSON content type would.
func (r *Response) JSON(v any) error {
	err := json.Unmarshal(r.Body, v)
	if err != nil {
		return &paperless.BadJSONError{
			StatusCode:  r.StatusCode,
			ContentType: r.ContentType,
			Err:         err,
		}
	}

	return nil
}

// FilePart is the file portion of a multipart upload.
type FilePart struct {
	FieldName string
	Filename  string
	Content   []byte
}

// Client is the shared HTTP session. It is safe for concurrent use.
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	httpClient *retryablehttp.Client
	logger     paperless.Logger
	debug      bool
}

// Option customizes a Client.
type Option func(*Client)

// WithLogger routes traces and warnings to logger.
func WithLogger(logger paperless.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response tracing.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithRetryMax enables transparent retries on transient transport failures.
func WithRetryMax(retries int) Option {
	return func(c *Client) {
		if retries >= 0 {
			c.httpClient.RetryMax = retries
		}
	}
}

// WithTimeout bounds each request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.HTTPClient.Timeout = timeout
		}
	}
}

// WithHTTPClient swaps the underlying standard client, keeping the retry
// wrapper.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient.HTTPClient = httpClient
		}
	}
}

// NewClient creates a session against baseURL authenticating with token.
// Retrying is disabled unless WithRetryMax turns it on.
func NewClient(baseURL, token string, options ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 0
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = defaultTimeout
	// The default handler discards responses whose status the retry policy
	// considers retryable (429, 5xx). Pass them through so they reach the
	// status mapping in execute.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		userAgent:  defaultUserAgent,
		httpClient: retryClient,
	}

	for _, option := range options {
		option(client)
	}

	return client
}

// Do executes one call. Transport failures map to RequestError, non-2xx
// statuses to APIError, and 2xx responses with a non-JSON body to
// BadJSONError. Binary endpoints go through DoRaw instead.
func (c *Client) Do(ctx context.Context, request *Request) (*Response, error) {
	response, err := c.execute(ctx, request)
	if err != nil {
		return nil, err
	}

	if len(response.Body) > 0 && !isJSONContentType(response.ContentType) {
		return nil, &paperless.BadJSONError{
			StatusCode:  response.StatusCode,
			ContentType: response.ContentType,
			Err:         fmt.Errorf("content type %q is not JSON", response.ContentType),
		}
	}

	return response, nil
}

// DoRaw executes one call without the JSON content-type check, for file
// downloads and other binary endpoints.
func (c *Client) DoRaw(ctx context.Context, request *Request) (*Response, error) {
	return c.execute(ctx, request)
}

func (c *Client) execute(ctx context.Context, request *Request) (*Response, error) {
	fullURL := c.baseURL + request.Path
	if len(request.Query) > 0 {
		fullURL += "?" + request.Query.Encode()
	}

	body, contentType, err := encodeBody(request.Body)
	if err != nil {
		return nil, fmt.Errorf("encoding request body: %w", err)
	}

	httpRequest, err := retryablehttp.NewRequestWithContext(ctx, request.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpRequest.Header.Set("Accept", acceptHeader)
	httpRequest.Header.Set("User-Agent", c.userAgent)

	if c.token != "" {
		httpRequest.Header.Set("Authorization", "Token "+c.token)
	}

	if contentType != "" {
		httpRequest.Header.Set("Content-Type", contentType)
	}

	for name, values := range request.Headers {
		for _, value := range values {
			httpRequest.Header.Set(name, value)
		}
	}

	if c.debug && c.logger != nil {
		c.logger.Printf("request %s %s", request.Method, fullURL)
	}

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, &paperless.RequestError{
			Method: request.Method,
			URL:    c.baseURL + request.Path,
			Params: request.Query,
			Err:    err,
		}
	}
	defer func() { _ = httpResponse.Body.Close() }()

	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, &paperless.RequestError{
			Method: request.Method,
			URL:    c.baseURL + request.Path,
			Params: request.Query,
			Err:    fmt.Errorf("reading response body: %w", err),
		}
	}

	response := &Response{
		StatusCode:  httpResponse.StatusCode,
		Headers:     httpResponse.Header,
		Body:        responseBody,
		ContentType: httpResponse.Header.Get("Content-Type"),
	}

	if c.debug && c.logger != nil {
		c.logger.Printf("response %s %s: %d (%d bytes)",
			request.Method, fullURL, response.StatusCode, len(responseBody))
	}

	if httpResponse.StatusCode >= http.StatusBadRequest {
		return nil, apiError(response)
	}

	return response, nil
}

func apiError(response *Response) error {
	apiErr := &paperless.APIError{StatusCode: response.StatusCode}

	if isJSONContentType(response.ContentType) {
		var payload map[string]any
		if err := json.Unmarshal(response.Body, &payload); err == nil {
			apiErr.Payload = payload

			return apiErr
		}
	}

	body := strings.TrimSpace(string(response.Body))
	if body != "" {
		apiErr.Payload = map[string]any{"error": body}
	}

	return apiErr
}

func encodeBody(body any) (any, string, error) {
	switch typed := body.(type) {
	case nil:
		return nil, "", nil
	case []byte:
		return typed, "application/json", nil
	case json.RawMessage:
		return []byte(typed), "application/json", nil
	default:
		data, err := json.Marshal(body)
		if err != nil {
			return nil, "", err
		}

		return data, "application/json", nil
	}
}

func isJSONContentType(contentType string) bool {
	if contentType == "" {
		return false
	}

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == "application/json"
}

// Get issues a GET for a JSON resource.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// GetRaw issues a GET for a binary resource.
func (c *Client) GetRaw(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.DoRaw(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch issues a PATCH with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.DoRaw(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// PostMultipart sends fields and an optional file as a multipart form.
// Nil field values are omitted, slices repeat the field once per element, and
// times are rendered in RFC 3339. Everything else is rendered with fmt.
func (c *Client) PostMultipart(ctx context.Context, path string, fields map[string]any, file *FilePart) (*Response, error) {
	var buffer bytes.Buffer

	writer := multipart.NewWriter(&buffer)

	for name, value := range fields {
		err := writeFormField(writer, name, value)
		if err != nil {
			return nil, fmt.Errorf("encoding form field %q: %w", name, err)
		}
	}

	if file != nil {
		part, err := writer.CreateFormFile(file.FieldName, file.Filename)
		if err != nil {
			return nil, fmt.Errorf("creating file part: %w", err)
		}

		_, err = part.Write(file.Content)
		if err != nil {
			return nil, fmt.Errorf("writing file part: %w", err)
		}
	}

	err := writer.Close()
	if err != nil {
		return nil, fmt.Errorf("finalizing multipart form: %w", err)
	}

	fullURL := c.baseURL + path

	httpRequest, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, fullURL, buffer.Bytes())
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	httpRequest.Header.Set("Accept", acceptHeader)
	httpRequest.Header.Set("User-Agent", c.userAgent)
	httpRequest.Header.Set("Content-Type", writer.FormDataContentType())

	if c.token != "" {
		httpRequest.Header.Set("Authorization", "Token "+c.token)
	}

	httpResponse, err := c.httpClient.Do(httpRequest)
	if err != nil {
		return nil, &paperless.RequestError{
			Method: http.MethodPost,
			URL:    fullURL,
			Err:    err,
		}
	}
	defer func() { _ = httpResponse.Body.Close() }()

	responseBody, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, &paperless.RequestError{
			Method: http.MethodPost,
			URL:    fullURL,
			Err:    fmt.Errorf("reading response body: %w", err),
		}
	}

	response := &Response{
		StatusCode:  httpResponse.StatusCode,
		Headers:     httpResponse.Header,
		Body:        responseBody,
		ContentType: httpResponse.Header.Get("Content-Type"),
	}

	if httpResponse.StatusCode >= http.StatusBadRequest {
		return nil, apiError(response)
	}

	return response, nil
}

func writeFormField(writer *multipart.Writer, name string, value any) error {
	switch typed := value.(type) {
	case nil:
		return nil
	case []int64:
		for _, item := range typed {
			err := writer.WriteField(name, fmt.Sprint(item))
			if err != nil {
				return err
			}
		}

		return nil
	case []string:
		for _, item := range typed {
			err := writer.WriteField(name, item)
			if err != nil {
				return err
			}
		}

		return nil
	case []any:
		for _, item := range typed {
			err := writeFormField(writer, name, item)
			if err != nil {
				return err
			}
		}

		return nil
	case time.Time:
		return writer.WriteField(name, typed.Format(time.RFC3339))
	case *time.Time:
		if typed == nil {
			return nil
		}

		return writer.WriteField(name, typed.Format(time.RFC3339))
	case string:
		return writer.WriteField(name, typed)
	default:
		return writer.WriteField(name, fmt.Sprint(value))
	}
}

// BaseURL returns the normalized endpoint the session talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}
