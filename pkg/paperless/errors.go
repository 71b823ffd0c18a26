package paperless

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Initialization errors. All of them unwrap to ErrInitialization so callers
// can match the whole family with a single errors.Is check.
var (
	ErrInitialization        = errors.New("client initialization failed")
	ErrConnection            = fmt.Errorf("%w: host unreachable", ErrInitialization)
	ErrInvalidToken          = fmt.Errorf("%w: invalid authentication token", ErrInitialization)
	ErrInactiveOrDeletedUser = fmt.Errorf("%w: user is inactive or deleted", ErrInitialization)
	ErrForbidden             = fmt.Errorf("%w: forbidden", ErrInitialization)
)

// Static errors for model misuse.
var (
	ErrDraftNotSupported  = errors.New("resource does not support drafts")
	ErrPrimaryKeyRequired = errors.New("operation requires a primary key")
	ErrEndpointRequired   = errors.New("base URL is required")
	ErrTokenRequired      = errors.New("authentication token is required")
	ErrConfigRequired     = errors.New("config is required")
	ErrNotInitialized     = errors.New("client is not initialized")
)

// RequestError wraps a transport-level failure of a single call. It preserves
// the full call context so callers can log or retry on their side.
type RequestError struct {
	Method string
	URL    string
	Params url.Values
	Err    error
}

func (e *RequestError) Error() string {
	if len(e.Params) > 0 {
		return fmt.Sprintf("request %s %s?%s failed: %v", e.Method, e.URL, e.Params.Encode(), e.Err)
	}

	return fmt.Sprintf("request %s %s failed: %v", e.Method, e.URL, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// BadJSONError reports a 2xx response whose body was not parseable JSON or
// whose content type was not application/json.
type BadJSONError struct {
	StatusCode  int
	ContentType string
	Err         error
}

func (e *BadJSONError) Error() string {
	return fmt.Sprintf("expected JSON response, got %q (status %d): %v", e.ContentType, e.StatusCode, e.Err)
}

func (e *BadJSONError) Unwrap() error {
	return e.Err
}

// APIError is a structured error payload returned by the server, typically on
// HTTP 400. The payload is either {"error": ...} or a map of field name to a
// list of messages; nested maps are flattened depth-first.
type APIError struct {
	StatusCode int
	Payload    map[string]any
}

func (e *APIError) Error() string {
	messages := e.Messages()
	if len(messages) == 0 {
		return fmt.Sprintf("Paperless: request failed with status %d", e.StatusCode)
	}

	return strings.Join(messages, "; ")
}

// Messages flattens the error payload into one message per leaf, each prefixed
// with the key path that led to it.
func (e *APIError) Messages() []string {
	var messages []string

	flattenErrorPayload(nil, e.Payload, &messages)

	return messages
}

func flattenErrorPayload(path []string, value any, out *[]string) {
	switch typed := value.(type) {
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}

		sort.Strings(keys)

		for _, key := range keys {
			next := make([]string, 0, len(path)+1)
			next = append(next, path...)
			next = append(next, key)
			flattenErrorPayload(next, typed[key], out)
		}
	case []any:
		for _, item := range typed {
			flattenErrorPayload(path, item, out)
		}
	default:
		prefix := "Paperless"
		if len(path) > 0 && !(len(path) == 1 && path[0] == "error") {
			prefix = fmt.Sprintf("Paperless [%s]", strings.Join(path, " -> "))
		}

		*out = append(*out, fmt.Sprintf("%s: %v", prefix, typed))
	}
}

// DraftFieldRequiredError reports required create-request fields that were
// left unset. Raised before any network call.
type DraftFieldRequiredError struct {
	Fields []string
}

func (e *DraftFieldRequiredError) Error() string {
	return fmt.Sprintf("required draft fields missing: %s", strings.Join(e.Fields, ", "))
}

// TaskNotFoundError reports a task UUID lookup that matched nothing.
type TaskNotFoundError struct {
	TaskID string
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task %q not found", e.TaskID)
}

// ASNRequestError reports a failed next-ASN request.
type ASNRequestError struct {
	StatusCode int
	Body       string
}

func (e *ASNRequestError) Error() string {
	return fmt.Sprintf("next ASN request failed with status %d: %s", e.StatusCode, e.Body)
}

// IsInitializationError reports whether err belongs to the initialization
// family (connection, invalid token, inactive user, forbidden, or any other
// init-time failure).
func IsInitializationError(err error) bool {
	return errors.Is(err, ErrInitialization)
}
