package paperless

import (
	"encoding/json"
	"fmt"
	"math"
	"time"
)

// Date is a calendar date without a time component, wired to the server's
// ISO-8601 date rendering.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

// NewDate builds a Date from year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// UnmarshalJSON accepts both bare dates and full timestamps; the time portion
// of a timestamp is discarded.
func (d *Date) UnmarshalJSON(data []byte) error {
	var raw string

	err := json.Unmarshal(data, &raw)
	if err != nil {
		return fmt.Errorf("parsing date: %w", err)
	}

	if len(raw) > len(dateLayout) {
		raw = raw[:len(dateLayout)]
	}

	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return fmt.Errorf("parsing date %q: %w", raw, err)
	}

	d.Time = parsed

	return nil
}

// MarshalJSON renders the date as YYYY-MM-DD.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// MatchingAlgorithm selects how a classifier resource (tag, correspondent,
// document type, storage path) matches documents.
type MatchingAlgorithm int

const (
	MatchNone    MatchingAlgorithm = 0
	MatchAny     MatchingAlgorithm = 1
	MatchAll     MatchingAlgorithm = 2
	MatchLiteral MatchingAlgorithm = 3
	MatchRegex   MatchingAlgorithm = 4
	MatchFuzzy   MatchingAlgorithm = 5
	MatchAuto    MatchingAlgorithm = 6

	// MatchUnknown absorbs values this client does not know about. Decoding
	// never fails on an unrecognized algorithm.
	MatchUnknown MatchingAlgorithm = -1
)

func (m *MatchingAlgorithm) UnmarshalJSON(data []byte) error {
	var value int

	if err := json.Unmarshal(data, &value); err != nil {
		*m = MatchUnknown

		return nil
	}

	if value < int(MatchNone) || value > int(MatchAuto) {
		*m = MatchUnknown
	} else {
		*m = MatchingAlgorithm(value)
	}

	return nil
}

func (m MatchingAlgorithm) String() string {
	switch m {
	case MatchNone:
		return "none"
	case MatchAny:
		return "any"
	case MatchAll:
		return "all"
	case MatchLiteral:
		return "literal"
	case MatchRegex:
		return "regex"
	case MatchFuzzy:
		return "fuzzy"
	case MatchAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// TaskStatus is the state of a server-side background task.
type TaskStatus string

const (
	TaskStatusPending TaskStatus = "PENDING"
	TaskStatusStarted TaskStatus = "STARTED"
	TaskStatusSuccess TaskStatus = "SUCCESS"
	TaskStatusFailure TaskStatus = "FAILURE"
	TaskStatusRetry   TaskStatus = "RETRY"
	TaskStatusRevoked TaskStatus = "REVOKED"
	TaskStatusUnknown TaskStatus = "UNKNOWN"
)

func (s *TaskStatus) UnmarshalJSON(data []byte) error {
	var value string

	if err := json.Unmarshal(data, &value); err != nil {
		*s = TaskStatusUnknown

		return nil
	}

	switch TaskStatus(value) {
	case TaskStatusPending, TaskStatusStarted, TaskStatusSuccess,
		TaskStatusFailure, TaskStatusRetry, TaskStatusRevoked:
		*s = TaskStatus(value)
	default:
		*s = TaskStatusUnknown
	}

	return nil
}

// ShareLinkFileVersion selects which stored file a share link points at.
type ShareLinkFileVersion string

const (
	ShareLinkOriginal ShareLinkFileVersion = "original"
	ShareLinkArchive  ShareLinkFileVersion = "archive"
	ShareLinkUnknown  ShareLinkFileVersion = "unknown"
)

func (v *ShareLinkFileVersion) UnmarshalJSON(data []byte) error {
	var value string

	if err := json.Unmarshal(data, &value); err != nil {
		*v = ShareLinkUnknown

		return nil
	}

	switch ShareLinkFileVersion(value) {
	case ShareLinkOriginal, ShareLinkArchive:
		*v = ShareLinkFileVersion(value)
	default:
		*v = ShareLinkUnknown
	}

	return nil
}

// PermissionSet names the users and groups holding one kind of permission.
type PermissionSet struct {
	Users  []int64 `json:"users"  yaml:"users"`
	Groups []int64 `json:"groups" yaml:"groups"`
}

// Permissions is the object-level permission table carried by securable
// records fetched with full_perms=true.
type Permissions struct {
	View   PermissionSet `json:"view"   yaml:"view"`
	Change PermissionSet `json:"change" yaml:"change"`
}

// SearchHit annotates a document produced by a server-side search or
// more-like query.
type SearchHit struct {
	Score          float64 `json:"score"           yaml:"score"`
	Highlights     string  `json:"highlights"      yaml:"highlights"`
	NoteHighlights string  `json:"note_highlights" yaml:"note_highlights"`
	Rank           int64   `json:"rank"            yaml:"rank"`
}

// ListResponse is one paginated collection response as the server renders it.
type ListResponse[T any] struct {
	Count    int64   `json:"count"    yaml:"count"`
	Next     *string `json:"next"     yaml:"next"`
	Previous *string `json:"previous" yaml:"previous"`
	All      []int64 `json:"all"      yaml:"all"`
	Results  []T     `json:"results"  yaml:"results"`
}

// Page is a ListResponse annotated with the client-side cursor that produced
// it.
type Page[T any] struct {
	ListResponse[T]

	// CurrentPage is the 1-based page number this response corresponds to.
	CurrentPage int

	// PageSize is the requested page size; the final page may hold fewer
	// items.
	PageSize int
}

// HasNextPage reports whether the server advertised a following page.
func (p *Page[T]) HasNextPage() bool {
	return p.Next != nil
}

// IsLastPage is the inverse of HasNextPage.
func (p *Page[T]) IsLastPage() bool {
	return !p.HasNextPage()
}

// LastPage returns the number of the final page under the current filter.
func (p *Page[T]) LastPage() int {
	if p.PageSize <= 0 {
		return 1
	}

	return int(math.Ceil(float64(p.Count) / float64(p.PageSize)))
}

// Items returns the records on this page in server order.
func (p *Page[T]) Items() []T {
	return p.Results
}
