package paperless

import (
	"context"
	"time"
)

// Getter fetches one record by primary key.
type Getter[T any] interface {
	Get(ctx context.Context, id int64) (*T, error)
}

// Lister walks a paginated collection. The scope of an iteration is the
// QueryParams passed to the call; callers never mutate shared client state to
// filter a listing.
type Lister[T any] interface {
	List(ctx context.Context, params *QueryParams) (*ListResponse[T], error)
	ListWithPath(ctx context.Context, path string, params *QueryParams) (*ListResponse[T], error)

	// Iterate returns a lazy iterator over every matching record.
	Iterate(ctx context.Context, params *QueryParams) *PageIterator[T]

	// AllIDs returns the primary keys of every matching record without
	// fetching the records themselves.
	AllIDs(ctx context.Context, params *QueryParams) ([]int64, error)

	// AsMap fetches the whole collection keyed by primary key.
	AsMap(ctx context.Context) (map[int64]T, error)
}

// Creator creates a record from a request payload.
type Creator[T any, R any] interface {
	Create(ctx context.Context, request *R) (*T, error)
}

// Updater writes changes back to the server.
type Updater[T any] interface {
	// Update sends only the fields that differ between original and modified
	// as a PATCH. When nothing differs it performs no request and reports
	// changed=false.
	Update(ctx context.Context, id int64, original, modified *T) (*T, bool, error)

	// UpdateFull replaces the record with a PUT.
	UpdateFull(ctx context.Context, id int64, record *T) (*T, error)
}

// Deleter removes a record by primary key.
type Deleter interface {
	Delete(ctx context.Context, id int64) (bool, error)
}

// Securable toggles whether list and get calls request the object-level
// permission table on each record.
type Securable interface {
	RequestPermissions(enabled bool)
	PermissionsRequested() bool
}

// Logger is the minimal logging surface the client writes to. The stdlib
// log.Logger and anything with a Printf satisfy it.
type Logger interface {
	Printf(format string, args ...any)
}

// Config holds everything needed to reach a server.
type Config struct {
	// Endpoint is the base URL of the server, e.g. "https://paperless.local".
	Endpoint string

	// Token is the API token sent on every request.
	Token string

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPTimeout bounds each request. Zero keeps the transport default.
	HTTPTimeout time.Duration

	// RetryMax enables transparent retries on transient transport failures.
	// Zero disables retrying.
	RetryMax int

	// Logger receives request traces when Debug is set and init warnings
	// always. Nil discards them.
	Logger Logger

	// Debug enables request and response tracing.
	Debug bool

	// CacheConfig selects the custom-field definition cache backend. Nil
	// selects the bounded in-memory cache.
	CacheConfig *CacheConfig
}

// Client is the typed surface over one server. Initialize must succeed before
// any resource accessor is used.
type Client interface {
	// Initialize probes the server, validates credentials, and records the
	// advertised resource set.
	Initialize(ctx context.Context) error

	// Close releases held connections and cache backends. Safe to call more
	// than once.
	Close() error

	// HostVersion is the server version captured during Initialize.
	HostVersion() string

	// RemoteResources is the resource set the server advertised during
	// Initialize.
	RemoteResources() []ResourceType

	Correspondents() CorrespondentsClient
	CustomFields() CustomFieldsClient
	Documents() DocumentsClient
	DocumentTypes() DocumentTypesClient
	Groups() GroupsClient
	MailAccounts() MailAccountsClient
	MailRules() MailRulesClient
	SavedViews() SavedViewsClient
	ShareLinks() ShareLinksClient
	StoragePaths() StoragePathsClient
	Tags() TagsClient
	Tasks() TasksClient
	Users() UsersClient
	Workflows() WorkflowsClient

	// Status, Statistics, RemoteVersion, and AppConfig read the singleton
	// endpoints.
	Status(ctx context.Context) (*SystemStatus, error)
	Statistics(ctx context.Context) (*Statistics, error)
	RemoteVersion(ctx context.Context) (*RemoteVersion, error)
	AppConfig(ctx context.Context) (*AppConfig, error)
}
