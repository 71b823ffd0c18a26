// Package client implements the concrete API client behind the interfaces of
// pkg/paperless. Construct one through the pngx package.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"sync"

	internalhttp "github.com/paperless-community/paperless-go/internal/http"
	"github.com/paperless-community/paperless-go/pkg/paperless"
)

const versionHeader = "X-Version"

// Client is the concrete implementation of paperless.Client. One instance
// serves one server and is safe for concurrent use after Initialize.
type Client struct {
	config *paperless.Config
	http   *internalhttp.Client
	logger paperless.Logger
	cache  paperless.Cache

	mu          sync.RWMutex
	initialized bool
	hostVersion string
	remote      []paperless.ResourceType

	closeOnce sync.Once

	correspondents *CorrespondentsClient
	customFields   *CustomFieldsClient
	documents      *DocumentsClient
	documentTypes  *DocumentTypesClient
	groups         *resourceClient[paperless.Group]
	mailAccounts   *resourceClient[paperless.MailAccount]
	mailRules      *resourceClient[paperless.MailRule]
	savedViews     *SavedViewsClient
	shareLinks     *ShareLinksClient
	storagePaths   *StoragePathsClient
	tags           *TagsClient
	tasks          *TasksClient
	users          *resourceClient[paperless.User]
	workflows      *WorkflowsClient
}

// New builds a client from config. The server is not contacted until
// Initialize.
func New(ctx context.Context, config *paperless.Config) (*Client, error) {
	if config == nil {
		return nil, paperless.ErrConfigRequired
	}

	if config.Endpoint == "" {
		return nil, paperless.ErrEndpointRequired
	}

	if config.Token == "" {
		return nil, paperless.ErrTokenRequired
	}

	options := []internalhttp.Option{
		internalhttp.WithDebug(config.Debug),
	}

	if config.Logger != nil {
		options = append(options, internalhttp.WithLogger(config.Logger))
	}

	if config.UserAgent != "" {
		options = append(options, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		options = append(options, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		options = append(options, internalhttp.WithRetryMax(config.RetryMax))
	}

	cache, err := paperless.NewCache(ctx, config.CacheConfig)
	if err != nil {
		return nil, fmt.Errorf("building cache: %w", err)
	}

	c := &Client{
		config: config,
		http:   internalhttp.NewClient(config.Endpoint, config.Token, options...),
		logger: config.Logger,
		cache:  cache,
	}

	c.correspondents = newCorrespondentsClient(c)
	c.customFields = newCustomFieldsClient(c)
	c.documents = newDocumentsClient(c)
	c.documentTypes = newDocumentTypesClient(c)
	c.groups = newResourceClient(c, paperless.ResourceGroups,
		func(g *paperless.Group) int64 { return g.ID })
	c.mailAccounts = newResourceClient(c, paperless.ResourceMailAccounts,
		func(a *paperless.MailAccount) int64 { return a.ID })
	c.mailRules = newResourceClient(c, paperless.ResourceMailRules,
		func(r *paperless.MailRule) int64 { return r.ID })
	c.savedViews = newSavedViewsClient(c)
	c.shareLinks = newShareLinksClient(c)
	c.storagePaths = newStoragePathsClient(c)
	c.tags = newTagsClient(c)
	c.tasks = newTasksClient(c)
	c.users = newResourceClient(c, paperless.ResourceUsers,
		func(u *paperless.User) int64 { return u.ID })
	c.workflows = newWorkflowsClient(c)

	return c, nil
}

// Initialize probes the API root, validates the token, captures the server
// version, and reconciles the advertised resource set against the local
// descriptors. It must succeed before any resource accessor is used.
func (c *Client) Initialize(ctx context.Context) error {
	response, err := c.http.DoRaw(ctx, &internalhttp.Request{
		Method: http.MethodGet,
		Path:   "/api/",
	})
	if err != nil {
		var requestErr *paperless.RequestError
		if errors.As(err, &requestErr) {
			return fmt.Errorf("%w: %w", paperless.ErrConnection, requestErr.Err)
		}

		var apiErr *paperless.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.StatusCode {
			case http.StatusUnauthorized:
				// The server answers 401 for a bad token and for a token
				// whose user is gone; only the body tells them apart.
				if isInactiveUser(apiErr) {
					return paperless.ErrInactiveOrDeletedUser
				}

				return paperless.ErrInvalidToken
			case http.StatusForbidden:
				return paperless.ErrForbidden
			}
		}

		return fmt.Errorf("%w: %w", paperless.ErrInitialization, err)
	}

	if response.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d from API root",
			paperless.ErrInitialization, response.StatusCode)
	}

	var endpoints map[string]string

	err = json.Unmarshal(response.Body, &endpoints)
	if err != nil {
		return fmt.Errorf("%w: parsing API root: %w", paperless.ErrInitialization, err)
	}

	advertised := make(map[paperless.ResourceType]struct{}, len(endpoints))
	remote := make([]paperless.ResourceType, 0, len(endpoints))

	for name := range endpoints {
		resource := paperless.ResourceType(name)
		advertised[resource] = struct{}{}
		remote = append(remote, resource)
	}

	sort.Slice(remote, func(i, j int) bool { return remote[i] < remote[j] })

	missing, unused := paperless.DiffResources(advertised)
	if len(missing) > 0 && c.logger != nil {
		c.logger.Printf("host does not advertise %v, it may be outdated", missing)
	}

	if len(unused) > 0 && c.logger != nil {
		c.logger.Printf("host offers %v, which this client does not use", unused)
	}

	c.mu.Lock()
	c.initialized = true
	c.hostVersion = response.Headers.Get(versionHeader)
	c.remote = remote
	c.mu.Unlock()

	return nil
}

func isInactiveUser(apiErr *paperless.APIError) bool {
	for _, message := range apiErr.Messages() {
		if strings.Contains(strings.ToLower(message), "inactive") {
			return true
		}
	}

	return false
}

// Close releases the cache backend. Safe to call more than once.
func (c *Client) Close() error {
	var err error

	c.closeOnce.Do(func() {
		err = c.cache.Close()
	})

	return err
}

// HostVersion is the server version captured during Initialize.
func (c *Client) HostVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.hostVersion
}

// RemoteResources is the resource set the server advertised during
// Initialize, sorted by name.
func (c *Client) RemoteResources() []paperless.ResourceType {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]paperless.ResourceType(nil), c.remote...)
}

// Initialized reports whether Initialize has succeeded.
func (c *Client) Initialized() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.initialized
}

func (c *Client) Correspondents() paperless.CorrespondentsClient { return c.correspondents }
func (c *Client) CustomFields() paperless.CustomFieldsClient     { return c.customFields }
func (c *Client) Documents() paperless.DocumentsClient           { return c.documents }
func (c *Client) DocumentTypes() paperless.DocumentTypesClient   { return c.documentTypes }
func (c *Client) Groups() paperless.GroupsClient                 { return c.groups }
func (c *Client) MailAccounts() paperless.MailAccountsClient     { return c.mailAccounts }
func (c *Client) MailRules() paperless.MailRulesClient           { return c.mailRules }
func (c *Client) SavedViews() paperless.SavedViewsClient         { return c.savedViews }
func (c *Client) ShareLinks() paperless.ShareLinksClient         { return c.shareLinks }
func (c *Client) StoragePaths() paperless.StoragePathsClient     { return c.storagePaths }
func (c *Client) Tags() paperless.TagsClient                     { return c.tags }
func (c *Client) Tasks() paperless.TasksClient                   { return c.tasks }
func (c *Client) Users() paperless.UsersClient                   { return c.users }
func (c *Client) Workflows() paperless.WorkflowsClient           { return c.workflows }

func getSingleton[T any](ctx context.Context, c *Client, resource paperless.ResourceType) (*T, error) {
	descriptor, ok := paperless.Descriptor(resource)
	if !ok {
		return nil, fmt.Errorf("no descriptor registered for resource %q", resource)
	}

	response, err := c.http.Get(ctx, descriptor.CollectionPath, nil)
	if err != nil {
		return nil, fmt.Errorf("getting %s: %w", resource, err)
	}

	var record T

	err = response.JSON(&record)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", resource, err)
	}

	return &record, nil
}

// Status reads the system health endpoint.
func (c *Client) Status(ctx context.Context) (*paperless.SystemStatus, error) {
	return getSingleton[paperless.SystemStatus](ctx, c, paperless.ResourceStatus)
}

// Statistics reads the aggregate statistics endpoint.
func (c *Client) Statistics(ctx context.Context) (*paperless.Statistics, error) {
	return getSingleton[paperless.Statistics](ctx, c, paperless.ResourceStatistics)
}

// RemoteVersion reads the update-check endpoint.
func (c *Client) RemoteVersion(ctx context.Context) (*paperless.RemoteVersion, error) {
	return getSingleton[paperless.RemoteVersion](ctx, c, paperless.ResourceRemoteVersion)
}

// AppConfig reads the application configuration singleton. The server
// renders it as a one-element list.
func (c *Client) AppConfig(ctx context.Context) (*paperless.AppConfig, error) {
	descriptor, _ := paperless.Descriptor(paperless.ResourceConfig)

	response, err := c.http.Get(ctx, descriptor.CollectionPath, nil)
	if err != nil {
		return nil, fmt.Errorf("getting config: %w", err)
	}

	var configs []paperless.AppConfig

	err = json.Unmarshal(response.Body, &configs)
	if err != nil {
		// Newer servers render the singleton as a bare object.
		var single paperless.AppConfig
		if objErr := response.JSON(&single); objErr != nil {
			return nil, fmt.Errorf("parsing config: %w", objErr)
		}

		return &single, nil
	}

	if len(configs) == 0 {
		return nil, fmt.Errorf("parsing config: empty response")
	}

	return &configs[0], nil
}
