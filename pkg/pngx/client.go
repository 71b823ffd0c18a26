// Package pngx constructs API clients. It is the public entry point of the
// module; the typed surface it returns is defined in pkg/paperless.
package pngx

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/paperless-community/paperless-go/internal/client"
	"github.com/paperless-community/paperless-go/pkg/paperless"
)

// New creates a client from config and validates the connection. The
// endpoint is normalized first: a missing scheme defaults to https and a
// trailing slash is dropped.
func New(ctx context.Context, config *paperless.Config) (paperless.Client, error) {
	if config == nil {
		return nil, paperless.ErrConfigRequired
	}

	normalized, err := normalizeEndpoint(config.Endpoint)
	if err != nil {
		return nil, err
	}

	scoped := *config
	scoped.Endpoint = normalized

	c, err := client.New(ctx, &scoped)
	if err != nil {
		return nil, err
	}

	err = c.Initialize(ctx)
	if err != nil {
		_ = c.Close()

		return nil, err
	}

	return c, nil
}

// NewWithToken creates a client from just an endpoint and token, using
// defaults for everything else.
func NewWithToken(ctx context.Context, endpoint, token string) (paperless.Client, error) {
	return New(ctx, &paperless.Config{
		Endpoint: endpoint,
		Token:    token,
	})
}

// ObtainToken exchanges username and password for an API token.
func ObtainToken(ctx context.Context, endpoint, username, password string) (string, error) {
	normalized, err := normalizeEndpoint(endpoint)
	if err != nil {
		return "", err
	}

	return client.ObtainToken(ctx, normalized, username, password)
}

func normalizeEndpoint(endpoint string) (string, error) {
	if endpoint == "" {
		return "", paperless.ErrEndpointRequired
	}

	trimmed := strings.TrimSuffix(strings.TrimSpace(endpoint), "/")

	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parsing endpoint %q: %w", endpoint, err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		parsed.Scheme = "https"
	}

	if parsed.Host == "" {
		return "", fmt.Errorf("endpoint %q has no host: %w", endpoint, paperless.ErrEndpointRequired)
	}

	return parsed.Scheme + "://" + parsed.Host + strings.TrimSuffix(parsed.Path, "/"), nil
}
