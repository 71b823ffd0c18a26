package client

import (
	"context"
	"fmt"

	internalhttp "github.com/paperless-community/paperless-go/internal/http"
	"github.com/paperless-community/paperless-go/pkg/paperless"
)

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

// ObtainToken exchanges username and password for an API token. It is the
// only call that runs unauthenticated.
func ObtainToken(ctx context.Context, endpoint, username, password string) (string, error) {
	if endpoint == "" {
		return "", paperless.ErrEndpointRequired
	}

	session := internalhttp.NewClient(endpoint, "")

	response, err := session.Post(ctx, "/api/token/", tokenRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", fmt.Errorf("obtaining token: %w", err)
	}

	var parsed tokenResponse

	err = response.JSON(&parsed)
	if err != nil {
		return "", fmt.Errorf("parsing token response: %w", err)
	}

	if parsed.Token == "" {
		return "", fmt.Errorf("obtaining token: %w", paperless.ErrInvalidToken)
	}

	return parsed.Token, nil
}
