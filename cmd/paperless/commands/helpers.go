package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/paperless-community/paperless-go/pkg/paperless"
	"github.com/paperless-community/paperless-go/pkg/pngx"
)

// Output formats.
const (
	OutputFormatJSON = "json"
	OutputFormatYAML = "yaml"
)

var (
	ErrNoServerConfigured = errors.New("no server configured, run 'paperless login' or set --url and --token")
	ErrDocumentIDRequired = errors.New("document id is required")
	ErrTagNotFound        = errors.New("tag not found")
)

// createClient builds an initialized client from flags, environment, and the
// config file.
func createClient(ctx context.Context) (paperless.Client, error) {
	endpoint := viper.GetString("url")
	token := viper.GetString("token")

	if endpoint == "" || token == "" {
		return nil, ErrNoServerConfigured
	}

	config := &paperless.Config{
		Endpoint: endpoint,
		Token:    token,
		Debug:    viper.GetBool("verbose"),
	}

	if config.Debug {
		config.Logger = log.New(os.Stderr, "paperless: ", log.LstdFlags)
	}

	return pngx.New(ctx, config)
}

// renderStructured writes value as JSON or YAML depending on the output flag
// and reports whether it handled the output.
func renderStructured(value any) (bool, error) {
	switch viper.GetString("output") {
	case OutputFormatJSON:
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return true, encoder.Encode(value)
	case OutputFormatYAML:
		encoder := yaml.NewEncoder(os.Stdout)

		return true, encoder.Encode(value)
	default:
		return false, nil
	}
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}

	return t.Format("2006-01-02 15:04:05")
}

func formatID(id *int64) string {
	if id == nil {
		return ""
	}

	return fmt.Sprintf("%d", *id)
}
