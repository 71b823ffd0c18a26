package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/paperless-community/paperless-go/pkg/pngx"
)

// NewLoginCommand creates the login command. It exchanges credentials for an
// API token and stores it in the config file.
func NewLoginCommand() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login [url]",
		Short: "Obtain and store an API token",
		Long:  "Exchange a username and password for an API token and save it to the config file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint := viper.GetString("url")
			if len(args) > 0 {
				endpoint = args[0]
			}

			if endpoint == "" {
				return ErrNoServerConfigured
			}

			if username == "" {
				fmt.Print("Username: ")

				if _, err := fmt.Scanln(&username); err != nil {
					return fmt.Errorf("reading username: %w", err)
				}
			}

			fmt.Print("Password: ")

			passwordBytes, err := term.ReadPassword(int(syscall.Stdin))

			fmt.Println()

			if err != nil {
				return fmt.Errorf("reading password: %w", err)
			}

			token, err := pngx.ObtainToken(cmd.Context(), endpoint, username, strings.TrimSpace(string(passwordBytes)))
			if err != nil {
				return err
			}

			viper.Set("url", endpoint)
			viper.Set("token", token)

			if err := saveConfig(); err != nil {
				return err
			}

			fmt.Println("Token stored.")

			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "U", "", "username to authenticate with")

	return cmd
}

func saveConfig() error {
	if file := viper.ConfigFileUsed(); file != "" {
		return viper.WriteConfig()
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("finding home directory: %w", err)
	}

	path := filepath.Join(home, ".paperless", "config.yml")

	err = viper.WriteConfigAs(path)
	if err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
