// ideias is the terminal client for the Banco de Ideias API. It keeps a
// signed-in session on disk and mirrors the app's dashboard, bank and
// calendar views over the cached idea list.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bancoideias/backend-go/internal/client"
)

var (
	apiURL      string
	sessionPath string
)

var rootCmd = &cobra.Command{
	Use:           "ideias",
	Short:         "Client for the Banco de Ideias API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPIURL(), "base URL of the API")
	rootCmd.PersistentFlags().StringVar(&sessionPath, "session", defaultSessionPath(), "path of the session file")

	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(meCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(calendarCmd)
	rootCmd.AddCommand(healthCmd)
}

func defaultAPIURL() string {
	if v := os.Getenv("IDEIAS_API"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func defaultSessionPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = "."
	}
	return filepath.Join(dir, "ideias", "session.json")
}

// newClient builds the API client with a quiet logger; the CLI reports
// failures through command errors, not log lines.
func newClient() *client.Client {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	return client.New(apiURL, sessionPath, logger)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that the API is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().Health(cmd.Context()); err != nil {
			return fmt.Errorf("API unreachable: %w", err)
		}
		fmt.Println("ok")
		return nil
	},
}
