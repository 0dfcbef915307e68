// Package cli implements the eventctl command tree.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"lm-events/internal/app"
	"lm-events/internal/dispatch"
	"lm-events/internal/shared/configs"
	"lm-events/internal/shared/loggers"

	"github.com/spf13/cobra"
)

const defaultConfigPath = "./configs/configs.yml"

// state is shared by the subcommands of one invocation.
type state struct {
	configPath      string
	credentialsPath string

	config   *configs.Config
	services *app.Services
	stdin    io.Reader
}

// NewRootCommand builds the eventctl command tree.
func NewRootCommand() *cobra.Command {
	st := &state{stdin: os.Stdin}

	rootCmd := &cobra.Command{
		Use:   "eventctl",
		Short: "Operate on the LLM event log",
		Long: `eventctl talks to the events API: it logs in, lists events with a
one-line preview, aggregates request volumes per model and bucket, downloads
bulk exports and reads or writes settings.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&st.configPath, "config", defaultConfigPath, "config file")
	rootCmd.PersistentFlags().StringVar(&st.credentialsPath, "credentials", defaultCredentialsPath(), "file holding the access token written by login")

	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(newLoginCommand(st))
	rootCmd.AddCommand(newWhoamiCommand(st))
	rootCmd.AddCommand(newUserCommand(st))
	rootCmd.AddCommand(newEventsCommand(st))
	rootCmd.AddCommand(newVolumesCommand(st))
	rootCmd.AddCommand(newDownloadCommand(st))
	rootCmd.AddCommand(newSettingsCommand(st))

	return rootCmd
}

// Execute runs eventctl with the process arguments.
func Execute() error {
	return NewRootCommand().Execute()
}

func (st *state) init(cmd *cobra.Command) error {
	cfg, err := configs.LoadConfig(st.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	st.config = cfg

	logger, err := loggers.NewWithWriter(cfg.Log.Level, cmd.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = logger.With().Str(loggers.FieldApp, "eventctl").Logger()
	cmd.SetContext(logger.WithContext(cmd.Context()))

	services, err := app.NewServices(cfg, st.tokenProvider())
	if err != nil {
		return err
	}
	st.services = services
	return nil
}

// tokenProvider reads the saved access token lazily on every dispatch and
// falls back to upstream.token. A saved token is only sent to the base URL
// it was issued by.
func (st *state) tokenProvider() dispatch.TokenProvider {
	return dispatch.TokenFunc(func() (string, error) {
		creds, err := loadCredentials(st.credentialsPath)
		if err != nil {
			return "", err
		}
		if creds != nil && creds.AccessToken != "" && sameBaseURL(creds.BaseURL, st.config.Upstream.BaseURL) {
			return creds.AccessToken, nil
		}
		return st.config.Upstream.Token, nil
	})
}

func sameBaseURL(a, b string) bool {
	return strings.TrimRight(a, "/") == strings.TrimRight(b, "/")
}
