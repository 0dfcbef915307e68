package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"lm-events/internal/models"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCommand(st *state) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange a username and password for an access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(username) == "" {
				return errors.New("--username is required")
			}
			secret := password
			if secret == "" {
				var err error
				secret, err = st.readPassword(cmd)
				if err != nil {
					return err
				}
			}

			token, err := st.services.Client.Login.AccessToken(cmd.Context(), username, secret)
			if err != nil {
				return err
			}
			err = saveCredentials(st.credentialsPath, &credentials{
				BaseURL:     st.config.Upstream.BaseURL,
				AccessToken: token.AccessToken,
				TokenType:   token.TokenType,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (prompted when omitted)")
	return cmd
}

// readPassword prompts without echo on a terminal and reads one line
// otherwise.
func (st *state) readPassword(cmd *cobra.Command) (string, error) {
	if f, ok := st.stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	line, err := bufio.NewReader(st.stdin).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func newWhoamiCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account of the current access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := st.services.Client.Login.TestToken(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), displayName(user))
			return nil
		},
	}
}

func newUserCommand(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "user <id>",
		Short: "Show an account by id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid user id %q", args[0])
			}
			user, err := st.services.Client.Users.ReadUserByID(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), displayName(user))
			return nil
		},
	}
}

func displayName(user *models.UserOut) string {
	if user.FullName != nil && *user.FullName != "" {
		return fmt.Sprintf("%s <%s>", *user.FullName, user.Email)
	}
	return user.Email
}
