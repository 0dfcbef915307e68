package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newSettingsCommand(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Read and write settings",
	}

	var skip, limit int
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := st.services.Client.Settings.ReadSettings(cmd.Context(), skip, limit)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTIMESTAMP\tCONTENT")
			for _, s := range out.Data {
				fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Timestamp, s.Content)
			}
			return w.Flush()
		},
	}
	listCmd.Flags().IntVar(&skip, "skip", 0, "settings to skip")
	listCmd.Flags().IntVar(&limit, "limit", 100, "settings to list")

	getCmd := &cobra.Command{
		Use:   "get <name>",
		Short: "Print the content of a setting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setting, err := st.services.Client.Settings.ReadSetting(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), setting.Content)
			return nil
		},
	}

	setCmd := &cobra.Command{
		Use:   "set <name> <content>",
		Short: "Create or replace a setting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			setting, err := st.services.Client.Settings.CreateSettingGet(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", setting.Name, setting.Content)
			return nil
		},
	}

	cmd.AddCommand(listCmd, getCmd, setCmd)
	return cmd
}
