package cli

import (
	"fmt"
	"text/tabwriter"

	"lm-events/internal/events"

	"github.com/spf13/cobra"
)

func newEventsCommand(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "events",
		Short: "Inspect logged events",
	}
	cmd.AddCommand(newEventsListCommand(st))
	return cmd
}

func newEventsListCommand(st *state) *cobra.Command {
	var skip, limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List events with a one-line preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := st.services.Client.Events.ReadEvents(cmd.Context(), skip, limit)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tTIMESTAMP\tPREVIEW")
			for i := range page.Data {
				e := &page.Data[i]
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.ID, e.Name, e.Timestamp, events.Preview(e))
			}
			if err := w.Flush(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d events\n", len(page.Data), page.Count)
			return nil
		},
	}

	cmd.Flags().IntVar(&skip, "skip", 0, "events to skip")
	cmd.Flags().IntVar(&limit, "limit", 100, "events to list")
	return cmd
}
