package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"lm-events/internal/aggregators"
	"lm-events/internal/models"

	"github.com/spf13/cobra"
)

func newVolumesCommand(st *state) *cobra.Command {
	var limit int
	var save, latest bool

	cmd := &cobra.Command{
		Use:   "volumes",
		Short: "Count request events per model and time bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if latest {
				snapshot, err := st.services.VolumeSnapshotStore.Latest(ctx, st.services.Policy.WindowSize)
				if err != nil {
					return err
				}
				return printVolumes(cmd.OutOrStdout(), snapshot)
			}

			report, svcErr := st.services.VolumeService.Volumes(ctx, limit)
			if svcErr != nil {
				return svcErr
			}
			snapshot := &models.VolumeSnapshot{
				WindowSize:  report.WindowSize,
				GeneratedAt: time.Now().UTC(),
				Collected:   report.Collected,
				Volumes:     report.Matrix,
			}
			if save {
				key, err := st.services.VolumeSnapshotStore.Upsert(ctx, snapshot)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "saved %s\n", key)
			}
			return printVolumes(cmd.OutOrStdout(), snapshot)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 0, "events to collect (0 uses ingestion.max_events)")
	cmd.Flags().BoolVar(&save, "save", false, "store the result as a snapshot")
	cmd.Flags().BoolVar(&latest, "latest", false, "print the latest stored snapshot instead of querying")
	cmd.MarkFlagsMutuallyExclusive("save", "latest")
	return cmd
}

// printVolumes renders one row per bucket and one column per model.
func printVolumes(out io.Writer, snapshot *models.VolumeSnapshot) error {
	matrix := aggregators.VolumeMatrix(snapshot.Volumes)
	modelKeys := matrix.Models()
	buckets := matrix.Hours()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "%s\t%s\t\n", strings.ToUpper(string(snapshot.WindowSize)), strings.Join(modelKeys, "\t"))
	for _, bucket := range buckets {
		row := make([]string, 0, len(modelKeys))
		for _, m := range modelKeys {
			row = append(row, fmt.Sprint(matrix.Get(m, bucket)))
		}
		fmt.Fprintf(w, "%s\t%s\t\n", bucket, strings.Join(row, "\t"))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(out, "%d requests counted in %d events\n", matrix.Total(), snapshot.Collected)
	return nil
}
