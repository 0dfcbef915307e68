package cli

import (
	"fmt"

	"lm-events/internal/ingestors"
	"lm-events/internal/models"

	"github.com/spf13/cobra"
)

func newDownloadCommand(st *state) *cobra.Command {
	var opts ingestors.DownloadOptions
	var list bool

	cmd := &cobra.Command{
		Use:       "download <parquet|csv>",
		Short:     "Download a bulk export of the events into file storage",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(models.ExportParquet), string(models.ExportCSV)},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := models.NewExportFormatFromString(args[0])
			if err != nil {
				return err
			}

			if list {
				exports, err := st.services.ExportStore.List(cmd.Context(), format)
				if err != nil {
					return err
				}
				for _, e := range exports {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%d\n", e.CreatedAt.Format("2006-01-02 15:04:05"), e.Key, e.Size)
				}
				return nil
			}

			info, err := st.services.ExportDownloader.Download(cmd.Context(), format, opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", info.Key, info.Size)
			return nil
		},
	}

	cmd.Flags().IntVar(&opts.Skip, "skip", 0, "events to skip")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "events to export (0 exports all)")
	cmd.Flags().BoolVar(&list, "list", false, "list stored exports instead of downloading")
	return cmd
}
