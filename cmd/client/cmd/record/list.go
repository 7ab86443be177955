package record

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vaultkeeper/cmd/client/cmd/cli"
	"vaultkeeper/internal/domain/record"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list ENTITY_ID",
		Short: "List an entity's records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			records, err := env.Vault.ListRecords(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return env.Print(records, func(w io.Writer) error {
				return printRecordsTable(w, records)
			})
		},
	}
}

func printRecordsTable(w io.Writer, records []record.Record) error {
	if len(records) == 0 {
		cli.Dim(w, "no records")
		return nil
	}

	tw := cli.NewTable(w, "ID", "TYPE", "TITLE", "FILES", "UPDATED")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\n",
			rec.ID,
			rec.RecordType,
			cli.Truncate(rec.Title, 30),
			len(rec.DocumentIDs()),
			rec.UpdatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d record(s)\n", len(records))
	return nil
}
