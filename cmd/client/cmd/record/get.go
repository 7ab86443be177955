package record

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vaultkeeper/cmd/client/cmd/cli"
	"vaultkeeper/internal/domain/normalize"
	"vaultkeeper/internal/domain/record"
)

func find(ctx context.Context, env *cli.Env, entityID, recordID string) (*record.Record, error) {
	rec, err := env.Vault.GetRecord(ctx, entityID, recordID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("record %s not found for entity %s", recordID, entityID)
	}
	return rec, nil
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get ENTITY_ID RECORD_ID",
		Short: "Print a stored record as JSON",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			rec, err := find(cmd.Context(), env, args[0], args[1])
			if err != nil {
				return err
			}
			env.JSON = true
			return env.Print(rec, nil)
		},
	}
}

type shown struct {
	Record record.Record     `json:"record"`
	Rows   []normalize.Row   `json:"rows"`
	Tables []normalize.Table `json:"tables"`
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show ENTITY_ID RECORD_ID",
		Short: "Show a record the way it reads on screen",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			rec, err := find(cmd.Context(), env, args[0], args[1])
			if err != nil {
				return err
			}

			view := shown{
				Record: *rec,
				Rows:   env.Vault.GetDisplayRows(rec.RecordType, rec.Data),
				Tables: env.Vault.GetDisplayTables(rec.RecordType, rec.Data),
			}
			return env.Print(view, func(w io.Writer) error {
				printView(w, view)
				return nil
			})
		},
	}
}

func printView(w io.Writer, v shown) {
	cli.Heading(w, v.Record.Title)
	cli.Dim(w, "%s · %s", v.Record.RecordType.DisplayName(), v.Record.ID)
	fmt.Fprintln(w)

	for _, row := range v.Rows {
		cli.Label(w, row.Label, row.Value)
	}

	for _, t := range v.Tables {
		fmt.Fprintln(w)
		cli.Heading(w, t.Label)
		for i, item := range t.Items {
			title := item.Title
			if title == "" {
				title = fmt.Sprintf("#%d", i+1)
			}
			fmt.Fprintf(w, "  %s\n", title)
			for _, row := range item.Rows {
				fmt.Fprint(w, "    ")
				cli.Label(w, row.Label, row.Value)
			}
		}
	}

	if ids := v.Record.DocumentIDs(); len(ids) > 0 {
		fmt.Fprintln(w)
		cli.Label(w, "Documents", fmt.Sprint(ids))
	}
}
