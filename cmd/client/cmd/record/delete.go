package record

import (
	"github.com/spf13/cobra"

	"vaultkeeper/cmd/client/cmd/cli"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ENTITY_ID RECORD_ID",
		Short: "Delete a record",
		Long:  `Deletes the record and drops it from the document index. Unknown ids are ignored.`,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			if err := env.Vault.DeleteRecord(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			env.Done("deleted %s", args[1])
			return nil
		},
	}
}
