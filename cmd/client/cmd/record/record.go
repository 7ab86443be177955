package record

import (
	"github.com/spf13/cobra"
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record",
		Short: "Manage an entity's records",
		Long:  `Create, inspect and delete the records that belong to one entity.`,
	}
	cmd.AddCommand(
		newUpsertCmd(),
		newListCmd(),
		newGetCmd(),
		newShowCmd(),
		newDeleteCmd(),
	)
	return cmd
}
