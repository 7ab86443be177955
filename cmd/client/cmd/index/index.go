package index

import (
	"github.com/spf13/cobra"

	"vaultkeeper/cmd/client/cmd/cli"
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Maintain the document index",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "rebuild",
		Short: "Rebuild the document index from every stored record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			if err := env.Vault.RebuildDocumentIndex(cmd.Context()); err != nil {
				return err
			}
			env.Done("document index rebuilt")
			return nil
		},
	})
	return cmd
}
