package entity

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vaultkeeper/cmd/client/cmd/cli"
	"vaultkeeper/internal/domain/entity"
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entity",
		Short: "Manage family members, pets and the household",
	}
	cmd.AddCommand(newAddCmd(), newListCmd(), newDeleteCmd())
	return cmd
}

func newAddCmd() *cobra.Command {
	var kind string

	cmd := &cobra.Command{
		Use:   "add NAME",
		Short: "Add an entity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			e, err := env.Vault.Entities.Create(cmd.Context(), args[0], entity.Kind(kind))
			if err != nil {
				return err
			}
			if env.JSON {
				return env.Print(e, nil)
			}
			env.Done("added %s %q (%s)", e.Kind, e.Name, e.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&kind, "kind", "k", string(entity.KindPerson), "person, pet or household")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List entities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			entities, err := env.Vault.Entities.List(cmd.Context())
			if err != nil {
				return err
			}

			return env.Print(entities, func(w io.Writer) error {
				if len(entities) == 0 {
					cli.Dim(w, "no entities")
					return nil
				}
				tw := cli.NewTable(w, "ID", "NAME", "KIND")
				for _, e := range entities {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", e.ID, e.Name, e.Kind)
				}
				return tw.Flush()
			})
		},
	}
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ENTITY_ID",
		Short: "Delete an entity together with all of its records",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			if err := env.Vault.Entities.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			env.Done("deleted %s", args[0])
			return nil
		},
	}
}
