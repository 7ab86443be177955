package document

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"vaultkeeper/cmd/client/cmd/cli"
	"vaultkeeper/internal/domain/document"
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "document",
		Short: "Manage stored documents",
	}
	cmd.AddCommand(newAddCmd(), newListCmd(), newLinksCmd())
	return cmd
}

func newAddCmd() *cobra.Command {
	var doc document.Document

	cmd := &cobra.Command{
		Use:     "add URI",
		Short:   "Register a document",
		Example: "  vaultkeeper document add file:///scans/passport.pdf --id doc_1",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			doc.URI = args[0]
			saved, err := env.Vault.Documents.Add(cmd.Context(), doc)
			if err != nil {
				return err
			}
			if env.JSON {
				return env.Print(saved, nil)
			}
			env.Done("stored %s as %s (%s)", saved.Name, saved.ID, saved.MimeType)
			return nil
		},
	}

	cmd.Flags().StringVar(&doc.ID, "id", "", "document id (generated when empty)")
	cmd.Flags().StringVar(&doc.Name, "name", "", "file name (defaults to the last URI segment)")
	cmd.Flags().StringVar(&doc.MimeType, "mime", "", "mime type (guessed from the extension)")
	return cmd
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List documents",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			docs, err := env.Vault.Documents.List(cmd.Context())
			if err != nil {
				return err
			}

			return env.Print(docs, func(w io.Writer) error {
				if len(docs) == 0 {
					cli.Dim(w, "no documents")
					return nil
				}
				tw := cli.NewTable(w, "ID", "NAME", "TYPE", "URI")
				for _, d := range docs {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", d.ID, cli.Truncate(d.Name, 30), d.MimeType, d.URI)
				}
				return tw.Flush()
			})
		},
	}
}

func newLinksCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "links DOCUMENT_ID",
		Short: "List the records that attach a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.FromContext(cmd.Context())
			if err != nil {
				return err
			}
			refs, err := env.Vault.LookupRecordsForDocument(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return env.Print(refs, func(w io.Writer) error {
				if len(refs) == 0 {
					cli.Dim(w, "no records attach %s", args[0])
					return nil
				}
				tw := cli.NewTable(w, "ENTITY", "RECORD", "TYPE", "TITLE")
				for _, r := range refs {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", r.EntityID, r.RecordID, r.RecordType, r.Title)
				}
				return tw.Flush()
			})
		},
	}
}
