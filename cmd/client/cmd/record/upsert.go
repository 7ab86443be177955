package record

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"vaultkeeper/cmd/client/cmd/cli"
	"vaultkeeper/internal/domain/record"
	"vaultkeeper/internal/domain/schema"
)

type upsertFlags struct {
	id       string
	typ      string
	title    string
	data     string
	dataFile string
	attach   []string
}

func newUpsertCmd() *cobra.Command {
	f := &upsertFlags{}

	cmd := &cobra.Command{
		Use:   "upsert ENTITY_ID",
		Short: "Create or replace a record",
		Long: `Normalizes the given data for the record type and stores it.

Data is a JSON object passed with --data, read from a file with --data-file,
or from stdin with --data-file -. Passing --id replaces that record in place.`,
		Example: `  vaultkeeper record upsert e_1 --type PASSPORT --data '{"firstName":"Ann"}' --attach doc_1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			data, err := readData(cmd.InOrStdin(), f.data, f.dataFile)
			if err != nil {
				return err
			}

			rec := record.Record{
				ID:         f.id,
				RecordType: schema.RecordType(strings.ToUpper(f.typ)),
				Title:      f.title,
				Data:       data,
			}
			for _, id := range f.attach {
				rec.Attachments = append(rec.Attachments, record.Attachment{DocumentID: id})
			}

			saved, err := env.Vault.UpsertRecord(cmd.Context(), args[0], rec)
			if err != nil {
				return fmt.Errorf("save record: %w", err)
			}

			if env.JSON {
				return env.Print(saved, nil)
			}
			env.Done("saved %s %q (%s)", saved.RecordType, saved.Title, saved.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&f.id, "id", "", "id of the record to replace")
	cmd.Flags().StringVarP(&f.typ, "type", "t", "", "record type, e.g. PASSPORT")
	cmd.Flags().StringVar(&f.title, "title", "", "title (defaults to the type name)")
	cmd.Flags().StringVarP(&f.data, "data", "d", "", "field values as a JSON object")
	cmd.Flags().StringVar(&f.dataFile, "data-file", "", "read the JSON object from a file, - for stdin")
	cmd.Flags().StringSliceVar(&f.attach, "attach", nil, "document ids to attach")
	_ = cmd.MarkFlagRequired("type")
	cmd.MarkFlagsMutuallyExclusive("data", "data-file")

	return cmd
}

func readData(stdin io.Reader, inline, file string) (map[string]any, error) {
	var raw []byte
	switch {
	case inline != "":
		raw = []byte(inline)
	case file == "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		raw = b
	case file != "":
		b, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read data file: %w", err)
		}
		raw = b
	default:
		return map[string]any{}, nil
	}

	var data map[string]any
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("data must be a JSON object: %w", err)
	}
	return data, nil
}
