package types

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"vaultkeeper/cmd/client/cmd/cli"
	"vaultkeeper/internal/domain/schema"
)

func NewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "types",
		Short: "Record types and their fields",
	}
	cmd.AddCommand(newListCmd(), newFieldsCmd())
	return cmd
}

type typeInfo struct {
	Type        schema.RecordType `json:"type"`
	DisplayName string            `json:"displayName"`
	Category    schema.Category   `json:"category"`
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every record type",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := cli.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			var out []typeInfo
			for _, t := range env.Vault.Registry.Types() {
				out = append(out, typeInfo{Type: t, DisplayName: t.DisplayName(), Category: t.Category()})
			}

			return env.Print(out, func(w io.Writer) error {
				tw := cli.NewTable(w, "TYPE", "NAME", "CATEGORY")
				for _, t := range out {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", t.Type, t.DisplayName, t.Category)
				}
				return tw.Flush()
			})
		},
	}
}

type fieldInfo struct {
	Key        string      `json:"key"`
	Label      string      `json:"label"`
	Type       string      `json:"type"`
	Options    []string    `json:"options,omitempty"`
	ShowWhen   string      `json:"showWhen,omitempty"`
	ItemFields []fieldInfo `json:"itemFields,omitempty"`
}

func toFieldInfo(fields []schema.Field) []fieldInfo {
	out := make([]fieldInfo, 0, len(fields))
	for _, f := range fields {
		fi := fieldInfo{
			Key:     f.Key.String(),
			Label:   f.LabelFor(nil),
			Type:    string(f.Type),
			Options: f.Options,
		}
		if f.ShowWhen != nil {
			fi.ShowWhen = fmt.Sprintf("%s = %v", f.ShowWhen.Key, f.ShowWhen.Equals)
		}
		if len(f.ItemFields) > 0 {
			fi.ItemFields = toFieldInfo(f.ItemFields)
		}
		out = append(out, fi)
	}
	return out
}

func newFieldsCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "fields TYPE",
		Short:   "Show the fields of a record type",
		Example: "  vaultkeeper types fields PASSPORT",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := cli.FromContext(cmd.Context())
			if err != nil {
				return err
			}

			rt := schema.RecordType(strings.ToUpper(args[0]))
			fields := toFieldInfo(env.Vault.Registry.Fields(rt))

			return env.Print(fields, func(w io.Writer) error {
				if len(fields) == 0 {
					cli.Dim(w, "%s has no declared fields", rt)
					return nil
				}
				cli.Heading(w, rt.DisplayName())
				tw := cli.NewTable(w, "KEY", "LABEL", "TYPE", "SHOWN WHEN")
				writeFields(tw, fields, "")
				return tw.Flush()
			})
		},
	}
}

func writeFields(w io.Writer, fields []fieldInfo, indent string) {
	for _, f := range fields {
		typ := f.Type
		if len(f.Options) > 0 {
			typ += " (" + strings.Join(f.Options, "|") + ")"
		}
		fmt.Fprintf(w, "%s%s\t%s\t%s\t%s\n", indent, f.Key, f.Label, typ, f.ShowWhen)
		writeFields(w, f.ItemFields, indent+"  ")
	}
}
