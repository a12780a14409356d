package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/speakeasy-api/schemadiff/schema"
	"github.com/speakeasy-api/schemadiff/schemamerge"
)

var exampleForMergeCmd = `
  schemadiff merge base.json extra.json
  schemadiff merge -o yaml --indent 4 base.json extra.json
`

type mergeOpts struct {
	strict bool
}

func newMergeCmd(root *rootOpts) *cobra.Command {
	opts := &mergeOpts{}
	mergeCmd := &cobra.Command{
		Use:   "merge <schema1> <schema2>",
		Short: "merge the second schema into the first",
		Long: `Merge the second schema into a copy of the first: enums are unioned,
properties and array items are merged recursively and properties only the
second schema has are added. Where both schemas declare different types the
first one is kept and a warning is printed.`,
		Args:    cobra.ExactArgs(2),
		Example: exampleForMergeCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			text1, text2, err := readPair(cmd, args)
			if err != nil {
				return err
			}
			res, err := schemamerge.Merge(text1, text2, root.schemaOptions(cmd))
			if err != nil {
				return err
			}

			out, err := root.renderSchema(res.Schema)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)

			for _, d := range res.Divergences {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", d)
			}
			if opts.strict && len(res.Divergences) > 0 {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}

	flags := mergeCmd.Flags()
	flags.StringP("output", "o", outputJSON, "output format: json or yaml")
	flags.BoolVar(&opts.strict, "strict", false, "exit with status 1 when a type conflict was left unmerged")
	_ = root.v.BindPFlag(keyMergeOutput, flags.Lookup("output"))

	return mergeCmd
}

func (o *rootOpts) renderSchema(s *schema.Schema) (string, error) {
	switch format := o.v.GetString(keyMergeOutput); format {
	case outputJSON, "":
		n, err := o.indent()
		if err != nil {
			return "", err
		}
		b, err := schema.MarshalIndent(s, strings.Repeat(" ", n))
		if err != nil {
			return "", fmt.Errorf("failed to marshal merged schema: %w", err)
		}
		return string(b), nil
	case outputYAML:
		out, err := schema.ToYAML(s)
		if err != nil {
			return "", err
		}
		return strings.TrimSuffix(out, "\n"), nil
	default:
		return "", fmt.Errorf("invalid merge output %q, the possible values are %v", format, []string{outputJSON, outputYAML})
	}
}
