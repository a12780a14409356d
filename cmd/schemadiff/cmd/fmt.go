package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/speakeasy-api/schemadiff/pkg/schemafmt"
)

var exampleForFmtCmd = `
  schemadiff fmt schema.json
  schemadiff fmt -w --indent 4 a.json b.json
  schemadiff fmt --compact - < schema.json
`

type fmtOpts struct {
	write   bool
	tabs    bool
	compact bool
}

func newFmtCmd(root *rootOpts) *cobra.Command {
	opts := &fmtOpts{}
	fmtCmd := &cobra.Command{
		Use:     "fmt <file>...",
		Short:   "pretty-print schema files keeping key order",
		Args:    cobra.MinimumNArgs(1),
		Example: exampleForFmtCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			indent, err := root.indent()
			if err != nil {
				return err
			}
			cfg, err := schemafmt.ValidateConfig(schemafmt.Cfg{Indent: indent, Tabs: opts.tabs, Compact: opts.compact})
			if err != nil {
				return err
			}

			for _, path := range args {
				text, err := readInput(cmd, path)
				if err != nil {
					return err
				}
				out, err := schemafmt.Format(text, cfg)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				if opts.write && path != stdinArg {
					if err := os.WriteFile(path, []byte(out+"\n"), 0o644); err != nil {
						return fmt.Errorf("failed to write %s: %w", path, err)
					}
					continue
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}

	flags := fmtCmd.Flags()
	flags.BoolVarP(&opts.write, "write", "w", false, "write the result back to each file instead of stdout")
	flags.BoolVar(&opts.tabs, "tabs", false, "indent with tabs")
	flags.BoolVar(&opts.compact, "compact", false, "remove all insignificant whitespace")

	return fmtCmd
}
