package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/speakeasy-api/schemadiff/schemadiff"
)

const (
	outputText  = "text"
	outputJSON  = "json"
	outputTable = "table"
	outputYAML  = "yaml"
)

// ANSI colors for diff entries.
const (
	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorReset  = "\x1b[0m"
)

var exampleForDiffCmd = `
  schemadiff diff old.json new.json
  schemadiff diff -o table --exit-code old.json new.json
  cat new.json | schemadiff diff old.json -
`

type diffOpts struct {
	exitCode bool
}

func newDiffCmd(root *rootOpts) *cobra.Command {
	opts := &diffOpts{}
	diffCmd := &cobra.Command{
		Use:     "diff <schema1> <schema2>",
		Short:   "report differences between two schemas",
		Long:    "Report every reference path that is missing on one side, has conflicting types or differing enums. Prints nothing when the schemas agree.",
		Args:    cobra.ExactArgs(2),
		Example: exampleForDiffCmd,
		RunE: func(cmd *cobra.Command, args []string) error {
			text1, text2, err := readPair(cmd, args)
			if err != nil {
				return err
			}
			s1, s2, err := schemadiff.ParsePair(text1, text2)
			if err != nil {
				return err
			}
			entries := schemadiff.DiffSchemas(s1, s2, root.schemaOptions(cmd))

			if err := root.printEntries(cmd.OutOrStdout(), entries); err != nil {
				return err
			}
			if opts.exitCode && len(entries) > 0 {
				return &ExitError{Code: 1}
			}
			return nil
		},
	}

	flags := diffCmd.Flags()
	flags.StringP("output", "o", outputText, "output format: text, json or table")
	flags.BoolVar(&opts.exitCode, "exit-code", false, "exit with status 1 when differences are found")
	_ = root.v.BindPFlag(keyDiffOutput, flags.Lookup("output"))

	return diffCmd
}

func (o *rootOpts) printEntries(w io.Writer, entries []schemadiff.Entry) error {
	switch format := o.v.GetString(keyDiffOutput); format {
	case outputText, "":
		color, err := o.useColor(w)
		if err != nil {
			return err
		}
		for _, e := range entries {
			if color {
				fmt.Fprintf(w, "%s%s%s\n", entryColor(e.Kind), e, colorReset)
				continue
			}
			fmt.Fprintln(w, e)
		}
		return nil
	case outputJSON:
		if entries == nil {
			entries = []schemadiff.Entry{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case outputTable:
		if len(entries) == 0 {
			return nil
		}
		table := tablewriter.NewWriter(w)
		table.SetHeader([]string{"ref", "kind", "detail"})
		table.SetAutoWrapText(false)
		for _, e := range entries {
			table.Append([]string{refLabel(e.Ref), e.Kind.String(), e.Detail()})
		}
		table.Render()
		return nil
	default:
		return fmt.Errorf("invalid diff output %q, the possible values are %v", format, []string{outputText, outputJSON, outputTable})
	}
}

func entryColor(k schemadiff.Kind) string {
	switch k {
	case schemadiff.MissingInSecond:
		return colorRed
	case schemadiff.MissingInFirst:
		return colorGreen
	default:
		return colorYellow
	}
}
