package cmd

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/speakeasy-api/schemadiff/schema"
)

const rootRefLabel = "(root)"

type refsOpts struct {
	skipOneOf bool
	summary   bool
}

func newRefsCmd(root *rootOpts) *cobra.Command {
	opts := &refsOpts{}
	refsCmd := &cobra.Command{
		Use:   "refs <schema>",
		Short: "list the reference paths of a schema",
		Long:  "List every reference path in traversal order. oneOf alternatives repeat the path of the object that holds them.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			s, err := schema.Parse(text)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			logger := root.schemaOptions(cmd).NewLogger()
			var visits []schema.Visit
			width := 0
			schema.Walk(s, func(v schema.Visit) bool {
				visits = append(visits, v)
				width = max(width, runewidth.StringWidth(refLabel(v.Ref)))
				return true
			}, schema.WalkOptions{SkipOneOf: opts.skipOneOf})
			logger.With(map[string]any{"refs": len(visits)}).Debugf("Walked %s", args[0])

			w := cmd.OutOrStdout()
			for _, v := range visits {
				if !opts.summary {
					fmt.Fprintln(w, v.Ref)
					continue
				}
				fmt.Fprintf(w, "%s  %s\n", runewidth.FillRight(refLabel(v.Ref), width), schema.Summary(v.Schema))
			}
			return nil
		},
	}

	flags := refsCmd.Flags()
	flags.BoolVar(&opts.skipOneOf, "skip-one-of", false, "do not descend into oneOf alternatives")
	flags.BoolVarP(&opts.summary, "summary", "s", false, "print an aligned shape summary next to each path")
	return refsCmd
}

func refLabel(ref string) string {
	if ref == "" {
		return rootRefLabel
	}
	return ref
}
