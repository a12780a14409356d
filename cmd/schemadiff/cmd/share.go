package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/speakeasy-api/schemadiff/pkg/playground"
)

var exampleForShareCmd = `
  schemadiff share encode old.json new.json
  schemadiff share decode "$STATE"
  schemadiff share decode --schema1 old.json --schema2 new.json "$STATE"
`

func newShareCmd() *cobra.Command {
	shareCmd := &cobra.Command{
		Use:     "share",
		Short:   "encode or decode playground share links",
		Example: exampleForShareCmd,
	}
	shareCmd.AddCommand(newShareEncodeCmd(), newShareDecodeCmd())
	return shareCmd
}

func newShareEncodeCmd() *cobra.Command {
	var baseURL string
	encodeCmd := &cobra.Command{
		Use:   "encode <schema1> <schema2>",
		Short: "print the share state of two schema files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			text1, text2, err := readPair(cmd, args)
			if err != nil {
				return err
			}
			state, err := playground.EncodeState(playground.Panes{Schema1: text1, Schema2: text2})
			if err != nil {
				return err
			}
			if baseURL != "" {
				state = baseURL + "#" + state
			}
			fmt.Fprintln(cmd.OutOrStdout(), state)
			return nil
		},
	}
	encodeCmd.Flags().StringVar(&baseURL, "url", "", "playground URL to prefix the state with")
	return encodeCmd
}

type shareDecodeOpts struct {
	schema1 string
	schema2 string
}

func newShareDecodeCmd() *cobra.Command {
	opts := &shareDecodeOpts{}
	decodeCmd := &cobra.Command{
		Use:   "decode <state>",
		Short: "print or write the two schemas of a share state",
		Long:  "Decode a share state, or a full link containing one after '#'. Valid panes are pretty-printed.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := playground.LoadState(stateOf(args[0]))
			if err != nil {
				return err
			}

			if opts.schema1 == "" && opts.schema2 == "" {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				enc.SetEscapeHTML(false)
				return enc.Encode(p)
			}
			for _, f := range []struct{ path, text string }{
				{opts.schema1, p.Schema1},
				{opts.schema2, p.Schema2},
			} {
				if f.path == "" {
					continue
				}
				if err := os.WriteFile(f.path, []byte(f.text+"\n"), 0o644); err != nil {
					return fmt.Errorf("failed to write %s: %w", f.path, err)
				}
			}
			return nil
		},
	}
	flags := decodeCmd.Flags()
	flags.StringVar(&opts.schema1, "schema1", "", "write the first schema to this file")
	flags.StringVar(&opts.schema2, "schema2", "", "write the second schema to this file")
	return decodeCmd
}

// stateOf strips everything up to the fragment marker of a link.
func stateOf(s string) string {
	if i := strings.LastIndexByte(s, '#'); i >= 0 {
		return s[i+1:]
	}
	return s
}
