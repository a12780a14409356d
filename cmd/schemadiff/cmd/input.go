package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// stdinArg reads an input from standard input.
const stdinArg = "-"

// readInput returns the text of a file argument, or of stdin for "-".
func readInput(cmd *cobra.Command, path string) (string, error) {
	if path == stdinArg {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(b), nil
}

// readPair reads the two schema arguments; at most one may be stdin.
func readPair(cmd *cobra.Command, args []string) (string, string, error) {
	if args[0] == stdinArg && args[1] == stdinArg {
		return "", "", fmt.Errorf("only one schema can be read from stdin")
	}
	text1, err := readInput(cmd, args[0])
	if err != nil {
		return "", "", err
	}
	text2, err := readInput(cmd, args[1])
	if err != nil {
		return "", "", err
	}
	return text1, text2, nil
}
