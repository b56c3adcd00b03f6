package cmd

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// openInput opens the file named by the only argument or falls back to the
// standard input of the command.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}

	return os.Open(args[0])
}
