package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailfield/header/field"
)

func (a *app) encodeCmd() *cobra.Command {
	var forceUTF8 bool

	cmd := &cobra.Command{
		Use:   "encode name body",
		Short: "Print a header field built from a name and decoded body",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := field.New(args[0], args[1], a.opts...)
			if err != nil {
				a.log.Error("unable to build field", "error", err)
				return err
			}

			if forceUTF8 {
				if err := f.SetEncoding(field.UTF8); err != nil {
					return err
				}
			}

			a.log.Debug("encoding field", "field", f)

			if _, err := f.WriteTo(cmd.OutOrStdout()); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout())
			return err
		},
	}

	cmd.Flags().BoolVarP(&forceUTF8, "utf8", "u", false, "always write the body as encoded-words")

	return cmd
}
