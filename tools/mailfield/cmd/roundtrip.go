package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zostay/go-mailfield/header/field"
)

// ErrChanged is returned by roundtrip --check when the header does not survive
// parsing and rendering unchanged.
var ErrChanged = errors.New("header changed in the round-trip")

func (a *app) roundtripCmd() *cobra.Command {
	var check bool

	cmd := &cobra.Command{
		Use:   "roundtrip [file]",
		Short: "Shows the diff of a header parsed and rendered again",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRoundtrip(cmd, args, check)
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "fail if the header changes")

	return cmd
}

// lineBreak guesses the line break used by the header.
func lineBreak(data []byte) []byte {
	if bytes.Contains(data, []byte("\r\n")) {
		return []byte("\r\n")
	}
	return []byte("\n")
}

func (a *app) runRoundtrip(cmd *cobra.Command, args []string, check bool) error {
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}

	lb := lineBreak(data)
	if i := bytes.Index(data, append(lb, lb...)); i >= 0 {
		data = data[:i+len(lb)]
	}

	lines, err := field.ParseLines(data, lb)
	var badStart *field.BadStartError
	switch {
	case errors.As(err, &badStart):
		a.log.Warn("skipping junk at the start of the header", "junk", string(badStart.BadStart))
		data = data[len(badStart.BadStart):]
	case err != nil:
		return err
	}

	var rendered strings.Builder
	for _, line := range lines {
		f, err := field.Parse(string(bytes.TrimSuffix(line, lb)), a.opts...)
		if err != nil {
			a.log.Error("unable to parse field", "error", err)
			return err
		}

		s, err := f.Render()
		if err != nil {
			return err
		}

		rendered.WriteString(strings.ReplaceAll(s, "\r\n", string(lb)))
		rendered.Write(lb)
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(string(data), rendered.String(), false)
	if len(diffs) == 0 || (len(diffs) == 1 && diffs[0].Type == diffmatchpatch.DiffEqual) {
		a.log.Info("header is unchanged", "fields", len(lines))
		return nil
	}

	patch := dmp.PatchToText(dmp.PatchMake(string(data), diffs))
	if _, err := fmt.Fprint(cmd.OutOrStdout(), patch); err != nil {
		return err
	}

	if check {
		return ErrChanged
	}
	return nil
}
