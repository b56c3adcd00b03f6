package cmd

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailfield/header/field"
	"github.com/zostay/go-mailfield/internal/scanner"
)

// maxFieldSize bounds a single field, folds included.
const maxFieldSize = 1 << 20

func (a *app) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse each field of a message header and print its name and decoded body",
		Long: `Reads a message header from the file or standard input and prints one line
per field holding the normalized name, a tab, and the decoded body. Reading
stops at the first blank line. Date fields are followed by the parsed time.
Fields that cannot be parsed are logged and skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: a.runParse,
	}
}

func isDateField(f *field.Field) bool {
	m := f.Match()
	return m == "date" || strings.HasSuffix(m, "-date")
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out := cmd.OutOrStdout()

	s := bufio.NewScanner(in)
	s.Buffer(make([]byte, 0, 4096), maxFieldSize)
	s.Split(scanner.SplitFields)

	var n, failed int
	for s.Scan() {
		n++
		f, err := field.Parse(s.Text(), a.opts...)
		if err != nil {
			a.log.Error("unable to parse field", "field", n, "error", err)
			failed++
			continue
		}

		a.log.Debug("parsed field", "field", f)

		if _, err := fmt.Fprintf(out, "%s\t%s", f.Name(), f.Body()); err != nil {
			return err
		}

		if isDateField(f) {
			if t, err := f.Time(); err == nil {
				_, _ = fmt.Fprintf(out, "\t(%s)", t.Format(time.RFC3339))
			} else {
				a.log.Warn("unable to parse date", "name", f.Name(), "error", err)
			}
		}

		if _, err := fmt.Fprintln(out); err != nil {
			return err
		}
	}

	if err := s.Err(); err != nil {
		return fmt.Errorf("unable to read header: %w", err)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d fields could not be parsed", failed, n)
	}

	return nil
}
