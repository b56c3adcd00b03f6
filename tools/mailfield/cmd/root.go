package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailfield/header/field"
	"github.com/zostay/go-mailfield/internal/log"

	// every IANA charset for encoded-words
	_ "github.com/zostay/go-mailfield/header/encoding"
)

// app carries the settings shared by every subcommand.
type app struct {
	configFile    string
	maxLineLength int
	wordEncoding  string
	charset       string
	noPreEncode   bool
	dev           bool
	logLevel      string

	log  *slog.Logger
	opts []field.Option
}

// NewRootCmd builds the mailfield command and all of its subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{log: log.Noop}

	rootCmd := &cobra.Command{
		Use:               "mailfield",
		Short:             "Parse, check, and encode email header fields",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&a.configFile, "config", "c", "", "read settings from this YAML file")
	pf.IntVarP(&a.maxLineLength, "max-line-length", "l", field.DefaultMaxLineLength, "longest line to write")
	pf.StringVarP(&a.wordEncoding, "word-encoding", "e", "q", "encoding for encoded-words, q or b")
	pf.StringVar(&a.charset, "charset", field.DefaultCharset, "charset for encoded-words")
	pf.BoolVar(&a.noPreEncode, "no-subject-preencode", false, "reject raw 8-bit text in subjects")
	pf.BoolVar(&a.dev, "dev", false, "use the verbose developer log format")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn, or error")

	rootCmd.AddCommand(a.parseCmd())
	rootCmd.AddCommand(a.encodeCmd())
	rootCmd.AddCommand(a.roundtripCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// setup merges the config file with the flags, which win when given.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	fc := &FileConfig{}
	if a.configFile != "" {
		var err error
		fc, err = LoadFileConfig(a.configFile)
		if err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("max-line-length") {
		fc.MaxLineLength = a.maxLineLength
	}
	if flags.Changed("word-encoding") {
		fc.WordEncoding = a.wordEncoding
	}
	if flags.Changed("charset") {
		fc.Charset = a.charset
	}
	if flags.Changed("no-subject-preencode") {
		on := !a.noPreEncode
		fc.SubjectPreEncode = &on
	}
	if flags.Changed("log-level") || fc.LogLevel == "" {
		fc.LogLevel = a.logLevel
	}

	level, err := fc.Level()
	if err != nil {
		return err
	}

	if a.dev {
		a.log = log.NewDev(cmd.ErrOrStderr(), level)
	} else {
		a.log = log.New(cmd.ErrOrStderr(), level)
	}

	opts, err := fc.Options()
	if err != nil {
		return err
	}

	if _, err := field.NewConfig(opts...); err != nil {
		a.log.Error("bad field configuration", "error", err)
		return err
	}

	a.opts = opts
	return nil
}

// Execute runs the mailfield command.
func Execute() error {
	return NewRootCmd().Execute()
}
