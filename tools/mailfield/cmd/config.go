package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/zostay/go-mailfield/header/field"
)

// ErrUnknownWordEncoding is returned when the word encoding is neither q nor b.
var ErrUnknownWordEncoding = errors.New("word encoding must be q or b")

// FileConfig holds the settings that may be read from the --config file. A
// zero value leaves the library default in place. Flags given on the command
// line override the file.
type FileConfig struct {
	MaxLineLength    int    `yaml:"max_line_length"`
	WordEncoding     string `yaml:"word_encoding"`
	Charset          string `yaml:"charset"`
	SubjectPreEncode *bool  `yaml:"subject_pre_encode"`
	LogLevel         string `yaml:"log_level"`
}

// LoadFileConfig reads a FileConfig from the YAML file at path. Unknown keys
// are an error.
func LoadFileConfig(path string) (*FileConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	fc := &FileConfig{}
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(fc); err != nil {
		return nil, fmt.Errorf("unable to read config file %s: %w", path, err)
	}

	return fc, nil
}

func parseWordEncoding(s string) (mime.WordEncoder, error) {
	switch strings.ToLower(s) {
	case "q":
		return mime.QEncoding, nil
	case "b":
		return mime.BEncoding, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWordEncoding, s)
}

// Options turns the settings into field options.
func (c *FileConfig) Options() ([]field.Option, error) {
	var opts []field.Option
	if c.MaxLineLength != 0 {
		opts = append(opts, field.WithMaxLineLength(c.MaxLineLength))
	}

	if c.Charset != "" {
		opts = append(opts, field.WithCharset(c.Charset))
	}

	if c.WordEncoding != "" {
		enc, err := parseWordEncoding(c.WordEncoding)
		if err != nil {
			return nil, err
		}
		opts = append(opts, field.WithWordEncoding(enc))
	}

	if c.SubjectPreEncode != nil && !*c.SubjectPreEncode {
		opts = append(opts, field.WithoutPreEncoders())
	}

	return opts, nil
}

// Level returns the configured log level, defaulting to info.
func (c *FileConfig) Level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("bad log level: %w", err)
	}
	return level, nil
}
