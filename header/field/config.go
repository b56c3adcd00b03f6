package field

import (
	"errors"
	"mime"
	"strings"
)

// Constants related to Config.
const (
	// DefaultMaxLineLength is the longest physical line a rendered field will
	// produce, not counting the line break.
	DefaultMaxLineLength = 78

	// DefaultCharset is the charset used for encoded-words.
	DefaultCharset = "UTF-8"

	// maxEncodedRune is the most characters a single rune can take inside an
	// encoded-word: four bytes, each Q-encoded as "=XX".
	maxEncodedRune = 12
)

// Errors returned by Config.Validate.
var (
	// ErrLineLengthTooShort is returned when MaxLineLength cannot hold even a
	// single encoded-word containing one character.
	ErrLineLengthTooShort = errors.New("max line length is too short to hold an encoded-word")

	// ErrWordEncoding is returned when WordEncoding is something other than
	// mime.QEncoding or mime.BEncoding.
	ErrWordEncoding = errors.New("word encoding must be Q or B")

	// ErrCharset is returned when the Charset is empty, is not a plain token,
	// or is not supported by CharsetEncoder.
	ErrCharset = errors.New("charset is not supported for encoded-words")
)

// Config holds the settings used to encode and decode field bodies.
type Config struct {
	// MaxLineLength is the longest physical line permitted in a rendered
	// field. The first line counts the name and the ": " that follows it.
	MaxLineLength int

	// Charset names the charset used inside encoded-words.
	Charset string

	// WordEncoding selects the encoded-word payload encoding.
	WordEncoding mime.WordEncoder

	// PreEncoders are consulted by Parse, in order, before the body is
	// validated.
	PreEncoders []PreEncoder
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		MaxLineLength: DefaultMaxLineLength,
		Charset:       DefaultCharset,
		WordEncoding:  mime.QEncoding,
		PreEncoders:   []PreEncoder{SubjectPreEncoder{}},
	}
}

// minLineLength is the shortest line that still fits a continuation line with
// one encoded-word carrying a single character. Words fall back to
// DefaultCharset, so the longer of the two charset names counts.
func (c Config) minLineLength() int {
	open := c.wordOpen(c.Charset)
	if fallback := c.wordOpen(DefaultCharset); len(fallback) > len(open) {
		open = fallback
	}
	return len(" ") + len(open) + maxEncodedRune + len("?=")
}

// wordOpen is the text that starts every encoded-word in the charset.
func (c Config) wordOpen(charset string) string {
	return "=?" + charset + "?" + strings.ToUpper(string(rune(c.WordEncoding))) + "?"
}

// Validate returns an error if the configuration cannot be used.
func (c Config) Validate() error {
	if c.WordEncoding != mime.QEncoding && c.WordEncoding != mime.BEncoding {
		return ErrWordEncoding
	}

	if c.Charset == "" || strings.ContainsAny(c.Charset, " \t\r\n?=*()<>@,;:\"/[]") {
		return ErrCharset
	}

	for i := 0; i < len(c.Charset); i++ {
		if !isText(c.Charset[i]) {
			return ErrCharset
		}
	}

	if _, err := CharsetEncoder(c.Charset, ""); err != nil {
		return ErrCharset
	}

	if c.MaxLineLength < c.minLineLength() {
		return ErrLineLengthTooShort
	}

	return nil
}

// Option modifies the Config used by New, NewEmpty, and Parse.
type Option func(c *Config)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}

// WithMaxLineLength sets the longest physical line a rendered field may have.
func WithMaxLineLength(n int) Option {
	return func(c *Config) {
		c.MaxLineLength = n
	}
}

// WithCharset sets the charset used when writing encoded-words.
func WithCharset(charset string) Option {
	return func(c *Config) {
		c.Charset = charset
	}
}

// WithWordEncoding chooses between mime.QEncoding and mime.BEncoding for
// encoded-words.
func WithWordEncoding(enc mime.WordEncoder) Option {
	return func(c *Config) {
		c.WordEncoding = enc
	}
}

// WithPreEncoders replaces the PreEncoders consulted by Parse.
func WithPreEncoders(pes ...PreEncoder) Option {
	return func(c *Config) {
		c.PreEncoders = pes
	}
}

// WithoutPreEncoders disables all PreEncoders, including the default
// SubjectPreEncoder.
func WithoutPreEncoders() Option {
	return func(c *Config) {
		c.PreEncoders = nil
	}
}

// NewConfig applies the options to DefaultConfig and validates the result.
func NewConfig(opts ...Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}
