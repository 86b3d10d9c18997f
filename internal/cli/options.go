// internal/cli/options.go
package cli

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"seguid-core/alphabet"
	"seguid-core/chksum"
	"seguid-core/rotation"
	"seguid/internal/config"
	"seguid/internal/writers"
)

// Defaults applied when neither a flag, the environment nor a config file
// sets a value.
const (
	DefaultType        = "seguid"
	DefaultTable       = "dna"
	DefaultMinRotation = rotation.BuiltinName
	DefaultOutput      = "text"
)

// Options holds all CLI flags and arguments.
type Options struct {
	// Checksum
	Type        string
	Table       string
	Lenient     bool
	MinRotation string

	// Input
	Inputs []string

	// Output
	Output  string
	Header  bool
	Message bool

	// Performance
	Threads int

	// Configuration and diagnostics
	ConfigFile string
	EnvFile    string
	Quiet      bool
	Verbose    bool
	LogLevel   string

	Version bool
}

// Register binds every flag to o on fs.
func Register(fs *pflag.FlagSet, o *Options) {
	fs.StringVarP(&o.Type, "type", "t", DefaultType, "checksum type: "+strings.Join(kindNames(), " | "))
	fs.StringVar(&o.Table, "table", DefaultTable, "symbol table: "+strings.Join(alphabet.Names(), " | "))
	fs.BoolVar(&o.Lenient, "lenient", false, "skip symbol validation (--type seguid only)")
	fs.StringVar(&o.MinRotation, "min-rotation", DefaultMinRotation, "minimum rotation backend: "+strings.Join(rotation.Names(), " | "))

	fs.StringArrayVarP(&o.Inputs, "input", "i", nil, "FASTA file (repeatable, '-' = stdin, gzip detected)")

	fs.StringVarP(&o.Output, "output", "o", DefaultOutput, "output format: "+strings.Join(writers.Formats(), " | "))
	fs.BoolVar(&o.Header, "header", false, "print a header line (tsv)")
	fs.BoolVar(&o.Message, "message", false, "print the canonical message instead of the checksum")

	fs.IntVar(&o.Threads, "threads", 0, "number of worker threads (0 = all CPUs)")

	fs.StringVar(&o.ConfigFile, "config", "", "config file (default ./"+config.FileName+" when present)")
	fs.StringVar(&o.EnvFile, "env-file", ".env", "dotenv file exported before reading SEGUID_* variables")
	fs.BoolVarP(&o.Quiet, "quiet", "q", false, "only log errors")
	fs.BoolVarP(&o.Verbose, "verbose", "v", false, "log debug details")
	fs.StringVar(&o.LogLevel, "log-level", "", "log level (overrides --quiet/--verbose)")

	fs.BoolVar(&o.Version, "version", false, "print version and exit")
}

// Apply fills every option whose flag was not given on the command line
// from s, the merged file and environment settings.
func Apply(fs *pflag.FlagSet, o *Options, s config.Settings) {
	set := func(name string, apply func()) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			return
		}
		apply()
	}
	if s.Type != "" {
		set("type", func() { o.Type = s.Type })
	}
	if s.Table != "" {
		set("table", func() { o.Table = s.Table })
	}
	if s.MinRotation != "" {
		set("min-rotation", func() { o.MinRotation = s.MinRotation })
	}
	if s.Output != "" {
		set("output", func() { o.Output = s.Output })
	}
	if s.Header {
		set("header", func() { o.Header = true })
	}
	if s.Threads != 0 {
		set("threads", func() { o.Threads = s.Threads })
	}
	if s.LogLevel != "" {
		set("log-level", func() { o.LogLevel = s.LogLevel })
	}
}

// Validate checks o and normalizes names to lower case.
func Validate(o *Options) error {
	kind, err := chksum.ParseKind(o.Type)
	if err != nil {
		return err
	}
	o.Type = string(kind)

	if _, err := alphabet.Lookup(o.Table); err != nil {
		return errors.Errorf("invalid --table %q (want %s)", o.Table, strings.Join(alphabet.Names(), "|"))
	}
	o.Table = strings.ToLower(strings.TrimSpace(o.Table))

	if _, err := writers.Lookup(o.Output); err != nil {
		return errors.Errorf("invalid --output %q (want %s)", o.Output, strings.Join(writers.Formats(), "|"))
	}
	o.Output = strings.ToLower(o.Output)

	if o.Threads < 0 {
		return errors.New("--threads must be >= 0")
	}
	if o.Lenient && kind != chksum.KindSEGUID {
		return errors.New("--lenient applies to --type seguid only")
	}
	if o.Header && o.Output != "tsv" {
		return errors.New("--header applies to --output tsv only")
	}
	return nil
}

// SymbolTable resolves the validated table name.
func (o Options) SymbolTable() (alphabet.Table, error) {
	return alphabet.Lookup(o.Table)
}

func kindNames() []string {
	kinds := chksum.Kinds()
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}
