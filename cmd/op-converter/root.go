package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"op-converter/internal/convert"
	"op-converter/internal/mapping"
)

// options holds the global flags shared by all commands.
type options struct {
	mappings []string
	logLevel string
	strict   bool
	debug    bool
	noMethod bool

	log zerolog.Logger
}

func newRootCommand() *cobra.Command {
	opts := &options{log: zerolog.Nop()}

	cmd := &cobra.Command{
		Use:   "op-converter",
		Short: "Rewrite ML framework API calls into another framework's API",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true

			log, err := newLogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}

			opts.log = log

			return nil
		},
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringArrayVarP(&opts.mappings, "mapping", "m", nil, "extra mapping YAML file, applied after the builtin tables (repeatable)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	flags.BoolVar(&opts.strict, "strict", false, "treat outputs with <REQUIRED> placeholders as unconverted")
	flags.BoolVar(&opts.debug, "debug", false, "dump parsed and resolved arguments")
	flags.BoolVar(&opts.noMethod, "no-method-fallback", false, "do not match attribute calls by method name")

	cmd.AddCommand(
		newConvertCommand(opts),
		newScriptCommand(opts),
		newListCommand(opts),
		newCheckCommand(opts),
		newHistogramCommand(opts),
	)

	return cmd
}

// newLogger builds a console logger writing to w.
func newLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid --log-level %q: %w", level, err)
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: !isTerminal(w)}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger(), nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}

// registry builds the builtin registry plus the --mapping files.
func (o *options) registry() (*mapping.Registry, error) {
	if len(o.mappings) == 0 {
		return mapping.Default()
	}

	return mapping.Load(o.mappings...)
}

// converter builds a Converter over reg from the global flags.
func (o *options) converter(reg *mapping.Registry) *convert.Converter {
	config := convert.DefaultConfig()
	config.Strict = o.strict
	config.MethodFallback = !o.noMethod
	config.Mappings = o.mappings

	return convert.New(reg, o.log, config)
}

// readInput reads a file, or stdin for "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}
