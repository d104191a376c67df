package cli

import (
	"context"
	"log/slog"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/pyscribe/log"
)

// logFormat is a custom type that configures the logger format as a side
// effect of parsing via encoding.TextUnmarshaler.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-format flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during
// parsing.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel is a custom type that configures the logger level as a side
// effect of parsing via encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
// As Kong parses the --log-level flag, this method is called, allowing us
// to configure the logger early enough to affect error messages during
// parsing.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"trace,debug,info,warn,error" help:"Set log level."`
	Format     logFormat `default:"text"    enum:"json,text"                   help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                                    help:"Set timestamp format."`
	Caller     bool      `default:"false"                                      help:"Include caller information."       negatable:""`
	Pretty     bool      `default:"true"                                       help:"Enable colorized pretty printing." negatable:""`
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan performs an early pass over command-line arguments to extract and
// apply logger configuration before Kong begins parsing. This ensures the
// logger is configured properly regardless of flag position on the command
// line.
func (f *logConfig) scan(args []string) {
	for i := 0; i < len(args); i++ {
		name, value := splitLogFlag(args, &i)

		switch name {
		case "level":
			log.Config(log.WithLevel(log.ParseLevel(value)))
		case "format":
			log.Config(log.WithFormat(log.ParseFormat(value)))
		case "pretty":
			log.Config(log.WithPretty(value != "false"))
		case "no-pretty":
			log.Config(log.WithPretty(false))
		}
	}
}

// splitLogFlag extracts the name and value of a --log-* flag at args[*i],
// consuming the following argument when the value is detached. Non-log
// flags return an empty name.
func splitLogFlag(args []string, i *int) (name, value string) {
	arg := args[*i]

	var negated bool

	switch {
	case strings.HasPrefix(arg, "--log-"):
		arg = strings.TrimPrefix(arg, "--log-")
	case strings.HasPrefix(arg, "--no-log-"):
		arg = strings.TrimPrefix(arg, "--no-log-")
		negated = true
	default:
		return "", ""
	}

	name, value, assigned := strings.Cut(arg, "=")

	if negated {
		return "no-" + name, value
	}

	// Boolean flags never take a detached value.
	if !assigned && name != "pretty" && name != "caller" &&
		*i+1 < len(args) && !strings.HasPrefix(args[*i+1], "-") {
		*i++
		value = args[*i]
	}

	return name, value
}
