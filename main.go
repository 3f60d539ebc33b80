package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mordilloSan/go-console-logger/logger"
	"github.com/mordilloSan/go-console-logger/zapbridge"
)

var (
	// Version is injected at build time via ldflags.
	Version = "dev"
	// BuildDate is injected at build time via ldflags.
	BuildDate = ""
)

const (
	appName  = "go-console-logger"
	appShort = "Demonstrates leveled, scoped console logging"
	appLong  = `
		Prints a short sequence of log lines through the console logger.

		The output style follows the detected platform: ANSI badges on a terminal,
		plain [LEVEL] prefixes when LOGGER_RUNTIME=worker and devtools style
		directives when LOGGER_RUNTIME=browser. APP_ENV=production refuses the
		trace and debug levels.
	`
)

var allLevels = func() []string {
	names := make([]string, 0, len(logger.AllLevels()))
	for _, l := range logger.AllLevels() {
		names = append(names, l.String())
	}
	return names
}()

// rootFlags holds the persistent flags shared across the command tree.
type rootFlags struct {
	logLevel  string
	timestamp bool
	encoding  string
}

// addFlags registers the persistent CLI flags on cmd.
func (f *rootFlags) addFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringVarP(&f.logLevel, "log-level", "v", "", "set the logging level (possible values: "+strings.Join(allLevels, ", ")+")")
	flags.BoolVar(&f.timestamp, "timestamp", false, "prefix every line with the local date and time")
	flags.StringVar(&f.encoding, "encoding", "", "serialization for structured arguments (json or yaml)")
}

// config builds the logger configuration from the environment and the flags.
func (f *rootFlags) config() (logger.Config, error) {
	cfg := logger.DefaultConfig()
	if f.logLevel != "" {
		if _, ok := logger.ParseLevel(f.logLevel); !ok {
			return cfg, fmt.Errorf("invalid log level %q", f.logLevel)
		}
		cfg.Level = f.logLevel
	}
	if f.timestamp {
		cfg.Timestamp = true
	}
	if f.encoding != "" {
		enc, ok := logger.EncoderByName(f.encoding)
		if !ok {
			return cfg, fmt.Errorf("invalid encoding %q", f.encoding)
		}
		cfg.Encoder = enc
	}
	return cfg, nil
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// rootCmd constructs the root Cobra command.
func rootCmd() *cobra.Command {
	flag := &rootFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: heredoc.Doc(appShort),
		Long:  heredoc.Doc(appLong),

		SilenceErrors: true,
		SilenceUsage:  true,

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flag.config()
			if err != nil {
				cmd.PrintErrln(err)
				return err
			}
			logger.Init(cfg)
			return nil
		},
		Run: func(_ *cobra.Command, _ []string) {
			runDemo()
		},
	}

	flag.addFlags(cmd)
	cmd.AddCommand(versionCmd())
	return cmd
}

// runDemo logs through the default logger, two scoped handles and the zap bridge.
func runDemo() {
	logger.Infof("logging at level %s", logger.Default().Level())
	logger.Trace("trace is usually filtered")
	logger.Debug("debug is on in development builds")

	for _, scope := range []string{"scope1", "scope2"} {
		log := logger.NewScoped(scope)
		log.Warn("Warning test")
		log.Info("Info test")
		log.Error("Error test")
	}

	logger.Info("request completed", map[string]any{
		"duration_ms": 42,
		"status":      200,
		"path":        "/api/users",
		"method":      "GET",
	})

	z := zapbridge.New(logger.Default())
	z.Named("zap").Warn("database connection failed",
		zap.String("host", "localhost"),
		zap.Int("port", 5432),
		zap.Int("retry_count", 3))
}

// versionCmd constructs the Cobra command that prints version information.
func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: heredoc.Doc("Display the " + appName + " version"),

		Args:              cobra.NoArgs,
		ValidArgsFunction: cobra.NoFileCompletions,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString(Version, BuildDate, runtime.Version()))
		},
	}
}

// versionString formats the version metadata for display.
func versionString(version, buildDate, runtimeVersion string) string {
	outputString := version
	if buildDate != "" {
		outputString += " (" + buildDate + ")"
	}

	return outputString + ", Go Version: " + runtimeVersion
}
