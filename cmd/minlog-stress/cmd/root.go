package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/wayneeseguin/minlog/pkg/backends"
	"github.com/wayneeseguin/minlog/pkg/formatters"
	"github.com/wayneeseguin/minlog/pkg/minlog"
)

var (
	// configPath to an optional YAML or TOML logger configuration.
	configPath string
	// Flag overrides applied on top of the loaded or default config.
	loggerType     string
	colored        bool
	fileName       string
	reopenInterval string
	address        string
	tag            string
	url            string
	subject        string
	// Workload shape.
	workers     int
	iterations  int
	delay       time.Duration
	showMetrics bool

	// rootCmd hammers one logger configuration from concurrent workers.
	rootCmd = &cobra.Command{
		Use:   "minlog-stress",
		Short: "Exercise a logger configuration from concurrent workers.",
		Long: `Drives a logger the way a busy process would: several workers each emit
every severity plus a custom-labeled raw line, pausing between messages.

The logger comes from the default configuration, colored stdout, unless a
configuration file or flag overrides pick another one. Flags win over the
file. Lines must come out whole under concurrency whatever the sink is;
eyeball stdout, or point the file logger at a scratch directory with a
short reopen interval to watch it cycle its handle.

The syslog and NATS logger types are registered here, so --type syslog
and --type nats work alongside the built-ins.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := assembleConfig(cmd)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), cfg)
		},
	}
)

// Execute runs the minlog-stress CLI and exits with non-zero status on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	minlog.Register("syslog", func(cfg minlog.Config) (minlog.Logger, error) {
		return backends.NewSyslog(cfg)
	})
	minlog.Register("nats", func(cfg minlog.Config) (minlog.Logger, error) {
		return backends.NewNATS(cfg)
	})

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "path to a YAML or TOML logger configuration")
	rootCmd.Flags().StringVarP(&loggerType, "type", "t", minlog.TypeStdOut, "logger type to construct")
	rootCmd.Flags().BoolVar(&colored, "color", true, "color the stdout labels")
	rootCmd.Flags().StringVarP(&fileName, "file-name", "f", "", "output file for the file logger")
	rootCmd.Flags().StringVarP(&reopenInterval, "reopen-interval", "r", "", "file logger reopen interval in seconds")
	rootCmd.Flags().StringVar(&address, "address", "", "syslog socket path or host:port")
	rootCmd.Flags().StringVar(&tag, "tag", "", "syslog program tag")
	rootCmd.Flags().StringVar(&url, "url", "", "NATS server URL")
	rootCmd.Flags().StringVar(&subject, "subject", "", "NATS publish subject")
	rootCmd.Flags().IntVarP(&workers, "workers", "w", 4, "concurrent workers")
	rootCmd.Flags().IntVarP(&iterations, "iterations", "n", 2, "iterations per worker")
	rootCmd.Flags().DurationVarP(&delay, "delay", "d", 10*time.Millisecond, "pause between messages")
	rootCmd.Flags().BoolVarP(&showMetrics, "metrics", "m", false, "print the logging counters when done")
}

// assembleConfig builds the logger configuration: the config file or the
// default as the base, explicitly set flags on top.
func assembleConfig(cmd *cobra.Command) (minlog.Config, error) {
	cfg := minlog.DefaultConfig()
	if configPath != "" {
		loaded, err := minlog.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("type") {
		cfg[minlog.KeyType] = loggerType
	}
	if flags.Changed("color") {
		// Presence of the key is what turns color on.
		if colored {
			cfg[minlog.KeyColor] = ""
		} else {
			delete(cfg, minlog.KeyColor)
		}
	}
	for flag, key := range map[string]string{
		"file-name":       minlog.KeyFileName,
		"reopen-interval": minlog.KeyReopenInterval,
		"address":         minlog.KeyAddress,
		"tag":             minlog.KeyTag,
		"url":             minlog.KeyURL,
		"subject":         minlog.KeySubject,
	} {
		if flags.Changed(flag) {
			value, err := flags.GetString(flag)
			if err != nil {
				return nil, err
			}
			cfg[key] = value
		}
	}
	return cfg, nil
}

func run(out io.Writer, cfg minlog.Config) error {
	logger, err := minlog.GetLogger(cfg)
	if err != nil {
		return err
	}
	if closer, ok := logger.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			work(id)
		}(w)
	}
	wg.Wait()

	if showMetrics {
		printMetrics(out)
	}
	return nil
}

// work emits every severity and one custom-labeled raw line per
// iteration, with a pause after each message so the workers interleave.
func work(id int) {
	msg := "hi my name is: worker " + strconv.Itoa(id)
	for i := 0; i < iterations; i++ {
		minlog.Error(msg)
		time.Sleep(delay)
		minlog.Warn(msg)
		time.Sleep(delay)
		minlog.Info(msg)
		time.Sleep(delay)
		minlog.Debug(msg)
		time.Sleep(delay)
		minlog.Trace(msg)
		time.Sleep(delay)
		minlog.Write(formatters.Timestamp() + " \x1b[35;1m[CUSTOM]\x1b[0m " + msg + "\n")
		time.Sleep(delay)
	}
}

func printMetrics(w io.Writer) {
	m := minlog.GetMetrics()
	fmt.Fprintf(w, "lines written: %d\n", m.LinesTotal)
	for _, level := range []minlog.Level{
		minlog.LevelTrace, minlog.LevelDebug, minlog.LevelInfo, minlog.LevelWarn, minlog.LevelError,
	} {
		if n := m.LinesByLevel[level]; n > 0 {
			fmt.Fprintf(w, "  %s: %d\n", level, n)
		}
	}
	fmt.Fprintf(w, "raw writes: %d\n", m.RawWrites)
	fmt.Fprintf(w, "bytes written: %d\n", m.BytesWritten)
	fmt.Fprintf(w, "file reopens: %d\n", m.FileReopens)
	fmt.Fprintf(w, "write errors: %d\n", m.WriteErrors)
}
