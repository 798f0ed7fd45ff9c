// Command cleanstrings reads lines from files or stdin, runs each line
// through a transform pipeline and writes the cleaned lines to stdout.
//
//	printf 'Alabama!\n  georgia? \n' | cleanstrings -ops trim,remove_punctuation,title
//	Alabama
//	Georgia
//
// Run with -list to see the available transforms.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Gobd/datautil"
	"github.com/Gobd/datautil/internal/logging"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.uber.org/zap"
)

// Version information (set at build time).
var version = "dev"

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// cliFlags holds command line flags.
type cliFlags struct {
	ops         string
	configPath  string
	require     bool
	list        bool
	showVersion bool
	logLevel    string
	logFormat   string
	files       []string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	flags, err := parseFlags(args, stderr)
	if err != nil {
		return exitUsage
	}

	switch {
	case flags.showVersion:
		_, _ = fmt.Fprintf(stdout, "cleanstrings version %s\n", version)
		return exitOK
	case flags.list:
		for _, name := range datautil.OpNames() {
			_, _ = fmt.Fprintln(stdout, name)
		}
		return exitOK
	}

	logger, err := logging.New(logging.Config{Level: flags.logLevel, Format: flags.logFormat}, stderr)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "failed to initialize logger: %v\n", err)
		return exitUsage
	}
	defer func() { _ = logger.Sync() }()

	p, err := loadPipeline(flags)
	if err != nil {
		logger.Error("invalid pipeline", zap.Error(err))
		return exitUsage
	}

	lines, err := readLines(stdin, flags.files)
	if err != nil {
		logger.Error("failed to read input", zap.Error(err))
		return exitError
	}

	var rules []validation.Rule
	if flags.require {
		rules = append(rules, validation.Required)
	}
	out, err := datautil.CleanAndValidate(lines, p, rules...)
	if err != nil {
		logger.Error("failed to clean input", zap.Error(err))
		return exitError
	}

	w := bufio.NewWriter(stdout)
	for _, line := range out {
		_, _ = w.WriteString(line)
		_ = w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		logger.Error("failed to write output", zap.Error(err))
		return exitError
	}

	logger.Debug("cleaned input",
		zap.Int("lines", len(out)),
		zap.Int("ops", len(p)),
	)
	return exitOK
}

// parseFlags parses command line flags.
func parseFlags(args []string, stderr io.Writer) (cliFlags, error) {
	fs := flag.NewFlagSet("cleanstrings", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var f cliFlags
	fs.StringVar(&f.ops, "ops", getEnvOrDefault("CLEANSTRINGS_OPS", "remove_punctuation"),
		"Comma separated transforms, applied in order")
	fs.StringVar(&f.configPath, "config", getEnvOrDefault("CLEANSTRINGS_CONFIG", ""),
		"Path to a YAML pipeline config (overrides -ops)")
	fs.BoolVar(&f.require, "require", false, "Fail if any cleaned line is blank")
	fs.BoolVar(&f.list, "list", false, "List available transforms")
	fs.BoolVar(&f.showVersion, "version", false, "Show version information")
	fs.StringVar(&f.logLevel, "log-level", getEnvOrDefault("CLEANSTRINGS_LOG_LEVEL", logging.DefaultConfig().Level),
		"Log level (debug, info, warn, error)")
	fs.StringVar(&f.logFormat, "log-format", getEnvOrDefault("CLEANSTRINGS_LOG_FORMAT", logging.DefaultConfig().Format),
		"Log format (json, console)")

	if err := fs.Parse(args); err != nil {
		return cliFlags{}, err
	}
	f.files = fs.Args()
	return f, nil
}

func loadPipeline(flags cliFlags) (datautil.Pipeline, error) {
	if flags.configPath != "" {
		file, err := os.Open(flags.configPath)
		if err != nil {
			return nil, err
		}
		defer func() { _ = file.Close() }()

		cfg, err := datautil.LoadPipelineConfig(file)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", flags.configPath, err)
		}
		return cfg.Pipeline()
	}

	if strings.TrimSpace(flags.ops) == "" {
		return nil, errors.New("no transforms given")
	}
	return datautil.ParsePipeline(strings.Split(flags.ops, ",")...)
}

// readLines reads every line of the named files, or of stdin when none are named.
func readLines(stdin io.Reader, files []string) ([]string, error) {
	if len(files) == 0 {
		return scanLines(stdin)
	}

	var lines []string
	for _, name := range files {
		file, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		got, err := scanLines(file)
		_ = file.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		lines = append(lines, got...)
	}
	return lines, nil
}

// scanLines splits r into lines. Both LF and CRLF endings are accepted.
func scanLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		lines = append(lines, strings.TrimSuffix(sc.Text(), "\r"))
	}
	return lines, sc.Err()
}
