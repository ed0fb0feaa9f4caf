package main

import (
	"fmt"
	"os"

	"github.com/oleg578/flatfile"
	"github.com/oleg578/flatfile/stdfilters"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	layoutFile string
	verbose    bool
	strict     bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "flatfile",
	Short: "Inspect and rewrite fixed-width flat files",
	Long: `flatfile reads fixed field width files described by a YAML layout.

Examples:
  flatfile dump    --layout people.yaml people.dat
  flatfile check   --layout people.yaml people.dat
  flatfile convert --layout people.yaml people.dat > normalized.dat`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&layoutFile, "layout", "l", "layout.yaml", "layout file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log skipped lines and transform warnings")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "fail on transforms the layout cannot resolve")
}

func newLogger() zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// loadDefinition builds the definition named by --layout with the standard filters as host.
func loadDefinition() (*flatfile.Definition, error) {
	layout, err := flatfile.LoadLayout(layoutFile)
	if err != nil {
		return nil, err
	}
	opts := []flatfile.Option{
		flatfile.WithHost(stdfilters.Methods()),
		flatfile.WithLogger(newLogger()),
	}
	if strict {
		opts = append(opts, flatfile.WithStrictTransforms())
	}
	def, err := layout.Definition(opts...)
	if err != nil {
		return nil, fmt.Errorf("layout %s: %w", layoutFile, err)
	}
	if strict {
		if err := def.Validate(); err != nil {
			return nil, fmt.Errorf("layout %s: %w", layoutFile, err)
		}
	}
	return def, nil
}

// openInput opens path, or stdin when path is "-".
func openInput(path string) (*os.File, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
