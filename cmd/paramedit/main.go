package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-paramedit/pkg/render"
)

var (
	// Global flags
	verbose       bool
	documentPath  string
	openAPIPath   string
	componentName string
	outputFormat  string
	title         string
	locale        string
	messagesPath  string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "paramedit",
	Short: "Edit a fixed set of named parameters and print the resulting model",
	Long: `paramedit loads a parameter schema and an initial model, lets you edit the
parameter values and prints the model (paramValues plus the untouched colors
payload) on demand.

Without --file the built-in dress demo is used.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.OutputPaths = []string{"stderr"}
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVarP(&documentPath, "file", "f", "", "schema/model document (JSON or YAML)")
	flags.StringVar(&openAPIPath, "openapi", "", "OpenAPI document to derive the schema from")
	flags.StringVar(&componentName, "component", "", "component schema name inside --openapi")
	flags.StringVar(&outputFormat, "format", "json", "model output format: json, yaml or pretty")
	flags.StringVar(&title, "title", render.DefaultTitle, "title shown above the parameters")
	flags.StringVar(&locale, "locale", "", "locale for editor labels (built-in: ru)")
	flags.StringVar(&messagesPath, "messages", "", "YAML message catalog (locale -> key -> text)")

	rootCmd.AddCommand(editCmd, showCmd, renderCmd, applyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
