package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/studiowebux/shellwget/internal/cli"
	"github.com/studiowebux/shellwget/internal/config"
	"github.com/studiowebux/shellwget/internal/output"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		output.NewLogger(os.Stderr, false).Errorf("%v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "shellwget [files...]",
	Short: "Convert HTTP request files into wget commands",
	Long: `shellwget turns request descriptions into ready-to-run wget command lines.

Supported inputs: .http files, YAML/JSON request files, Postman collections
and HAR archives. Without a file, requests are read from stdin.
File extension is optional - 'get-user' resolves to 'get-user.http' automatically.

Defaults come from ~/.shellwget/config.jsonc, or .shellwget.jsonc in the
current directory. Flags override the config file.

Examples:
  shellwget get-user                      # Print the wget command
  shellwget api.http -n "create user"     # Pick a request by name (fuzzy)
  shellwget api.http --filter "[?method=='POST']"
  shellwget api.http -e userId=123        # Provide a variable
  shellwget api.http --indent-type tab --timeout 5000
  shellwget collection.json -o run.sh     # Save to a file
  cat request.json | shellwget -c         # Read stdin, copy to clipboard`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		stdin := pipedStdin(cmd)
		if len(args) == 0 && stdin == nil {
			return cmd.Help()
		}

		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		return cli.Run(cmd.Context(), cli.RunOptions{
			Files:      args,
			Config:     cfg,
			ExtraVars:  flagExtraVars,
			EnvFile:    flagEnvFile,
			Name:       flagName,
			Filter:     flagFilter,
			OutputPath: flagOutput,
			Copy:       flagCopy,
			Verbose:    flagVerbose,
			Stdin:      stdin,
			Stdout:     cmd.OutOrStdout(),
			Stderr:     cmd.ErrOrStderr(),
		})
	},
}

var optionsCmd = &cobra.Command{
	Use:   "options",
	Short: "List the conversion options and their defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cli.PrintOptions(cmd.OutOrStdout(), optionsFormat)
	},
}

var curl2wgetCmd = &cobra.Command{
	Use:   "curl2wget [curl command]",
	Short: "Convert a cURL command to a wget command",
	Long: `Convert a cURL command to a wget command.

You can pipe a cURL command from stdin or provide it as an argument.
curl's -m timeout is carried over unless --timeout is set.
Redirects are followed only when the command has -L, unless
--follow-redirect or the config file says otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}

		command, err := cli.ReadCurlCommand(args, pipedStdin(cmd))
		if err != nil {
			return err
		}

		snippet, err := cli.Curl2Wget(command, cfg.ConvertOptions())
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), snippet)
		return err
	},
}

// Conversion flags, shared by the root and curl2wget commands
var (
	flagIndentType  string
	flagIndentCount int
	flagTimeout     int
	flagFollow      bool
	flagTrim        bool
	flagColor       string
	flagStyle       string
)

// Flags for root command
var (
	flagExtraVars []string
	flagEnvFile   string
	flagName      string
	flagFilter    string
	flagOutput    string
	flagCopy      bool
	flagVerbose   bool
)

// Flags for options
var (
	optionsFormat string
)

func init() {
	// Conversion flags
	rootCmd.PersistentFlags().StringVar(&flagIndentType, "indent-type", "space", "Indentation type (space/tab)")
	rootCmd.PersistentFlags().IntVar(&flagIndentCount, "indent-count", 0, "Indentation count (0 = 4 spaces or 1 tab)")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 0, "Request timeout in milliseconds (0 = none)")
	rootCmd.PersistentFlags().BoolVar(&flagFollow, "follow-redirect", true, "Follow redirects")
	rootCmd.PersistentFlags().BoolVar(&flagTrim, "trim", false, "Trim request body fields")
	rootCmd.PersistentFlags().StringVar(&flagColor, "color", config.ColorAuto, "Highlight output (auto/always/never)")
	rootCmd.PersistentFlags().StringVar(&flagStyle, "style", "monokai", "Highlighting style")

	// Root command flags
	rootCmd.Flags().StringArrayVarP(&flagExtraVars, "extra-vars", "e", []string{}, "Set variable (key=value), can be repeated")
	rootCmd.Flags().StringVar(&flagEnvFile, "env-file", "", "Load variables from file")
	rootCmd.Flags().StringVarP(&flagName, "name", "n", "", "Select requests by name (exact or fuzzy)")
	rootCmd.Flags().StringVar(&flagFilter, "filter", "", "Select requests with a JMESPath expression")
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write snippets to a file")
	rootCmd.Flags().BoolVarP(&flagCopy, "copy", "c", false, "Copy snippets to the clipboard")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Print debug information")

	// options flags
	optionsCmd.Flags().StringVarP(&optionsFormat, "format", "f", cli.FormatTable, "Output format (table/json/yaml)")

	// Add subcommands
	rootCmd.AddCommand(optionsCmd)
	rootCmd.AddCommand(curl2wgetCmd)
}

// loadConfig reads the config file and applies the flags the user set
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	if err := config.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	cfg, err := config.Load(config.GetConfigFilePath())
	if err != nil {
		return nil, err
	}

	if err := overridesFromFlags(flags).Apply(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func overridesFromFlags(flags *pflag.FlagSet) cli.Overrides {
	var o cli.Overrides
	if flags.Changed("indent-type") {
		o.IndentType = &flagIndentType
	}
	if flags.Changed("indent-count") {
		o.IndentCount = &flagIndentCount
	}
	if flags.Changed("timeout") {
		o.RequestTimeout = &flagTimeout
	}
	if flags.Changed("follow-redirect") {
		o.FollowRedirect = &flagFollow
	}
	if flags.Changed("trim") {
		o.RequestBodyTrim = &flagTrim
	}
	if flags.Changed("color") {
		o.Color = &flagColor
	}
	if flags.Changed("style") {
		o.Style = &flagStyle
	}
	return o
}

// pipedStdin returns the command input unless it is an interactive terminal
func pipedStdin(cmd *cobra.Command) io.Reader {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return nil
	}
	return in
}
