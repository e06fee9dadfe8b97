package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/grammatek/KeyboardKit/pkg/config"
	"github.com/grammatek/KeyboardKit/pkg/log"
	"github.com/grammatek/KeyboardKit/pkg/render"
)

const (
	cmdName     = "kbkit"
	cmdDesc     = `Reference data for keyboard extensions: supported locales and device screen sizes.`
	cmdExamples = `  # List all locales, sorted by their native name:
  kbkit locales

  # List English locales with en-US first, as JSON:
  kbkit locales --first en-US --filter 'language == "en"' -o json

  # Find the device for a screen size:
  kbkit screens match 1366x1024

  # Serve the tables over MCP on stdio:
  kbkit serve-mcp`
)

type RootArgs struct {
	Config     *config.Config
	LogLevel   string
	LogFormat  string
	ConfigPath string
	Output     string
}

func NewRootArgs() *RootArgs {
	return &RootArgs{}
}

func (ra *RootArgs) AddFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVar(&ra.LogLevel, "log-level", "info", fmt.Sprintf("Log level, one of: %s", log.AllLevels))
	cmd.PersistentFlags().
		StringVar(&ra.LogFormat, "log-format", "text", fmt.Sprintf("Log format, one of: %s", log.AllFormats))
	cmd.PersistentFlags().
		StringVar(&ra.ConfigPath, "config", "", "Path to the kbkit configuration file")
	cmd.PersistentFlags().
		StringVarP(&ra.Output, "output", "o", "", fmt.Sprintf("Output format, one of: %s", render.AllFormats))

	var err error

	err = cmd.RegisterFlagCompletionFunc("log-format",
		cobra.FixedCompletions(log.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	must(err)

	err = cmd.RegisterFlagCompletionFunc("log-level",
		cobra.FixedCompletions(log.AllLevels, cobra.ShellCompDirectiveNoFileComp),
	)
	must(err)

	err = cmd.RegisterFlagCompletionFunc("output",
		cobra.FixedCompletions(render.AllFormats, cobra.ShellCompDirectiveNoFileComp),
	)
	must(err)

	must(cmd.MarkPersistentFlagFilename("config", "yaml", "yml"))
}

// OutputFormat returns the format given by --output, or the configured
// default.
func (ra *RootArgs) OutputFormat() (render.Format, error) {
	format := ra.Output
	if format == "" && ra.Config != nil {
		format = ra.Config.Output.Format
	}
	if format == "" {
		return render.FormatText, nil
	}

	f, err := render.ParseFormat(format)
	if err != nil {
		return "", fmt.Errorf("invalid argument %q for \"--output\" flag: %w", format, err)
	}

	return f, nil
}

func NewRootCmd() *cobra.Command {
	args := NewRootArgs()

	cmd := &cobra.Command{
		Use:               cmdName,
		Short:             cmdDesc,
		Example:           cmdExamples,
		SilenceUsage:      true,
		PersistentPreRunE: setup(args),
	}

	args.AddFlags(cmd)

	cmd.AddCommand(
		NewLocalesCmd(args),
		NewScreensCmd(args),
		NewConfigCmd(args),
		NewServeMCPCmd(args),
		NewVersionCmd(args),
	)

	bindEnvVars(cmd)

	return cmd
}

func setup(ra *RootArgs) func(cmd *cobra.Command, _ []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		logHandler, err := log.CreateHandlerWithStrings(cmd.ErrOrStderr(), ra.LogLevel, ra.LogFormat)
		if err != nil {
			return fmt.Errorf("create log handler: %w", err)
		}

		logger := slog.New(logHandler)
		slog.SetDefault(logger)
		cmd.SetContext(log.IntoContext(cmd.Context(), logger))

		configPath := ra.ConfigPath
		if configPath == "" {
			configPath = config.GetPath()
		}

		cfg, err := config.LoadFile(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		logger.Debug("loaded configuration", slog.String("path", configPath))

		ra.Config = cfg

		return nil
	}
}
