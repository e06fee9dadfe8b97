package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// bindEnvVars binds KBKIT_<FLAG_NAME> environment variables to the flags of
// cmd and all of its subcommands. For example, "--log-level" is bound to
// KBKIT_LOG_LEVEL.
//
// Arguments take precedence over environment variables, which take precedence
// over default values. Flag usage is updated to name the variable.
func bindEnvVars(cmd *cobra.Command) {
	cmd.Flags().VisitAll(bindFlagToEnv)
	cmd.PersistentFlags().VisitAll(bindFlagToEnv)

	for _, sub := range cmd.Commands() {
		bindEnvVars(sub)
	}
}

func bindFlagToEnv(flag *pflag.Flag) {
	envName := flagToEnvName(flag.Name)

	if !strings.Contains(flag.Usage, envName) {
		flag.Usage = fmt.Sprintf("%s ($%s)", flag.Usage, envName)
	}

	if flag.Changed {
		return
	}

	envValue, ok := os.LookupEnv(envName)
	if !ok {
		return
	}

	err := flag.Value.Set(envValue)
	if err != nil {
		// Keep the default value.
		slog.Error("failed to set flag from environment variable",
			slog.String("flag", flag.Name),
			slog.String("env", envName),
			slog.String("value", envValue),
			slog.Any("error", err),
		)
	}
}

// flagToEnvName converts a flag name to its environment variable name.
// Example: "log-level" -> "KBKIT_LOG_LEVEL".
func flagToEnvName(flagName string) string {
	envName := strings.ReplaceAll(flagName, "-", "_")
	return strings.ToUpper(cmdName + "_" + envName)
}
