package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/grammatek/KeyboardKit/pkg/expr"
	"github.com/grammatek/KeyboardKit/pkg/locale"
	"github.com/grammatek/KeyboardKit/pkg/log"
	"github.com/grammatek/KeyboardKit/pkg/render"
)

type LocalesArgs struct {
	*RootArgs

	First  string
	Filter string
}

func NewLocalesArgs(rootArgs *RootArgs) *LocalesArgs {
	return &LocalesArgs{RootArgs: rootArgs}
}

func (la *LocalesArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&la.First, "first", "", "Locale to list before all others")
	cmd.Flags().StringVar(&la.Filter, "filter", "", "CEL expression selecting the listed locales")

	must(cmd.RegisterFlagCompletionFunc("first", completeLocaleIDs))
}

// Locales returns the locales selected by the flags and configuration, in
// display order. Flags take precedence over the configuration.
func (la *LocalesArgs) Locales() ([]locale.Locale, error) {
	filter := la.Filter
	if filter == "" && la.Config != nil {
		filter = la.Config.Locales.Filter
	}

	first := locale.Undefined
	switch {
	case la.First != "":
		l, err := locale.Parse(la.First)
		if err != nil {
			return nil, fmt.Errorf("invalid argument %q for \"--first\" flag: %w", la.First, err)
		}

		first = l

	case la.Config != nil:
		first = la.Config.FirstLocale()
	}

	ls, err := expr.SelectLocales(filter, first, locale.All())
	if err != nil {
		return nil, fmt.Errorf("filter locales: %w", err)
	}

	return ls, nil
}

func NewLocalesCmd(rootArgs *RootArgs) *cobra.Command {
	la := NewLocalesArgs(rootArgs)

	cmd := &cobra.Command{
		Use:     "locales",
		Aliases: []string{"locale"},
		Short:   "List supported locales, sorted by their native name",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := la.OutputFormat()
			if err != nil {
				return err
			}

			ls, err := la.Locales()
			if err != nil {
				return err
			}

			log.WithContext(cmd.Context()).Debug("listing locales", slog.Int("count", len(ls)))

			return render.Locales(cmd.OutOrStdout(), format, ls) //nolint:wrapcheck // Already wrapped.
		},
	}

	la.AddFlags(cmd)

	cmd.AddCommand(newLocaleGetCmd(rootArgs), newLocaleFindCmd(rootArgs))

	return cmd
}

func newLocaleGetCmd(ra *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:               "get ID",
		Short:             "Show a single locale",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeLocaleIDs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ra.OutputFormat()
			if err != nil {
				return err
			}

			l, err := locale.Parse(args[0])
			if err != nil {
				return err //nolint:wrapcheck // Already descriptive.
			}

			return render.Locales(cmd.OutOrStdout(), format, []locale.Locale{l}) //nolint:wrapcheck // Already wrapped.
		},
	}
}

func newLocaleFindCmd(ra *RootArgs) *cobra.Command {
	return &cobra.Command{
		Use:   "find QUERY",
		Short: "Fuzzy search locales by identifier or name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ra.OutputFormat()
			if err != nil {
				return err
			}

			ls := locale.Search(args[0], locale.All())

			log.WithContext(cmd.Context()).Debug("searched locales", slog.String("query", args[0]), slog.Int("matches", len(ls)))

			return render.Locales(cmd.OutOrStdout(), format, ls) //nolint:wrapcheck // Already wrapped.
		},
	}
}

func completeLocaleIDs(_ *cobra.Command, _ []string, _ string) ([]cobra.Completion, cobra.ShellCompDirective) {
	completions := []cobra.Completion{}
	for _, l := range locale.Sort(locale.All()) {
		completions = append(completions, cobra.CompletionWithDesc(l.ID(), l.DisplayName()))
	}

	return completions, cobra.ShellCompDirectiveNoFileComp
}
