package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grammatek/KeyboardKit/pkg/render"
	"github.com/grammatek/KeyboardKit/pkg/screen"
)

// ErrNoMatch indicates that no known device has the requested screen size.
var ErrNoMatch = errors.New("no matching device")

// ScreenMatch is the output of "screens match".
type ScreenMatch struct {
	Device      string      `json:"device"`
	Size        screen.Size `json:"size"`
	Orientation string      `json:"orientation"`
}

func (m ScreenMatch) String() string {
	return fmt.Sprintf("%s (%s)", m.Device, m.Orientation)
}

func NewScreensCmd(ra *RootArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "screens",
		Aliases: []string{"screen"},
		Short:   "List known device screen sizes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := ra.OutputFormat()
			if err != nil {
				return err
			}

			return render.Screens(cmd.OutOrStdout(), format, screen.Devices()) //nolint:wrapcheck // Already wrapped.
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "match WIDTHxHEIGHT",
		Short: "Find the device with a screen size, in either orientation",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := ra.OutputFormat()
			if err != nil {
				return err
			}

			s, err := screen.ParseSize(args[0])
			if err != nil {
				return fmt.Errorf("invalid argument: %w", err)
			}

			d, ok := screen.Match(s)
			if !ok {
				return fmt.Errorf("%w: %s", ErrNoMatch, s)
			}

			return render.Value(cmd.OutOrStdout(), format, ScreenMatch{ //nolint:wrapcheck // Already wrapped.
				Device:      d.String(),
				Size:        s,
				Orientation: string(s.Orientation()),
			})
		},
	})

	return cmd
}
