package screen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grammatek/KeyboardKit/pkg/screen"
)

func TestLandscapeIsFlippedPortrait(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		portrait  screen.Size
		landscape screen.Size
	}{
		"large ipad pro": {
			portrait:  screen.IPadProLargeScreenPortrait,
			landscape: screen.IPadProLargeScreenLandscape,
		},
		"small ipad pro": {
			portrait:  screen.IPadProSmallScreenPortrait,
			landscape: screen.IPadProSmallScreenLandscape,
		},
		"ipad": {
			portrait:  screen.IPadScreenPortrait,
			landscape: screen.IPadScreenLandscape,
		},
		"iphone pro max": {
			portrait:  screen.IPhoneProMaxScreenPortrait,
			landscape: screen.IPhoneProMaxScreenLandscape,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.portrait.Height, tc.landscape.Width)
			assert.Equal(t, tc.portrait.Width, tc.landscape.Height)
			assert.Equal(t, screen.Portrait, tc.portrait.Orientation())
			assert.Equal(t, screen.Landscape, tc.landscape.Orientation())
		})
	}
}

func TestPortraitValues(t *testing.T) {
	t.Parallel()

	assert.Equal(t, screen.NewSize(1024, 1366), screen.IPadProLargeScreenPortrait)
	assert.Equal(t, screen.NewSize(834, 1194), screen.IPadProSmallScreenPortrait)
	assert.Equal(t, screen.NewSize(768, 1024), screen.IPadScreenPortrait)
	assert.Equal(t, screen.NewSize(428, 926), screen.IPhoneProMaxScreenPortrait)
}

func TestSize_IsScreenSize(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		size  screen.Size
		other screen.Size
		want  bool
	}{
		"same portrait": {
			size:  screen.NewSize(1024, 1366),
			other: screen.IPadProLargeScreenPortrait,
			want:  true,
		},
		"flipped": {
			size:  screen.NewSize(1366, 1024),
			other: screen.IPadProLargeScreenPortrait,
			want:  true,
		},
		"landscape against landscape": {
			size:  screen.IPadScreenLandscape,
			other: screen.IPadScreenLandscape,
			want:  true,
		},
		"portrait against landscape": {
			size:  screen.IPhoneProMaxScreenPortrait,
			other: screen.IPhoneProMaxScreenLandscape,
			want:  true,
		},
		"different device": {
			size:  screen.IPadScreenPortrait,
			other: screen.IPadProSmallScreenPortrait,
			want:  false,
		},
		"one component shared": {
			size:  screen.NewSize(1024, 768),
			other: screen.IPadProLargeScreenPortrait,
			want:  false,
		},
		"no tolerance": {
			size:  screen.NewSize(1024.0001, 1366),
			other: screen.IPadProLargeScreenPortrait,
			want:  false,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.size.IsScreenSize(tc.other))
		})
	}
}

func TestMatch(t *testing.T) {
	t.Parallel()

	for _, d := range screen.Devices() {
		got, ok := screen.Match(d.Portrait())
		require.True(t, ok, d.String())
		assert.Equal(t, d, got)

		got, ok = screen.Match(d.Landscape())
		require.True(t, ok, d.String())
		assert.Equal(t, d, got)

		assert.Equal(t, d.Portrait().Flipped(), d.Landscape())
	}

	_, ok := screen.Match(screen.NewSize(100, 100))
	assert.False(t, ok)

	for _, d := range screen.Devices() {
		assert.False(t, d.Matches(screen.NewSize(100, 100)), d.String())
	}
}

func TestDevices(t *testing.T) {
	t.Parallel()

	names := []string{}
	for _, d := range screen.Devices() {
		names = append(names, d.String())
	}

	assert.Equal(t, []string{
		"iPadProLargeScreen",
		"iPadProSmallScreen",
		"iPadScreen",
		"iPhoneProMaxScreen",
	}, names)

	unknown := screen.Device(42)
	assert.Equal(t, "unknown", unknown.String())
	assert.Equal(t, screen.Size{}, unknown.Portrait())
	assert.False(t, unknown.Matches(screen.Size{}))
}

func TestParseSize(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		input string
		want  screen.Size
		err   bool
	}{
		"lowercase x": {input: "1024x1366", want: screen.NewSize(1024, 1366)},
		"uppercase x": {input: "768X1024", want: screen.NewSize(768, 1024)},
		"times sign":  {input: "428×926", want: screen.NewSize(428, 926)},
		"spaces":      {input: " 834 x 1194 ", want: screen.NewSize(834, 1194)},
		"fractional":  {input: "10.5x20", want: screen.NewSize(10.5, 20)},
		"no sep":      {input: "1024", err: true},
		"bad width":   {input: "ax10", err: true},
		"bad height":  {input: "10xb", err: true},
		"negative":    {input: "-1x10", err: true},
		"nan width":   {input: "NaNx10", err: true},
		"inf width":   {input: "Infx10", err: true},
		"-inf height": {input: "10x-Inf", err: true},
		"empty":       {input: "", err: true},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, err := screen.ParseSize(tc.input)
			if tc.err {
				require.ErrorIs(t, err, screen.ErrInvalidSize)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSize_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1024x1366", screen.IPadProLargeScreenPortrait.String())
	assert.Equal(t, "10.5x3", screen.NewSize(10.5, 3).String())
	assert.Equal(t, screen.Square, screen.NewSize(3, 3).Orientation())
	assert.InDelta(t, 396328.0, screen.IPhoneProMaxScreenPortrait.Area(), 0)
}
