package screen

// Device identifies a known class of device screen.
type Device int

const (
	IPadProLargeScreen Device = iota
	IPadProSmallScreen
	IPadScreen
	IPhoneProMaxScreen
)

// Portrait sizes of all known devices. Landscape sizes are always derived.
var (
	IPadProLargeScreenPortrait = Size{Width: 1024, Height: 1366}
	IPadProSmallScreenPortrait = Size{Width: 834, Height: 1194}
	IPadScreenPortrait         = Size{Width: 768, Height: 1024}
	IPhoneProMaxScreenPortrait = Size{Width: 428, Height: 926}

	IPadProLargeScreenLandscape = IPadProLargeScreenPortrait.Flipped()
	IPadProSmallScreenLandscape = IPadProSmallScreenPortrait.Flipped()
	IPadScreenLandscape         = IPadScreenPortrait.Flipped()
	IPhoneProMaxScreenLandscape = IPhoneProMaxScreenPortrait.Flipped()
)

var devices = [...]struct {
	name     string
	portrait Size
}{
	IPadProLargeScreen: {"iPadProLargeScreen", IPadProLargeScreenPortrait},
	IPadProSmallScreen: {"iPadProSmallScreen", IPadProSmallScreenPortrait},
	IPadScreen:         {"iPadScreen", IPadScreenPortrait},
	IPhoneProMaxScreen: {"iPhoneProMaxScreen", IPhoneProMaxScreenPortrait},
}

// Devices returns all known devices, in declaration order.
func Devices() []Device {
	all := make([]Device, len(devices))
	for i := range devices {
		all[i] = Device(i)
	}

	return all
}

// Match returns the first known device whose screen matches s in either
// orientation.
func Match(s Size) (Device, bool) {
	for _, d := range Devices() {
		if d.Matches(s) {
			return d, true
		}
	}

	return 0, false
}

// Portrait returns the portrait screen size of d.
func (d Device) Portrait() Size {
	if !d.valid() {
		return Size{}
	}

	return devices[d].portrait
}

// Landscape returns the landscape screen size of d.
func (d Device) Landscape() Size {
	return d.Portrait().Flipped()
}

// Matches reports whether s is the screen size of d in either orientation.
func (d Device) Matches(s Size) bool {
	if !d.valid() {
		return false
	}

	return s.IsScreenSize(d.Portrait())
}

func (d Device) String() string {
	if !d.valid() {
		return "unknown"
	}

	return devices[d].name
}

func (d Device) valid() bool {
	return d >= 0 && int(d) < len(devices)
}
