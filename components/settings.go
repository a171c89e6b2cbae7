package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData holds the toggles the demo persists between runs.
type SettingsData struct {
	DiagonalPaths bool
	DebugOverlay  bool
}

var Settings = donburi.NewComponentType[SettingsData]()
