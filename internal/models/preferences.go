package models

const (
	UnitMetric   = "metric"
	UnitImperial = "imperial"
)

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
	ThemeAuto  = "auto"
)

type Preferences struct {
	UnitSystem string `json:"unit_system"`
	Theme      string `json:"theme"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		UnitSystem: UnitMetric,
		Theme:      ThemeAuto,
	}
}
