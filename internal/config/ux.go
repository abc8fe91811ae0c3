package config

// UIConfig holds terminal presentation settings.
type UIConfig struct {
	Theme     string `yaml:"theme"`      // auto, light, dark
	AltScreen bool   `yaml:"alt_screen"` // run full screen
	Mouse     bool   `yaml:"mouse"`      // accept mouse taps on the cake
}
