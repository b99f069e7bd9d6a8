package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/BurntSushi/xdg"
)

// HotplugPollMs is the time between drains of the udev hotplug queue.
// EventPollMs is the time between event fetches on each open controller.
// TriggerCodes are the key codes treated as the home button.
// JoystickProp is the device property whose value "1" marks a controller.
type Config struct {
	HotplugPollMs int
	EventPollMs   int
	TriggerCodes  []uint16
	JoystickProp  string
}

func defaultConfig() *Config {
	return &Config{
		HotplugPollMs: 1000,
		EventPollMs:   250,
		TriggerCodes:  []uint16{316, 139}, // BTN_MODE, KEY_MENU
		JoystickProp:  "ID_INPUT_JOYSTICK",
	}
}

func configPath() string {
	paths := xdg.Paths{
		Override:  os.Getenv("GuidersConfig"),
		XDGSuffix: "guiders",
	}
	path, err := paths.ConfigFile("config.toml")
	if err != nil {
		// no config anywhere, run on defaults
		return ""
	}
	return path
}

func loadConfig(path string) *Config {
	conf := defaultConfig()
	var bs []byte
	var err error
	if bs, err = os.ReadFile(path); err != nil {
		fatal(err)
	}
	if _, err = toml.Decode(string(bs), conf); err != nil {
		fatal(err)
	}
	return conf
}

func getConfig() *Config {
	path := configfile
	if path == "" {
		path = configPath()
	}
	if path == "" {
		return defaultConfig()
	}
	return loadConfig(path)
}
