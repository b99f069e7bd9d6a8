package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func init() {
	log.SetOutput(io.Discard)
}

func TestConfigLoad(t *testing.T) {
	conf := loadConfig("./example-config.toml")
	if !reflect.DeepEqual(conf, defaultConfig()) {
		t.Error("example config drifted from the defaults:", conf)
	}
}

func TestConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	body := "EventPollMs = 100\nTriggerCodes = [172]\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	conf := loadConfig(path)
	if conf.EventPollMs != 100 {
		t.Error("EventPollMs not overridden, got:", conf.EventPollMs)
	}
	if !reflect.DeepEqual(conf.TriggerCodes, []uint16{172}) {
		t.Error("TriggerCodes not overridden, got:", conf.TriggerCodes)
	}
	if conf.HotplugPollMs != 1000 {
		t.Error("unset field lost its default, got:", conf.HotplugPollMs)
	}
	if conf.JoystickProp != "ID_INPUT_JOYSTICK" {
		t.Error("unset field lost its default, got:", conf.JoystickProp)
	}
}

func TestConfigMissingFile(t *testing.T) {
	t.Setenv("GuidersConfig", t.TempDir())
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	configfile = ""
	conf := getConfig()
	if !reflect.DeepEqual(conf, defaultConfig()) {
		t.Error("missing config should yield defaults, got:", conf)
	}
}
