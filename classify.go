package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/jochenvg/go-udev"
)

// abstract the *udev.Device type so I can create test entries
type device interface {
	Action() string
	Devnode() string
	Sysname() string
	PropertyValue(string) string
}

// the value udev's input builtin assigns for joystick-class devices
const joystickValue = "1"

// classify decides whether dev is a game controller and returns its device
// node path. The path is repaired to valid UTF-8 rather than rejected, so a
// weird node name never fails classification on its own.
func classify(dev device, conf *Config) (string, error) {
	if dev.PropertyValue(conf.JoystickProp) != joystickValue {
		return "", errNotController
	}
	node := dev.Devnode()
	if node == "" {
		return "", errNoDevicePath
	}
	node = strings.ToValidUTF8(node, "�")
	log.Println("Device found:", node)
	return node, nil
}

// display the list of input devices with device nodes, controllers marked
func displayDeviceList(conf *Config) error {
	u := udev.Udev{}
	e := u.NewEnumerate()
	if e == nil {
		return errUdev
	}
	if err := e.AddMatchSubsystem("input"); err != nil {
		return errUdevSubsystem
	}
	e.AddMatchIsInitialized()

	udev_devices, err := e.Devices()
	if err != nil {
		return errUdevDeviceScan
	}
	for _, d := range udev_devices {
		if d.Devnode() == "" {
			continue
		}
		fmt.Println(devString(device(d), conf))
	}
	return nil
}

// one line per device node, a leading * marks a classified controller
func devString(dev device, conf *Config) string {
	name := strings.Trim(strings.TrimSpace(dev.PropertyValue("NAME")), `"`)
	if name == "" {
		name = dev.Sysname()
	}
	marker := " "
	if dev.PropertyValue(conf.JoystickProp) == joystickValue {
		marker = "*"
	}
	return fmt.Sprintf("%s %-24s %s", marker, dev.Devnode(), name)
}
