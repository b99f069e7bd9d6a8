package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jochenvg/go-udev"
)

// buffer between the netlink monitor and the drain loop
const monitorBacklog = 16

// Poll cadences, loaded from config; vars so tests can shrink them.
var (
	hotplugDelay = time.Second
	eventDelay   = 250 * time.Millisecond
	sleep        = time.Sleep
)

func main() {
	flagParse()
	conf := getConfig()
	hotplugDelay = time.Duration(conf.HotplugPollMs) * time.Millisecond
	eventDelay = time.Duration(conf.EventPollMs) * time.Millisecond

	if list_devs {
		if err := displayDeviceList(conf); err != nil {
			fatal(err)
		}
		return
	}
	if err := run(flag.Args(), conf); err != nil {
		fatal(err)
	}
}

// run wires the one-shot discovery pass into the hotplug watch loop.
// Returns only on startup failure or signal-driven shutdown.
func run(args []string, conf *Config) error {
	var handle eventFunc
	switch {
	case watch:
		handle = watchHandler()
	case len(args) == 0:
		return errInvalidParams
	default:
		trigger := TriggerArgs{Command: args[0], Args: args[1:]}
		handle = pressHandler(conf, trigger)
	}

	// detached on purpose: a dead listener is replaced by the next
	// hotplug add event, not by a supervisor
	spawn := func(path string) {
		go func() {
			if err := listen(path, handle); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		}()
	}

	u := &udev.Udev{}
	if err := scanExisting(u, conf, spawn); err != nil {
		return err
	}
	devchan, err := deviceChan(u)
	if err != nil {
		return err
	}
	watchLoop(devchan, conf, spawn)
	return nil
}

// scanExisting classifies the devices already attached at startup and
// spawns a listener per controller. Classification misses are expected
// for nearly every input device and get skipped quietly.
func scanExisting(u *udev.Udev, conf *Config, spawn func(string)) error {
	e := u.NewEnumerate()
	if e == nil {
		return errUdev
	}
	if err := e.AddMatchSubsystem("input"); err != nil {
		return errUdevSubsystem
	}
	scanned, err := e.Devices()
	if err != nil {
		return errUdevDeviceScan
	}
	devices := make([]device, 0, len(scanned))
	for _, d := range scanned {
		devices = append(devices, device(d))
	}
	spawnControllers(devices, conf, spawn)
	return nil
}

// spawnControllers runs the classify and spawn pipeline over a batch of
// devices, one listener per controller found.
func spawnControllers(devices []device, conf *Config, spawn func(string)) {
	for _, d := range devices {
		if path, err := classify(d, conf); err == nil {
			spawn(path)
		}
	}
}

// deviceChan sets up the netlink monitor for the input subsystem and
// returns its device channel. The channel closes after a quit signal.
func deviceChan(u *udev.Udev) (<-chan device, error) {
	m := u.NewMonitorFromNetlink("udev")
	if m == nil {
		return nil, errUdevMonitor
	}
	if err := m.FilterAddMatchSubsystem("input"); err != nil {
		return nil, errUdevMonitor
	}

	done := make(chan struct{})
	ch, err := m.DeviceChan(done)
	if err != nil {
		return nil, errUdevMonitor
	}
	devchan := make(chan device, monitorBacklog)
	go func() {
		<-sighalt()
		close(done)
	}()
	go func() {
		for d := range ch {
			devchan <- d
		}
		close(devchan)
	}()
	return devchan, nil
}

// main loop
// drains the hotplug queue, spawning a listener for each newly added
// controller, then sleeps until the next drain. Remove and change events
// are ignored; a re-plugged pad comes back as a fresh add.
func watchLoop(devchan <-chan device, conf *Config, spawn func(string)) {
	for {
		for drained := false; !drained; {
			select {
			case d, ok := <-devchan:
				if !ok {
					return
				}
				if d.Action() != "add" {
					continue
				}
				if path, err := classify(d, conf); err == nil {
					spawn(path)
				}
			default:
				drained = true
			}
		}
		sleep(hotplugDelay)
	}
}

// watch for signals to quit
func sighalt() <-chan os.Signal {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt, syscall.SIGQUIT, syscall.SIGTERM)
	return interrupts
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
