package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"

	"github.com/holoplot/go-evdev"
	"golang.org/x/sys/unix"
)

// TriggerArgs is the command run on each home button press. Built once at
// startup and shared read-only by every listener.
type TriggerArgs struct {
	Command string
	Args    []string
}

// fallback when a device does not report a name
const namelessDevice = "Nameless device"

// eventFunc handles one raw input event from the named device.
type eventFunc func(name string, ev *evdev.InputEvent)

// abstract the *evdev.InputDevice type so I can feed canned events
type eventSource interface {
	Name() (string, error)
	ReadOne() (*evdev.InputEvent, error)
	Close() error
}

// listen owns the device at path until the first failed fetch. It only
// ever returns an error.
func listen(path string, handle eventFunc) error {
	dev, err := evdev.Open(path)
	if err != nil {
		return &openError{path: path, err: err}
	}
	defer dev.Close()
	// blocking reads would make fetchBatch hoard events instead of
	// dispatching them, so a handle without nonblocking mode is unusable
	if err := dev.NonBlock(); err != nil {
		return &openError{path: path, err: err}
	}
	return listenEvents(dev, handle)
}

func listenEvents(src eventSource, handle eventFunc) error {
	name, err := src.Name()
	if err != nil || name == "" {
		name = namelessDevice
	}
	for {
		batch, err := fetchBatch(src)
		if err != nil {
			return &fetchError{name: name, err: err}
		}
		for _, ev := range batch {
			handle(name, ev)
		}
		sleep(eventDelay)
	}
}

// fetchBatch drains the events currently queued on src. EAGAIN means the
// queue is empty, not a failure.
func fetchBatch(src eventSource) ([]*evdev.InputEvent, error) {
	var batch []*evdev.InputEvent
	for {
		ev, err := src.ReadOne()
		if errors.Is(err, unix.EAGAIN) {
			return batch, nil
		}
		if err != nil {
			return nil, err
		}
		batch = append(batch, ev)
	}
}

// isTrigger reports whether ev is the home button coming back up. Value 0
// is the release transition; down (1) and auto-repeat (2) don't count, so
// holding the button fires exactly once, on release.
func isTrigger(ev *evdev.InputEvent, codes []uint16) bool {
	if ev.Type != evdev.EV_KEY || ev.Value != 0 {
		return false
	}
	for _, code := range codes {
		if ev.Code == evdev.EvCode(code) {
			return true
		}
	}
	return false
}

// pressHandler runs the configured command on every trigger press.
func pressHandler(conf *Config, trigger TriggerArgs) eventFunc {
	return func(name string, ev *evdev.InputEvent) {
		if !isTrigger(ev, conf.TriggerCodes) {
			return
		}
		log.Println("Pressed:", name)
		runTrigger(trigger)
	}
}

// watchHandler writes key events to STDOUT so users can find the code
// their pad reports for the home button.
func watchHandler() eventFunc {
	return func(name string, ev *evdev.InputEvent) {
		if ev.Type != evdev.EV_KEY {
			return
		}
		fmt.Printf("%s: %s(%d) %d\n",
			name, evdev.CodeName(ev.Type, ev.Code), ev.Code, ev.Value)
	}
}

// runTrigger spawns the command and moves on; nothing waits for the
// result beyond reaping the child.
func runTrigger(t TriggerArgs) {
	cmd := exec.Command(t.Command, t.Args...)
	if err := cmd.Start(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running command:", err)
		return
	}
	go cmd.Wait()
}
