package main

import (
	"errors"
	"fmt"
)

// One variant per failure site, so callers and tests can tell them apart.
// The udev variants are startup-fatal; the rest are advisory.
var (
	errUdev           = errors.New("udev: cannot create enumerate context")
	errUdevSubsystem  = errors.New("udev: cannot match input subsystem")
	errUdevDeviceScan = errors.New("udev: device scan failed")
	errUdevMonitor    = errors.New("udev: cannot create netlink monitor")

	errNotController = errors.New("not a controller")
	errNoDevicePath  = errors.New("controller has no device node")

	errInvalidParams = errors.New("no command given, see -h for usage")
)

// openError is a listener failing to open its device node.
type openError struct {
	path string
	err  error
}

func (e *openError) Error() string {
	return fmt.Sprintf("open %s: %v", e.path, e.err)
}

func (e *openError) Unwrap() error { return e.err }

// fetchError is a listener failing to read events, usually because the
// controller was unplugged. Carries the device name for the log line.
type fetchError struct {
	name string
	err  error
}

func (e *fetchError) Error() string {
	return fmt.Sprintf("fetch events from %s: %v", e.name, e.err)
}

func (e *fetchError) Unwrap() error { return e.err }
