/*
Guiders watches for game controllers and runs a configured command each
time a controller's home ("guide") button is pressed. Designed to run in
the background of a user session on a Linux system, say to raise a game
launcher or toggle an overlay.

Run it with the command to execute and its arguments:

    guiders steam -bigpicture

Controllers attached at startup are picked up immediately; anything
plugged in later is picked up within about a second via udev hotplug
events. A device counts as a controller when udev tags it with
ID_INPUT_JOYSTICK=1.

The home button is recognized by key code, 316 (BTN_MODE) or 139
(KEY_MENU) out of the box, which covers the guide button on most pads. If
yours reports something else, find the code with watch mode..

    guiders -w
    (press the button)

..and set TriggerCodes in the config file. The TOML config file is
optional and searched for in..

	$XDG_CONFIG_HOME/guiders/config.toml

See example-config.toml for the tunables (poll intervals, trigger codes,
the udev property used for classification).

NOTE: By default XDG_CONFIG_HOME is set to ~/.config on most Linux systems.

NOTE: The command fires on *release* of the button and nothing waits on
it, so it is best kept idempotent.
*/
package main
