// Package actions maps symbolic setting names to the adb shell commands
// that apply them.
package actions

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samber/lo"
)

// ErrUnknownAction is returned by Lookup for names not in the table.
var ErrUnknownAction = errors.New("unknown action")

// Command is one argument vector passed to `adb shell`.
type Command []string

// Table maps an action name to the commands it runs, in order.
type Table map[string][]Command

var builtin = Table{
	"wifi_on":         {{"svc", "wifi", "enable"}},
	"wifi_off":        {{"svc", "wifi", "disable"}},
	"data_on":         {{"svc", "data", "enable"}},
	"data_off":        {{"svc", "data", "disable"}},
	"bluetooth_on":    {{"svc", "bluetooth", "enable"}},
	"bluetooth_off":   {{"svc", "bluetooth", "disable"}},
	"screen_on":       {{"input", "keyevent", "KEYCODE_WAKEUP"}},
	"screen_off":      {{"input", "keyevent", "KEYCODE_SLEEP"}},
	"stay_awake_on":   {{"svc", "power", "stayon", "true"}},
	"stay_awake_off":  {{"svc", "power", "stayon", "false"}},
	"auto_rotate_on":  {{"settings", "put", "system", "accelerometer_rotation", "1"}},
	"auto_rotate_off": {{"settings", "put", "system", "accelerometer_rotation", "0"}},
	"home":            {{"input", "keyevent", "KEYCODE_HOME"}},
	"reboot":          {{"reboot"}},
	"airplane_on": {
		{"settings", "put", "global", "airplane_mode_on", "1"},
		{"am", "broadcast", "-a", "android.intent.action.AIRPLANE_MODE", "--ez", "state", "true"},
	},
	"airplane_off": {
		{"settings", "put", "global", "airplane_mode_on", "0"},
		{"am", "broadcast", "-a", "android.intent.action.AIRPLANE_MODE", "--ez", "state", "false"},
	},
}

// Builtin returns a copy of the built-in action table.
func Builtin() Table {
	return builtin.Merge(nil)
}

// Lookup returns the command sequence for name.
func (t Table) Lookup(name string) ([]Command, error) {
	cmds, ok := t[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return cmds, nil
}

// Names returns the action names, sorted.
func (t Table) Names() []string {
	names := lo.Keys(t)
	sort.Strings(names)
	return names
}

// Merge returns a new table holding t's entries overlaid with overrides.
// Entries with no commands are ignored.
func (t Table) Merge(overrides map[string][][]string) Table {
	out := make(Table, len(t)+len(overrides))
	for name, cmds := range t {
		out[name] = cloneCommands(cmds)
	}
	for name, argvs := range overrides {
		if len(argvs) == 0 {
			continue
		}
		out[name] = lo.Map(argvs, func(argv []string, _ int) Command {
			return append(Command(nil), argv...)
		})
	}
	return out
}

func cloneCommands(cmds []Command) []Command {
	out := make([]Command, len(cmds))
	for i, c := range cmds {
		out[i] = append(Command(nil), c...)
	}
	return out
}
