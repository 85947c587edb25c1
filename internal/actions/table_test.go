package actions

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupBuiltin(t *testing.T) {
	table := Builtin()

	cmds, err := table.Lookup("wifi_on")
	require.NoError(t, err)
	assert.Equal(t, []Command{{"svc", "wifi", "enable"}}, cmds)

	cmds, err = table.Lookup("airplane_on")
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, Command{"settings", "put", "global", "airplane_mode_on", "1"}, cmds[0])
	assert.Equal(t, "am", cmds[1][0])
}

func TestLookupUnknown(t *testing.T) {
	_, err := Builtin().Lookup("teleport_on")
	assert.ErrorIs(t, err, ErrUnknownAction)
	assert.Contains(t, err.Error(), "teleport_on")
}

func TestNamesSorted(t *testing.T) {
	names := Table{"b": nil, "a": nil, "c": nil}.Names()
	assert.Equal(t, []string{"a", "b", "c"}, names)
	assert.Contains(t, Builtin().Names(), "wifi_off")
}

func TestMergeOverridesAndAdds(t *testing.T) {
	base := Builtin()
	merged := base.Merge(map[string][][]string{
		"wifi_on":    {{"cmd", "wifi", "set-wifi-enabled", "enabled"}},
		"dark_on":    {{"cmd", "uimode", "night", "yes"}},
		"ignored_on": {},
	})

	cmds, err := merged.Lookup("wifi_on")
	require.NoError(t, err)
	assert.Equal(t, []Command{{"cmd", "wifi", "set-wifi-enabled", "enabled"}}, cmds)

	_, err = merged.Lookup("dark_on")
	assert.NoError(t, err)
	_, err = merged.Lookup("ignored_on")
	assert.ErrorIs(t, err, ErrUnknownAction)

	// the receiver is untouched
	cmds, err = base.Lookup("wifi_on")
	require.NoError(t, err)
	assert.Equal(t, []Command{{"svc", "wifi", "enable"}}, cmds)
	_, err = base.Lookup("dark_on")
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestBuiltinIsCopy(t *testing.T) {
	a := Builtin()
	a["wifi_on"][0][2] = "mangled"
	cmds, _ := Builtin().Lookup("wifi_on")
	assert.Equal(t, "enable", cmds[0][2])
}
