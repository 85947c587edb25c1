package adb

import (
	"context"
	"strings"
)

type call struct {
	name string
	args []string
}

// fakeRunner records every invocation and replies from a canned table keyed
// by the joined argument list.
type fakeRunner struct {
	calls   []call
	outputs map[string]string
	errs    map[string]error
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	key := strings.Join(args, " ")
	return []byte(f.outputs[key]), f.errs[key]
}
