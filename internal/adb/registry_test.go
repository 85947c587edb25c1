package adb

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticLister struct {
	devices []Device
	err     error
	calls   int
}

func (s *staticLister) Devices(context.Context) ([]Device, error) {
	s.calls++
	return s.devices, s.err
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func TestRegistryFilterRemovesDisconnected(t *testing.T) {
	lister := &staticLister{devices: []Device{
		{Serial: "a", State: "device"},
		{Serial: "b", State: "offline"},
		{Serial: "c", State: "device"},
		{Serial: "d", State: "unauthorized"},
	}}
	r := NewRegistry(lister, quietLogger())

	got, err := r.Filter(context.Background(), []string{"c", "b", "missing", "a", "c", "d"})
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, got)
}

func TestRegistryFilterEmptySelectsAllConnected(t *testing.T) {
	lister := &staticLister{devices: []Device{
		{Serial: "z", State: "device"},
		{Serial: "b", State: "offline"},
		{Serial: "a", State: "device"},
	}}
	r := NewRegistry(lister, quietLogger())

	got, err := r.Filter(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "z"}, got)
}

func TestRegistryRefreshReplacesCache(t *testing.T) {
	lister := &staticLister{devices: []Device{{Serial: "a", State: "device"}}}
	r := NewRegistry(lister, quietLogger())
	require.NoError(t, r.Refresh(context.Background()))
	assert.True(t, r.Connected("a"))

	lister.devices = []Device{{Serial: "b", State: "device"}}
	require.NoError(t, r.Refresh(context.Background()))
	assert.False(t, r.Connected("a"))
	assert.True(t, r.Connected("b"))
	assert.Len(t, r.Status(), 1)
}

func TestRegistryFilterRefreshesEveryCall(t *testing.T) {
	lister := &staticLister{devices: []Device{{Serial: "a", State: "device"}}}
	r := NewRegistry(lister, quietLogger())

	_, err := r.Filter(context.Background(), []string{"a"})
	require.NoError(t, err)
	_, err = r.Filter(context.Background(), []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, 2, lister.calls)
}

func TestRegistryFilterPropagatesError(t *testing.T) {
	boom := errors.New("adb not running")
	r := NewRegistry(&staticLister{err: boom}, quietLogger())

	_, err := r.Filter(context.Background(), []string{"a"})
	assert.ErrorIs(t, err, boom)
}

func TestRegistryStatusIsCopy(t *testing.T) {
	r := NewRegistry(&staticLister{devices: []Device{{Serial: "a", State: "device"}}}, quietLogger())
	require.NoError(t, r.Refresh(context.Background()))

	s := r.Status()
	delete(s, "a")
	assert.True(t, r.Connected("a"))
}
