package adb

import (
	"context"
	"sort"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// DeviceLister reports the devices adb can see.
type DeviceLister interface {
	Devices(ctx context.Context) ([]Device, error)
}

// Registry caches the last `adb devices` result, keyed by serial.
// It is rebuilt from scratch on every Refresh.
type Registry struct {
	lister  DeviceLister
	log     logrus.FieldLogger
	devices map[string]Device
}

// NewRegistry creates an empty registry backed by lister.
func NewRegistry(lister DeviceLister, log logrus.FieldLogger) *Registry {
	return &Registry{
		lister:  lister,
		log:     log,
		devices: make(map[string]Device),
	}
}

// Refresh replaces the cache with the current device list.
func (r *Registry) Refresh(ctx context.Context) error {
	devices, err := r.lister.Devices(ctx)
	if err != nil {
		return err
	}
	r.devices = lo.SliceToMap(devices, func(d Device) (string, Device) {
		return d.Serial, d
	})
	r.log.WithField("count", len(r.devices)).Debug("device status refreshed")
	return nil
}

// Status returns a copy of the cached devices.
func (r *Registry) Status() map[string]Device {
	out := make(map[string]Device, len(r.devices))
	for k, v := range r.devices {
		out[k] = v
	}
	return out
}

// Connected reports whether serial was in "device" state at the last refresh.
func (r *Registry) Connected(serial string) bool {
	d, ok := r.devices[serial]
	return ok && d.Connected()
}

// ConnectedSerials returns the sorted serials of connected devices.
func (r *Registry) ConnectedSerials() []string {
	serials := lo.FilterMap(lo.Values(r.devices), func(d Device, _ int) (string, bool) {
		return d.Serial, d.Connected()
	})
	sort.Strings(serials)
	return serials
}

// Filter refreshes the cache and returns the requested serials that are
// connected, in request order and without duplicates. An empty request
// selects every connected device.
func (r *Registry) Filter(ctx context.Context, serials []string) ([]string, error) {
	if err := r.Refresh(ctx); err != nil {
		return nil, err
	}
	if len(serials) == 0 {
		return r.ConnectedSerials(), nil
	}
	var kept []string
	for _, s := range lo.Uniq(serials) {
		if !r.Connected(s) {
			state := "not found"
			if d, ok := r.devices[s]; ok {
				state = d.State
			}
			r.log.WithFields(logrus.Fields{"device": s, "state": state}).Warn("skipping disconnected device")
			continue
		}
		kept = append(kept, s)
	}
	return kept, nil
}
