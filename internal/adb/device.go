package adb

// ConnectionType indicates how a device is connected.
type ConnectionType string

const (
	USB     ConnectionType = "usb"
	WiFi    ConnectionType = "wifi"
	Unknown ConnectionType = "unknown"
)

// Device is one line of `adb devices -l`.
type Device struct {
	Serial      string         `json:"serial"`
	State       string         `json:"state"` // "device", "offline", "unauthorized", etc.
	ConnType    ConnectionType `json:"conn_type"`
	Model       string         `json:"model,omitempty"`
	Product     string         `json:"product,omitempty"`
	TransportID string         `json:"transport_id,omitempty"`
}

// Connected returns true if the device is in "device" state (ready).
func (d Device) Connected() bool {
	return d.State == "device"
}
