package adb

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// Client builds adb argument vectors and hands them to a Runner.
type Client struct {
	Path   string
	Runner Runner
}

// NewClient creates a client for the adb binary at path ("adb" if empty).
func NewClient(path string) *Client {
	if path == "" {
		path = "adb"
	}
	return &Client{Path: path, Runner: ExecRunner{}}
}

func (c *Client) run(ctx context.Context, serial string, args ...string) ([]byte, error) {
	if serial != "" {
		args = append([]string{"-s", serial}, args...)
	}
	return c.Runner.Run(ctx, c.Path, args...)
}

// Devices returns every device adb currently knows about, connected or not.
func (c *Client) Devices(ctx context.Context) ([]Device, error) {
	out, err := c.run(ctx, "", "devices", "-l")
	if err != nil {
		return nil, err
	}
	return parseDeviceList(string(out)), nil
}

// Install installs (or reinstalls) an apk on the device.
func (c *Client) Install(ctx context.Context, serial, apkPath string) (string, error) {
	out, err := c.run(ctx, serial, "install", "-r", apkPath)
	if err != nil {
		return "", err
	}
	return checkPackageResult(string(out), c.Path, "install", apkPath)
}

// Uninstall removes a package from the device.
func (c *Client) Uninstall(ctx context.Context, serial, pkg string) (string, error) {
	out, err := c.run(ctx, serial, "uninstall", pkg)
	if err != nil {
		return "", err
	}
	return checkPackageResult(string(out), c.Path, "uninstall", pkg)
}

// Push copies a local file or directory to the device.
func (c *Client) Push(ctx context.Context, serial, localPath, remotePath string) (string, error) {
	out, err := c.run(ctx, serial, "push", localPath, remotePath)
	return strings.TrimSpace(string(out)), err
}

// Pull copies a file or directory from the device to the local filesystem.
func (c *Client) Pull(ctx context.Context, serial, remotePath, localPath string) (string, error) {
	out, err := c.run(ctx, serial, "pull", remotePath, localPath)
	return strings.TrimSpace(string(out)), err
}

// Shell runs argv through `adb shell` on the device.
func (c *Client) Shell(ctx context.Context, serial string, argv ...string) (string, error) {
	out, err := c.run(ctx, serial, append([]string{"shell"}, argv...)...)
	return strings.TrimSpace(string(out)), err
}

// Exec runs arbitrary adb arguments against the device.
func (c *Client) Exec(ctx context.Context, serial string, args ...string) (string, error) {
	out, err := c.run(ctx, serial, args...)
	return strings.TrimSpace(string(out)), err
}

// Screenshot captures the current screen as PNG bytes.
func (c *Client) Screenshot(ctx context.Context, serial string) ([]byte, error) {
	out, err := c.run(ctx, serial, "exec-out", "screencap", "-p")
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("adb screencap %s: empty output", serial)
	}
	return out, nil
}

// Remove deletes a file on the device.
func (c *Client) Remove(ctx context.Context, serial, remotePath string) error {
	_, err := c.run(ctx, serial, "shell", "rm", "-f", remotePath)
	return err
}

// checkPackageResult turns the "Failure [...]" line the package manager
// prints on stdout into an error.
func checkPackageResult(output, bin, verb, target string) (string, error) {
	output = strings.TrimSpace(output)
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "Failure") {
			return output, &CommandError{Args: []string{bin, verb, target}, Stderr: line}
		}
	}
	return output, nil
}

// parseDeviceList parses `adb devices -l` output.
func parseDeviceList(output string) []Device {
	var devices []Device
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "List of") || strings.HasPrefix(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		d := Device{
			Serial: fields[0],
			State:  fields[1],
		}
		// Determine connection type
		switch {
		case strings.Contains(d.Serial, ":"):
			d.ConnType = WiFi
		case strings.HasPrefix(d.Serial, "emulator-"):
			d.ConnType = Unknown
		default:
			d.ConnType = USB
		}
		// Parse key:value pairs
		for _, f := range fields[2:] {
			parts := strings.SplitN(f, ":", 2)
			if len(parts) != 2 {
				continue
			}
			switch parts[0] {
			case "model":
				d.Model = parts[1]
			case "product":
				d.Product = parts[1]
			case "transport_id":
				d.TransportID = parts[1]
			}
		}
		devices = append(devices, d)
	}
	return devices
}
