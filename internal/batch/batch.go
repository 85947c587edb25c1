// Package batch runs one adb operation across a list of devices, one device
// at a time. The first failing device aborts the rest of the batch.
package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/FluidXR/adbatch/internal/actions"
	"github.com/FluidXR/adbatch/internal/adb"
	"github.com/FluidXR/adbatch/internal/shells"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"
)

var (
	// ErrNoDevices is returned when none of the requested devices is connected.
	ErrNoDevices = errors.New("no connected devices")
	// ErrNotAPK is returned by Install for paths without an .apk suffix.
	ErrNotAPK = errors.New("src should be apk")
)

// Batch holds everything an operation needs to run against devices.
type Batch struct {
	ADB      *adb.Client
	Registry *adb.Registry
	Actions  actions.Table
	Shells   shells.Catalog
	Log      logrus.FieldLogger
	Now      func() time.Time
}

// Result is the output of an operation on one device.
type Result struct {
	Serial string `json:"serial"`
	Output string `json:"output,omitempty"`
	Size   uint64 `json:"size,omitempty"` // bytes transferred, when known
}

// targets resolves the requested devices to the connected ones.
func (b *Batch) targets(ctx context.Context, devices []string) ([]string, error) {
	serials, err := b.Registry.Filter(ctx, devices)
	if err != nil {
		return nil, fmt.Errorf("list devices: %w", err)
	}
	if len(serials) == 0 {
		return nil, ErrNoDevices
	}
	return serials, nil
}

// run calls fn for each serial in order, stopping at the first error.
func (b *Batch) run(serials []string, op string, fn func(serial string) (Result, error)) ([]Result, error) {
	var results []Result
	for _, serial := range serials {
		log := b.Log.WithFields(logrus.Fields{"device": serial, "op": op})
		log.Info("running")
		r, err := fn(serial)
		if err != nil {
			log.WithError(err).Error("failed, aborting batch")
			return results, fmt.Errorf("device %s: %w", serial, err)
		}
		log.Debug("done")
		r.Serial = serial
		results = append(results, r)
	}
	return results, nil
}

// output adapts an operation that only produces text.
func output(fn func(serial string) (string, error)) func(serial string) (Result, error) {
	return func(serial string) (Result, error) {
		out, err := fn(serial)
		return Result{Output: out}, err
	}
}

func (b *Batch) each(ctx context.Context, devices []string, op string, fn func(serial string) (string, error)) ([]Result, error) {
	serials, err := b.targets(ctx, devices)
	if err != nil {
		return nil, err
	}
	return b.run(serials, op, output(fn))
}

// Install installs (or updates) an apk on each device.
func (b *Batch) Install(ctx context.Context, devices []string, apkPath string) ([]Result, error) {
	if !strings.HasSuffix(apkPath, ".apk") {
		return nil, fmt.Errorf("%w: %s", ErrNotAPK, apkPath)
	}
	if _, err := os.Stat(apkPath); err != nil {
		return nil, fmt.Errorf("stat apk: %w", err)
	}
	return b.each(ctx, devices, "install", func(serial string) (string, error) {
		return b.ADB.Install(ctx, serial, apkPath)
	})
}

// Uninstall removes a package from each device.
func (b *Batch) Uninstall(ctx context.Context, devices []string, pkg string) ([]Result, error) {
	if strings.TrimSpace(pkg) == "" {
		return nil, errors.New("package name cannot be empty")
	}
	return b.each(ctx, devices, "uninstall", func(serial string) (string, error) {
		return b.ADB.Uninstall(ctx, serial, pkg)
	})
}

// Setting applies a named action from the action table to each device.
func (b *Batch) Setting(ctx context.Context, devices []string, action string) ([]Result, error) {
	cmds, err := b.Actions.Lookup(action)
	if err != nil {
		return nil, err
	}
	return b.each(ctx, devices, "setting "+action, func(serial string) (string, error) {
		var outs []string
		for _, argv := range cmds {
			out, err := b.ADB.Shell(ctx, serial, argv...)
			if err != nil {
				return "", err
			}
			if out != "" {
				outs = append(outs, out)
			}
		}
		return strings.Join(outs, "\n"), nil
	})
}

// Push copies a local file or directory to dst on each device.
func (b *Batch) Push(ctx context.Context, devices []string, src, dst string) ([]Result, error) {
	info, err := os.Stat(src)
	if err != nil {
		return nil, fmt.Errorf("no file found in %s: %w", src, err)
	}
	var size uint64
	if !info.IsDir() {
		size = uint64(info.Size())
		b.Log.WithField("size", humanize.Bytes(size)).Debugf("pushing %s", src)
	}
	serials, err := b.targets(ctx, devices)
	if err != nil {
		return nil, err
	}
	return b.run(serials, "push", func(serial string) (Result, error) {
		out, err := b.ADB.Push(ctx, serial, src, dst)
		return Result{Output: out, Size: size}, err
	})
}

// Pull copies src from each device to dst. With more than one device each
// one pulls into its own dst/<serial> directory so files don't collide.
func (b *Batch) Pull(ctx context.Context, devices []string, src, dst string) ([]Result, error) {
	serials, err := b.targets(ctx, devices)
	if err != nil {
		return nil, err
	}
	perDevice := len(serials) > 1
	return b.run(serials, "pull", output(func(serial string) (string, error) {
		local := dst
		if perDevice {
			local = filepath.Join(dst, safeName(serial))
			if err := os.MkdirAll(local, 0o755); err != nil {
				return "", fmt.Errorf("mkdir %s: %w", local, err)
			}
		}
		return b.ADB.Pull(ctx, serial, src, local)
	}))
}

// Screenshot saves a PNG of each device's screen into dstDir. The Output
// of each result is the written file path. Existing files are never
// overwritten.
func (b *Batch) Screenshot(ctx context.Context, devices []string, dstDir string) ([]Result, error) {
	if err := os.MkdirAll(dstDir, 0o755); err != nil {
		return nil, fmt.Errorf("create screenshot dir: %w", err)
	}
	now := time.Now
	if b.Now != nil {
		now = b.Now
	}
	serials, err := b.targets(ctx, devices)
	if err != nil {
		return nil, err
	}
	return b.run(serials, "screenshot", func(serial string) (Result, error) {
		png, err := b.ADB.Screenshot(ctx, serial)
		if err != nil {
			return Result{}, err
		}
		name := fmt.Sprintf("%s_%s.png", safeName(serial), now().Format("20060102-150405.000"))
		path := filepath.Join(dstDir, name)
		if err := writeNew(path, png); err != nil {
			return Result{}, fmt.Errorf("write screenshot: %w", err)
		}
		b.Log.WithFields(logrus.Fields{
			"device": serial,
			"size":   humanize.Bytes(uint64(len(png))),
		}).Infof("saved %s", path)
		return Result{Output: path, Size: uint64(len(png))}, nil
	})
}

// writeNew writes data to path, failing if path already exists.
func writeNew(path string, data []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ExecCmd runs a custom adb command on each device. The command is split
// on whitespace; with shell set it runs under `adb shell`.
func (b *Batch) ExecCmd(ctx context.Context, devices []string, cmd string, shell bool) ([]Result, error) {
	argv := strings.Fields(cmd)
	if len(argv) == 0 {
		return nil, errors.New("command cannot be empty")
	}
	return b.each(ctx, devices, "exec "+argv[0], func(serial string) (string, error) {
		if shell {
			return b.ADB.Shell(ctx, serial, argv...)
		}
		return b.ADB.Exec(ctx, serial, argv...)
	})
}

// ExecExtendShell pushes a script from the shell catalog to each device
// and runs it with sh.
func (b *Batch) ExecExtendShell(ctx context.Context, devices []string, name string) ([]Result, error) {
	local, err := b.Shells.Lookup(name)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(local); err != nil {
		return nil, fmt.Errorf("shell %s: %w", name, err)
	}
	remote := shells.RemotePath(name)
	return b.each(ctx, devices, "shell "+name, func(serial string) (string, error) {
		if _, err := b.ADB.Push(ctx, serial, local, remote); err != nil {
			return "", err
		}
		out, err := b.ADB.Shell(ctx, serial, "sh", remote)
		if rmErr := b.ADB.Remove(ctx, serial, remote); rmErr != nil {
			b.Log.WithField("device", serial).WithError(rmErr).Warn("could not remove staged script")
		}
		return out, err
	})
}

// safeName makes a serial usable as a file name (wifi serials carry a port).
func safeName(serial string) string {
	return strings.NewReplacer(":", "_", "/", "_").Replace(serial)
}
