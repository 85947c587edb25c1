// Package shells keeps the named local scripts that can be run on devices.
package shells

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

// ErrUnknownShell is returned by Lookup for names not in the catalog.
var ErrUnknownShell = errors.New("no shell named")

// RemoteDir is where scripts are staged on the device before running.
const RemoteDir = "/data/local/tmp"

// Catalog maps a script name to its local path.
type Catalog map[string]string

// Load scans dir for *.sh files, naming each by its file stem, then layers
// extra on top. A missing dir yields an empty catalog.
func Load(dir string, extra map[string]string) (Catalog, error) {
	c := make(Catalog)
	entries, err := os.ReadDir(dir)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read shell dir %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".sh" {
			continue
		}
		c[strings.TrimSuffix(e.Name(), ".sh")] = filepath.Join(dir, e.Name())
	}
	for name, p := range extra {
		c[name] = p
	}
	return c, nil
}

// Lookup returns the local path of the named script.
func (c Catalog) Lookup(name string) (string, error) {
	p, ok := c[name]
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownShell, name)
	}
	return p, nil
}

// Names returns the script names, sorted.
func (c Catalog) Names() []string {
	names := lo.Keys(c)
	sort.Strings(names)
	return names
}

// RemotePath is the device path a script is pushed to. Characters the
// device shell would split or expand are replaced with '_'.
func RemotePath(name string) string {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '_' || r == '-':
			return r
		}
		return '_'
	}, name)
	return RemoteDir + "/adbatch_" + clean + ".sh"
}
