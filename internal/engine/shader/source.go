package shader

import (
	"errors"
	"fmt"
	"path"
	"strings"

	"go.uber.org/multierr"

	"github.com/Faultbox/invoker/internal/assets"
)

// ErrNoVersion is returned for sources missing a #version directive.
var ErrNoVersion = errors.New("shader source has no #version directive")

// Source is a vertex/fragment source pair.
type Source struct {
	Name     string
	Vertex   string
	Fragment string
}

// Validate performs the checks that can be done without a GL context.
func (s Source) Validate() error {
	var err error
	if !hasVersion(s.Vertex) {
		err = multierr.Append(err, fmt.Errorf("%s.vert: %w", s.Name, ErrNoVersion))
	}
	if !hasVersion(s.Fragment) {
		err = multierr.Append(err, fmt.Errorf("%s.frag: %w", s.Name, ErrNoVersion))
	}
	return err
}

// Resolve returns builtin unless dir is set, in which case <dir>/<name>.vert
// and <dir>/<name>.frag are read from the asset root and must both exist.
func Resolve(mgr *assets.Manager, dir string, builtin Source) (Source, error) {
	if dir == "" {
		return builtin, builtin.Validate()
	}

	vertPath := path.Join(dir, builtin.Name+".vert")
	fragPath := path.Join(dir, builtin.Name+".frag")
	if err := mgr.Require(vertPath, fragPath); err != nil {
		return Source{}, err
	}

	vert, err := mgr.Load(vertPath)
	if err != nil {
		return Source{}, err
	}
	frag, err := mgr.Load(fragPath)
	if err != nil {
		return Source{}, err
	}

	src := Source{Name: builtin.Name, Vertex: string(vert), Fragment: string(frag)}
	return src, src.Validate()
}

func hasVersion(src string) bool {
	for _, line := range strings.Split(src, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		return strings.HasPrefix(line, "#version")
	}
	return false
}
