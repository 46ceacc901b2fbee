package texture

import (
	"errors"
	"fmt"
	"image"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/invoker/internal/assets"
	"github.com/Faultbox/invoker/internal/logger"
)

// ErrCubemapFaceSize is returned when cubemap faces are not square or differ in size.
var ErrCubemapFaceSize = errors.New("cubemap faces must be square and equally sized")

const (
	placeholderSize  = 64
	placeholderCells = 8
)

// Loader loads textures from the asset root and caches them by name.
//
// In strict mode any failure is returned to the caller. Otherwise a failed
// texture is replaced by a checkerboard placeholder, a warning is logged, and
// the failure is recorded for Failures. The placeholder is cached under the
// failed name, so materials sharing a broken map fail only once.
type Loader struct {
	assets   *assets.Manager
	uploader Uploader
	strict   bool

	cache       map[string]uint32
	placeholder uint32
	failures    error
	log         *zap.Logger
}

// NewLoader creates a texture loader.
func NewLoader(mgr *assets.Manager, uploader Uploader, strict bool) *Loader {
	return &Loader{
		assets:   mgr,
		uploader: uploader,
		strict:   strict,
		cache:    make(map[string]uint32),
		log:      logger.Named("texture"),
	}
}

// Texture2D returns the GL texture for an asset, loading it on first use.
func (l *Loader) Texture2D(name string) (uint32, error) {
	if id, ok := l.cache[name]; ok {
		return id, nil
	}

	img, err := l.decode(name)
	if err != nil {
		if l.strict {
			return 0, err
		}
		l.degrade(name, err)
		id := l.placeholderID()
		l.cache[name] = id
		return id, nil
	}

	id := l.uploader.Upload2D(img)
	l.cache[name] = id
	l.log.Debug("texture loaded", zap.String("name", name),
		zap.Int("width", img.Rect.Dx()), zap.Int("height", img.Rect.Dy()))
	return id, nil
}

// Cubemap loads six faces (+X, -X, +Y, -Y, +Z, -Z) into a cube map texture.
// In non-strict mode a missing face is filled with the placeholder pattern.
func (l *Loader) Cubemap(faces [6]string) (uint32, error) {
	var (
		imgs   [6]*image.RGBA
		errs   error
		failed []int
	)
	for i, name := range faces {
		img, err := l.decode(name)
		if err != nil {
			errs = multierr.Append(errs, err)
			failed = append(failed, i)
			continue
		}
		imgs[i] = img
	}

	if errs == nil {
		errs = checkFaceSizes(faces, imgs)
	}
	if errs != nil {
		if l.strict {
			return 0, errs
		}
		for _, err := range multierr.Errors(errs) {
			l.degrade("skybox", err)
		}
		imgs = fillFaces(imgs, failed)
	}

	id := l.uploader.UploadCubemap(imgs)
	l.log.Debug("cubemap loaded", zap.Int("size", imgs[0].Rect.Dx()))
	return id, nil
}

// Failures returns every degraded load so far, or nil.
func (l *Loader) Failures() error {
	return l.failures
}

// Release deletes every texture created by the loader.
func (l *Loader) Release() {
	ids := make([]uint32, 0, len(l.cache)+1)
	for _, id := range l.cache {
		if id != l.placeholder {
			ids = append(ids, id)
		}
	}
	if l.placeholder != 0 {
		ids = append(ids, l.placeholder)
	}
	l.uploader.Delete(ids...)
	l.cache = make(map[string]uint32)
	l.placeholder = 0
}

func (l *Loader) decode(name string) (*image.RGBA, error) {
	data, err := l.assets.Load(name)
	if err != nil {
		return nil, err
	}
	return Decode(data, name)
}

func (l *Loader) degrade(name string, err error) {
	l.log.Warn("texture replaced by placeholder", zap.String("name", name), zap.Error(err))
	l.failures = multierr.Append(l.failures, err)
}

func (l *Loader) placeholderID() uint32 {
	if l.placeholder == 0 {
		l.placeholder = l.uploader.Upload2D(Placeholder(placeholderSize, placeholderCells))
	}
	return l.placeholder
}

func checkFaceSizes(names [6]string, imgs [6]*image.RGBA) error {
	size := imgs[0].Rect.Dx()
	for i, img := range imgs {
		if img.Rect.Dx() != img.Rect.Dy() || img.Rect.Dx() != size {
			return fmt.Errorf("%s is %dx%d, want %dx%d: %w",
				names[i], img.Rect.Dx(), img.Rect.Dy(), size, size, ErrCubemapFaceSize)
		}
	}
	return nil
}

// fillFaces substitutes placeholders for failed faces. If the surviving faces
// disagree in size the whole cube becomes a placeholder.
func fillFaces(imgs [6]*image.RGBA, failed []int) [6]*image.RGBA {
	size := 0
	for _, img := range imgs {
		if img == nil {
			continue
		}
		if size == 0 {
			size = img.Rect.Dx()
		}
		if img.Rect.Dx() != size || img.Rect.Dy() != size {
			size = -1
			break
		}
	}

	if size <= 0 {
		var out [6]*image.RGBA
		p := Placeholder(placeholderSize, placeholderCells)
		for i := range out {
			out[i] = p
		}
		return out
	}

	p := Placeholder(size, placeholderCells)
	for _, i := range failed {
		imgs[i] = p
	}
	return imgs
}
