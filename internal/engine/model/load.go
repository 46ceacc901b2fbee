package model

import (
	"errors"
	"fmt"
	"path"

	"go.uber.org/zap"

	"github.com/Faultbox/invoker/internal/assets"
	"github.com/Faultbox/invoker/internal/logger"
	"github.com/Faultbox/invoker/pkg/formats"
)

// TextureSource resolves an asset name to a GL texture ID.
type TextureSource interface {
	Texture2D(name string) (uint32, error)
}

// materialLibs is the merged content of an OBJ's material libraries.
type materialLibs struct {
	text []byte
	maps map[string]formats.TextureMaps
}

// LoadOBJ reads an OBJ model and its material libraries and returns one mesh
// per material with diffuse and specular textures and shininess attached.
//
// A missing MTL file leaves the meshes untextured. Texture errors are
// whatever the TextureSource reports; a non-strict source never fails.
func LoadOBJ(mgr *assets.Manager, name string, textures TextureSource) ([]*Mesh, error) {
	data, err := mgr.Load(name)
	if err != nil {
		return nil, err
	}

	dir := path.Dir(name)
	libs, err := loadMaterialLibs(mgr, dir, formats.MaterialLibs(data))
	if err != nil {
		return nil, err
	}

	dec, err := DecodeOBJ(path.Base(name), data, libs.text)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", name, err)
	}
	meshes, err := BuildMeshes(dec)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", name, err)
	}

	for _, m := range meshes {
		mat := dec.Materials[m.Name]
		maps := libs.maps[m.Name]
		if mat != nil {
			m.Shininess = mat.Shininess
			if maps.Diffuse == "" {
				maps.Diffuse = mat.MapKd
			}
		}
		if err := bindTexture(m, TextureDiffuse, dir, maps.Diffuse, textures); err != nil {
			return nil, fmt.Errorf("%s material %q: %w", name, m.Name, err)
		}
		if err := bindTexture(m, TextureSpecular, dir, maps.Specular, textures); err != nil {
			return nil, fmt.Errorf("%s material %q: %w", name, m.Name, err)
		}
	}

	triangles := 0
	for _, m := range meshes {
		triangles += m.TriangleCount()
	}
	logger.Debug("model loaded",
		zap.String("name", name),
		zap.Int("meshes", len(meshes)),
		zap.Int("materials", len(libs.maps)),
		zap.Int("triangles", triangles),
		zap.Int("decoder_warnings", len(dec.Warnings)),
	)
	return meshes, nil
}

func loadMaterialLibs(mgr *assets.Manager, dir string, names []string) (materialLibs, error) {
	libs := materialLibs{maps: make(map[string]formats.TextureMaps)}
	for _, lib := range names {
		libName := path.Join(dir, lib)
		data, err := mgr.Load(libName)
		if err != nil {
			if errors.Is(err, assets.ErrMissingAsset) {
				logger.Warn("material library missing", zap.String("name", libName))
				continue
			}
			return materialLibs{}, err
		}
		maps, err := formats.ParseTextureMaps(data)
		if err != nil {
			return materialLibs{}, fmt.Errorf("parsing %s: %w", libName, err)
		}
		for k, v := range maps {
			libs.maps[k] = v
		}
		libs.text = append(libs.text, data...)
		libs.text = append(libs.text, '\n')
	}
	return libs, nil
}

func bindTexture(m *Mesh, kind TextureKind, dir, file string, textures TextureSource) error {
	if file == "" || textures == nil {
		return nil
	}
	name := path.Join(dir, file)
	id, err := textures.Texture2D(name)
	if err != nil {
		return err
	}
	m.AddTexture(TextureBinding{Kind: kind, ID: id, Path: name})
	return nil
}
