// Package scene owns the GPU resources of the fixed Invoker scene and turns
// per-frame state into an ordered render frame.
package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Faultbox/invoker/internal/assets"
	"github.com/Faultbox/invoker/internal/engine/lighting"
	"github.com/Faultbox/invoker/internal/engine/model"
	"github.com/Faultbox/invoker/internal/engine/renderer"
	"github.com/Faultbox/invoker/internal/engine/shader"
	"github.com/Faultbox/invoker/internal/engine/shaders"
	"github.com/Faultbox/invoker/internal/engine/texture"
	"github.com/Faultbox/invoker/internal/logger"
)

// Sphere tessellations.
const (
	MoonSectors = 64
	MoonStacks  = 64
	OrbSectors  = 36
	OrbStacks   = 18
)

// Material and lamp colors.
var (
	MeteorColor  = mgl32.Vec3{1.5, 0.5, 0.0}
	OutlineColor = mgl32.Vec3{1.0, 0.8, 0.0}
)

// MaterialShininess is the specular exponent for meshes whose material sets none.
const MaterialShininess = 32.0

var orbLabels = [lighting.LightCount]string{"quas", "wex", "exort"}

// Builtin shader sources.
var (
	LitSource    = shader.Source{Name: "lit", Vertex: shaders.LitVertexShader, Fragment: shaders.LitFragmentShader}
	LampSource   = shader.Source{Name: "lamp", Vertex: shaders.LampVertexShader, Fragment: shaders.LampFragmentShader}
	SkyboxSource = shader.Source{Name: "skybox", Vertex: shaders.SkyboxVertexShader, Fragment: shaders.SkyboxFragmentShader}
)

// Options configures scene loading.
type Options struct {
	// ShaderDir, when set, replaces the builtin shaders with files from the asset root.
	ShaderDir string
}

// MeteorPose is the projectile's placement for one frame.
type MeteorPose struct {
	Position mgl32.Vec3
	Angle    float32
	Axis     mgl32.Vec3
}

// View is everything the scene needs to draw one frame.
type View struct {
	Projection mgl32.Mat4
	View       mgl32.Mat4
	CameraPos  mgl32.Vec3
	Elapsed    float32

	Lights [lighting.LightCount]lighting.PointLight

	// Meteor is nil while no projectile is in flight.
	Meteor *MeteorPose

	// Ghost draws the character blended with CharacterAlpha and skips the outline.
	Ghost          bool
	CharacterAlpha float32
}

// Scene holds the programs, meshes and textures of the scene.
type Scene struct {
	lit  *shader.Program
	lamp *shader.Program
	sky  *shader.Program

	skybox      *Skybox
	moon        *model.GPUMesh
	orb         *model.GPUMesh
	orbTextures [lighting.LightCount]uint32
	character   *model.Model
	meteor      *model.Model
}

// Load checks required files, compiles the shaders, and uploads all meshes and textures.
// Must be called with a current GL context.
func Load(mgr *assets.Manager, textures *texture.Loader, opts Options) (*Scene, error) {
	if err := mgr.Require(assets.RequiredModels()...); err != nil {
		return nil, err
	}

	s := &Scene{}
	if err := s.loadPrograms(mgr, opts.ShaderDir); err != nil {
		s.Close()
		return nil, err
	}
	if err := s.loadTextures(textures); err != nil {
		s.Close()
		return nil, err
	}
	if err := s.loadMeshes(mgr, textures); err != nil {
		s.Close()
		return nil, err
	}
	s.setStaticUniforms()

	if err := textures.Failures(); err != nil {
		logger.Warn("scene loaded with placeholder textures",
			zap.Int("count", len(multierr.Errors(err))),
			zap.Error(err),
		)
	}
	logger.Info("scene loaded",
		zap.Int("character_meshes", len(s.character.Meshes)),
		zap.Int("meteor_meshes", len(s.meteor.Meshes)),
	)
	return s, nil
}

func (s *Scene) loadPrograms(mgr *assets.Manager, dir string) error {
	var errs error
	compile := func(builtin shader.Source) *shader.Program {
		src, err := shader.Resolve(mgr, dir, builtin)
		if err != nil {
			errs = multierr.Append(errs, err)
			return nil
		}
		p, err := shader.New(src)
		if err != nil {
			errs = multierr.Append(errs, err)
			return nil
		}
		logger.Debug("shader compiled", zap.String("name", src.Name))
		return p
	}

	s.lit = compile(LitSource)
	s.lamp = compile(LampSource)
	s.sky = compile(SkyboxSource)
	return errs
}

func (s *Scene) loadTextures(textures *texture.Loader) error {
	cubemap, err := textures.Cubemap(assets.SkyboxFaces)
	if err != nil {
		return fmt.Errorf("skybox: %w", err)
	}
	s.skybox = newSkybox(cubemap)

	for i, name := range assets.OrbTextures {
		id, err := textures.Texture2D(name)
		if err != nil {
			return err
		}
		s.orbTextures[i] = id
	}
	return nil
}

func (s *Scene) loadMeshes(mgr *assets.Manager, textures *texture.Loader) error {
	moonMesh, err := model.NewSphere(1, MoonSectors, MoonStacks)
	if err != nil {
		return err
	}
	moonTex, err := textures.Texture2D(assets.MoonTexture)
	if err != nil {
		return err
	}
	moonMesh.AddTexture(model.TextureBinding{Kind: model.TextureDiffuse, ID: moonTex, Path: assets.MoonTexture})
	s.moon = model.Upload(moonMesh)

	orbMesh, err := model.NewSphere(1, OrbSectors, OrbStacks)
	if err != nil {
		return err
	}
	s.orb = model.Upload(orbMesh)

	charMeshes, err := model.LoadOBJ(mgr, assets.CharacterModel, textures)
	if err != nil {
		return err
	}
	s.character = model.UploadModel(assets.CharacterModel, charMeshes)

	meteorMeshes, err := model.LoadOBJ(mgr, assets.MeteorModel, textures)
	if err != nil {
		return err
	}
	exort := s.orbTextures[len(s.orbTextures)-1]
	for _, m := range meteorMeshes {
		if _, ok := m.Texture(model.TextureDiffuse); !ok {
			m.AddTexture(model.TextureBinding{Kind: model.TextureDiffuse, ID: exort, Path: assets.ExortTexture})
		}
	}
	s.meteor = model.UploadModel(assets.MeteorModel, meteorMeshes)
	return nil
}

func (s *Scene) setStaticUniforms() {
	s.lit.Use()
	s.lit.SetInt("material.diffuse", model.DiffuseUnit)
	s.lit.SetInt("material.specular", model.SpecularUnit)

	s.lamp.Use()
	s.lamp.SetInt("lightTexture", 0)

	s.sky.Use()
	s.sky.SetInt("skybox", 0)
}

// Compose builds the frame for v. The pass sequence is skybox, moon, light
// markers, meteor (when active), character, and the outline unless ghosted.
func (s *Scene) Compose(v View) (*renderer.Frame, error) {
	b := renderer.NewFrameBuilder()

	b.Add(renderer.PassSkybox, "skybox", renderer.SkyboxState, func() { s.drawSkybox(v) })
	b.Add(renderer.PassBackground, "moon", renderer.OpaqueState, func() { s.drawMoon(v) })
	for i := range v.Lights {
		b.Add(renderer.PassLightMarkers, orbLabels[i], renderer.OpaqueState, func() { s.drawOrb(v, i) })
	}
	if v.Meteor != nil {
		pose := *v.Meteor
		b.Add(renderer.PassProjectile, "meteor", renderer.OpaqueState, func() { s.drawMeteor(v, pose) })
	}

	blend := renderer.BlendOpaque
	if v.Ghost {
		blend = renderer.BlendAlpha
	}
	character := CharacterTransform(v.Elapsed)
	b.Add(renderer.PassCharacter, "character", renderer.CharacterState(blend), func() { s.drawCharacter(v, character) })
	if !v.Ghost {
		b.Add(renderer.PassOutline, "outline", renderer.OutlineState, func() { s.drawOutline(v, character) })
	}

	return b.Build()
}

func (s *Scene) drawSkybox(v View) {
	s.sky.Use()
	s.sky.SetMat4("view", SkyView(v.View))
	s.sky.SetMat4("projection", v.Projection)
	s.skybox.draw()
}

func (s *Scene) useLit(v View, alpha float32) {
	s.lit.Use()
	s.lit.SetMat4("projection", v.Projection)
	s.lit.SetMat4("view", v.View)
	s.lit.SetVec3("viewPos", v.CameraPos)
	s.lit.SetFloat("alpha", alpha)
	for i, l := range v.Lights {
		base := fmt.Sprintf("pointLights[%d]", i)
		s.lit.SetVec3(base+".position", l.Position)
		s.lit.SetVec3(base+".ambient", l.Ambient)
		s.lit.SetVec3(base+".diffuse", l.Diffuse)
		s.lit.SetVec3(base+".specular", l.Specular)
		s.lit.SetFloat(base+".constant", l.Constant)
		s.lit.SetFloat(base+".linear", l.Linear)
		s.lit.SetFloat(base+".quadratic", l.Quadratic)
	}
}

func (s *Scene) useLamp(v View, color mgl32.Vec3, textured bool) {
	s.lamp.Use()
	s.lamp.SetMat4("projection", v.Projection)
	s.lamp.SetMat4("view", v.View)
	s.lamp.SetVec3("lightColor", color)
	s.lamp.SetBool("useTexture", textured)
}

func (s *Scene) drawMoon(v View) {
	s.useLit(v, 1)
	s.lit.SetMat4("model", MoonTransform(v.Elapsed))
	s.applyMaterial(s.moon)
	s.moon.Draw()
}

func (s *Scene) drawOrb(v View, i int) {
	s.useLamp(v, v.Lights[i].Diffuse, true)
	s.lamp.SetMat4("model", OrbTransform(v.Lights[i].Position))
	bindTexture2D(model.DiffuseUnit, s.orbTextures[i])
	s.orb.Draw()
}

func (s *Scene) drawMeteor(v View, pose MeteorPose) {
	s.useLamp(v, MeteorColor, true)
	s.lamp.SetMat4("model", MeteorTransform(pose.Position, pose.Angle, pose.Axis))
	s.meteor.Draw()
}

func (s *Scene) drawCharacter(v View, transform mgl32.Mat4) {
	alpha := float32(1)
	if v.Ghost {
		alpha = v.CharacterAlpha
	}
	s.useLit(v, alpha)
	s.lit.SetMat4("model", transform)
	s.character.DrawEach(s.applyMaterial)
}

func (s *Scene) applyMaterial(m *model.GPUMesh) {
	s.lit.SetFloat("material.shininess", Shininess(m.Shininess))
}

// Shininess returns the specular exponent for a material value, where zero means unset.
func Shininess(material float32) float32 {
	if material <= 0 {
		return MaterialShininess
	}
	return material
}

func (s *Scene) drawOutline(v View, character mgl32.Mat4) {
	s.useLamp(v, OutlineColor, false)
	s.lamp.SetMat4("model", OutlineTransform(character))
	s.character.Draw()
}

// Close releases every GPU resource owned by the scene. Textures belong to
// the texture loader.
func (s *Scene) Close() {
	for _, p := range []*shader.Program{s.lit, s.lamp, s.sky} {
		if p != nil {
			p.Delete()
		}
	}
	if s.skybox != nil {
		s.skybox.destroy()
	}
	for _, m := range []*model.GPUMesh{s.moon, s.orb} {
		if m != nil {
			m.Destroy()
		}
	}
	for _, m := range []*model.Model{s.character, s.meteor} {
		if m != nil {
			m.Destroy()
		}
	}
}
