package assets

// Asset names of the fixed scene, relative to the asset root.
const (
	CharacterModel = "models/Invoker/dota_2_invoker_kid.obj"
	MeteorModel    = "models/Meteor/meteor.obj"

	MoonTexture  = "textures/moon.jpg"
	QuasTexture  = "textures/quas.jpg"
	WexTexture   = "textures/wex.jpg"
	ExortTexture = "textures/exort.jpg"

	MeteorLaunchSound = "sounds/meteor_launch.wav"
	MeteorImpactSound = "sounds/meteor_impact.wav"
	GhostWalkSound    = "sounds/ghost_walk.wav"
)

// SkyboxFaces lists cube faces in GL order: +X, -X, +Y, -Y, +Z, -Z.
var SkyboxFaces = [6]string{
	"textures/skybox/space_rt.png",
	"textures/skybox/space_lf.png",
	"textures/skybox/space_up.png",
	"textures/skybox/space_dn.png",
	"textures/skybox/space_bk.png",
	"textures/skybox/space_ft.png",
}

// OrbTextures lists the orbit-light textures in light order.
var OrbTextures = [3]string{QuasTexture, WexTexture, ExortTexture}

// RequiredModels are the files without which the scene cannot be built.
func RequiredModels() []string {
	return []string{CharacterModel, MeteorModel}
}

// Required lists the files checked before the window opens. Strict mode
// adds every texture, since a missing one would abort loading later anyway.
func Required(strict bool) []string {
	names := RequiredModels()
	if strict {
		names = append(names, Textures()...)
	}
	return names
}

// Textures lists every standalone texture of the scene, skybox faces included.
func Textures() []string {
	names := []string{MoonTexture}
	names = append(names, OrbTextures[:]...)
	names = append(names, SkyboxFaces[:]...)
	return names
}
