package render

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// Both faces are lit: exported CAD meshes are not consistently wound.
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec4 ambient;
uniform vec3 lightColor;
uniform float lightIntensity;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);
  if (dot(N, V) < 0.0) N = -N;
  vec3 L = normalize(lightDir);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = colDiffuse.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = ambient.rgb * colDiffuse.rgb;
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  vec3 specular = lightColor * spec * (NdotL > 0.0 ? 1.0 : 0.0);
  finalColor = vec4(amb + diffuse + specular, colDiffuse.a);
}
`
)

// Lighting for the lit shader: a dim cool ambient, one warm directional light, soft highlights.
var (
	defaultAmbient    = [4]float32{0.35, 0.37, 0.42, 1.0}
	defaultLightColor = [3]float32{1.0, 0.98, 0.95}
)

const (
	defaultLightIntensity   = float32(0.8)
	defaultSpecularPower    = float32(32.0)
	defaultSpecularStrength = float32(0.25)
)

type shaderLocs struct {
	viewPos, lightDir, ambient, lightColor          int32
	lightIntensity, specularPower, specularStrength int32
}

func loadLitShader() (rl.Shader, shaderLocs) {
	shader := rl.LoadShaderFromMemory(litVS, litFS)
	if !rl.IsShaderValid(shader) {
		return shader, shaderLocs{}
	}
	return shader, shaderLocs{
		viewPos:          rl.GetShaderLocation(shader, "viewPos"),
		lightDir:         rl.GetShaderLocation(shader, "lightDir"),
		ambient:          rl.GetShaderLocation(shader, "ambient"),
		lightColor:       rl.GetShaderLocation(shader, "lightColor"),
		lightIntensity:   rl.GetShaderLocation(shader, "lightIntensity"),
		specularPower:    rl.GetShaderLocation(shader, "specularPower"),
		specularStrength: rl.GetShaderLocation(shader, "specularStrength"),
	}
}

// setUniforms uploads the per-frame lighting state. Values are copied into local arrays so cgo
// never sees pointers into registry fields.
func (r *Registry) setUniforms() {
	if !rl.IsShaderValid(r.shader) {
		return
	}
	viewPos := [3]float32{r.viewPos[0], r.viewPos[1], r.viewPos[2]}
	lightDir := [3]float32{r.lightDir[0], r.lightDir[1], r.lightDir[2]}
	amb := defaultAmbient
	lightColor := defaultLightColor
	if r.locs.viewPos >= 0 {
		rl.SetShaderValueV(r.shader, r.locs.viewPos, viewPos[:], rl.ShaderUniformVec3, 1)
	}
	if r.locs.lightDir >= 0 {
		rl.SetShaderValueV(r.shader, r.locs.lightDir, lightDir[:], rl.ShaderUniformVec3, 1)
	}
	if r.locs.ambient >= 0 {
		rl.SetShaderValueV(r.shader, r.locs.ambient, amb[:], rl.ShaderUniformVec4, 1)
	}
	if r.locs.lightColor >= 0 {
		rl.SetShaderValueV(r.shader, r.locs.lightColor, lightColor[:], rl.ShaderUniformVec3, 1)
	}
	if r.locs.lightIntensity >= 0 {
		rl.SetShaderValue(r.shader, r.locs.lightIntensity, []float32{defaultLightIntensity}, rl.ShaderUniformFloat)
	}
	if r.locs.specularPower >= 0 {
		rl.SetShaderValue(r.shader, r.locs.specularPower, []float32{defaultSpecularPower}, rl.ShaderUniformFloat)
	}
	if r.locs.specularStrength >= 0 {
		rl.SetShaderValue(r.shader, r.locs.specularStrength, []float32{defaultSpecularStrength}, rl.ShaderUniformFloat)
	}
}
