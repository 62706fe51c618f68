package scene

import rl "github.com/gen2brain/raylib-go/raylib"

// Lighting: one directional light at (5, 10, 7.5) pointing at the origin, plus full ambient.
var (
	lightPosition    = [3]float32{5, 10, 7.5}
	lightColor       = [3]float32{1, 1, 1}
	ambientColor     = [4]float32{1, 1, 1, 1}
	lightIntensity   = float32(1)
	ambientIntensity = float32(1)
)

// loadLitShader compiles the model shader: albedo texture * colDiffuse, lit by the directional and ambient terms.
// raylib binds texture0 and colDiffuse from each material's albedo map.
func loadLitShader() rl.Shader {
	return rl.LoadShaderFromMemory(litVS, litFS)
}

// setLightUniforms uploads the fixed lighting. The lights never move, so this runs once per shader.
func setLightUniforms(shader rl.Shader) {
	if !rl.IsShaderValid(shader) {
		return
	}
	dir := lightPosition
	amb := ambientColor
	col := lightColor
	if loc := rl.GetShaderLocation(shader, "lightDir"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, dir[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightColor"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, col[:], rl.ShaderUniformVec3, 1)
	}
	if loc := rl.GetShaderLocation(shader, "ambient"); loc >= 0 {
		rl.SetShaderValueV(shader, loc, amb[:], rl.ShaderUniformVec4, 1)
	}
	if loc := rl.GetShaderLocation(shader, "lightIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{lightIntensity}, rl.ShaderUniformFloat)
	}
	if loc := rl.GetShaderLocation(shader, "ambientIntensity"); loc >= 0 {
		rl.SetShaderValue(shader, loc, []float32{ambientIntensity}, rl.ShaderUniformFloat)
	}
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  fragTexCoord = vertexTexCoord;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	// Diffuse plus ambient is clamped per channel.
	litFS = `#version 330
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform vec4 ambient;
uniform float lightIntensity;
uniform float ambientIntensity;
out vec4 finalColor;
void main() {
  vec4 albedo = texture(texture0, fragTexCoord) * colDiffuse;
  vec3 N = normalize(fragNormal);
  vec3 L = normalize(lightDir);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = albedo.rgb * NdotL * lightColor * lightIntensity;
  vec3 amb = albedo.rgb * ambient.rgb * ambientIntensity;
  finalColor = vec4(min(diffuse + amb, vec3(1.0)), albedo.a);
}
`
)
