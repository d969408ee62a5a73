// Package shaders holds the GLSL sources for the scene shader program.
package shaders

// SceneVertexShader transforms primitive-local positions into clip space and
// forwards world-space position, normal and texture coordinates.
const SceneVertexShader = `#version 410 core

layout(location = 0) in vec3 inPosition;
layout(location = 1) in vec3 inNormal;
layout(location = 2) in vec2 inTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

out vec3 fragPos;
out vec3 fragNormal;
out vec2 fragTexCoord;

void main() {
	vec4 worldPos = model * vec4(inPosition, 1.0);
	fragPos = worldPos.xyz;
	fragNormal = mat3(transpose(inverse(model))) * inNormal;
	fragTexCoord = inTexCoord;
	gl_Position = projection * view * worldPos;
}
`

// SceneFragmentShader shades with either a solid color or a sampled texture,
// optionally lit by up to three Phong light sources.
const SceneFragmentShader = `#version 410 core

#define TOTAL_LIGHTS 3

struct Material {
	vec3 ambientColor;
	float ambientStrength;
	vec3 diffuseColor;
	vec3 specularColor;
	float shininess;
};

struct LightSource {
	vec3 position;
	vec3 ambientColor;
	vec3 diffuseColor;
	vec3 specularColor;
	float focalStrength;
	float specularIntensity;
};

in vec3 fragPos;
in vec3 fragNormal;
in vec2 fragTexCoord;

out vec4 outColor;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform Material material;
uniform LightSource lightSources[TOTAL_LIGHTS];

vec3 shade(vec3 base, LightSource light) {
	vec3 normal = normalize(fragNormal);
	vec3 lightDir = normalize(light.position - fragPos);
	vec3 viewDir = normalize(viewPosition - fragPos);
	vec3 reflectDir = reflect(-lightDir, normal);

	vec3 ambient = light.ambientColor * material.ambientStrength * material.ambientColor;

	float diff = max(dot(normal, lightDir), 0.0);
	vec3 diffuse = light.diffuseColor * diff * material.diffuseColor;

	float exponent = max(material.shininess * light.focalStrength / 16.0, 1.0);
	float spec = pow(max(dot(viewDir, reflectDir), 0.0), exponent);
	vec3 specular = light.specularIntensity * spec * light.specularColor * material.specularColor;

	return (ambient + diffuse) * base + specular;
}

void main() {
	vec4 base = bUseTexture
		? texture(objectTexture, fragTexCoord * UVscale)
		: objectColor;

	if (!bUseLighting) {
		outColor = base;
		return;
	}

	vec3 lit = vec3(0.0);
	for (int i = 0; i < TOTAL_LIGHTS; i++) {
		lit += shade(base.rgb, lightSources[i]);
	}
	outColor = vec4(lit, base.a);
}
`
