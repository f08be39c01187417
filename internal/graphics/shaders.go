package graphics

const chunkVertexShader = `#version 410 core
layout(location = 0) in vec3 aPos;
layout(location = 1) in vec3 aNormal;
layout(location = 2) in vec4 aColor;

uniform mat4 viewProj;
uniform mat4 model;

out vec3 vNormal;
out vec4 vColor;

void main() {
	vNormal = aNormal;
	vColor = aColor;
	gl_Position = viewProj * model * vec4(aPos, 1.0);
}
`

const chunkFragmentShader = `#version 410 core
in vec3 vNormal;
in vec4 vColor;

uniform vec3 lightDir;

out vec4 fragColor;

void main() {
	float diffuse = max(dot(normalize(vNormal), normalize(-lightDir)), 0.0);
	fragColor = vec4(vColor.rgb * (0.35 + 0.65 * diffuse), vColor.a);
}
`
