package scene

import (
	"log/slog"
	"path/filepath"

	"github.com/bkendal2/OpenGLScene/internal/engine/lighting"
	"github.com/bkendal2/OpenGLScene/internal/engine/material"
	"github.com/bkendal2/OpenGLScene/internal/engine/mesh"
	"github.com/bkendal2/OpenGLScene/internal/engine/shader"
	"github.com/bkendal2/OpenGLScene/internal/engine/texture"
)

// Manager owns the scene's GPU-facing resources and its render pass. Create
// one, PrepareScene once, RenderScene every frame, Destroy on shutdown.
type Manager struct {
	writer    shader.UniformWriter
	meshes    mesh.Library
	textures  *texture.Registry
	materials *material.Registry
	bridge    *Bridge

	textureDir string
}

// NewManager wires a manager over the given shader, mesh library and texture
// registry. textureDir is where the scene's image assets live.
func NewManager(w shader.UniformWriter, meshes mesh.Library, textures *texture.Registry, textureDir string) *Manager {
	materials := material.NewRegistry()
	return &Manager{
		writer:     w,
		meshes:     meshes,
		textures:   textures,
		materials:  materials,
		bridge:     NewBridge(w, DefaultUniforms(), textures, materials),
		textureDir: textureDir,
	}
}

// PrepareScene loads textures, defines materials, uploads the lights and
// tessellates every primitive the objects need. A texture that fails to load
// is logged and skipped; the scene renders without it.
func (m *Manager) PrepareScene() error {
	m.loadSceneTextures()
	m.defineObjectMaterials()
	m.setupSceneLights()
	return m.loadMeshes()
}

// RenderScene draws the whole composition in declaration order.
func (m *Manager) RenderScene() {
	for _, obj := range sceneObjects {
		for _, d := range obj.SubDraws {
			execute(m.bridge, m.meshes, d)
		}
	}
}

// Destroy releases the scene's textures. Mesh and shader teardown belong to
// their owners.
func (m *Manager) Destroy() {
	m.textures.DestroyAll()
}

func (m *Manager) loadSceneTextures() {
	for _, t := range sceneTextures {
		path := filepath.Join(m.textureDir, t.File)
		if err := m.textures.Load(path, t.Tag); err != nil {
			slog.Warn("skipping texture", "path", path, "tag", t.Tag, "error", err)
		}
	}
	m.textures.BindAll()
}

func (m *Manager) defineObjectMaterials() {
	for _, p := range sceneMaterials {
		m.materials.Define(p)
	}
}

func (m *Manager) setupSceneLights() {
	m.bridge.SetLighting(true)
	for i, l := range sceneLights {
		lighting.Apply(m.writer, i, l)
	}
}

func (m *Manager) loadMeshes() error {
	for _, kind := range mesh.Kinds {
		if err := m.meshes.Load(kind); err != nil {
			return err
		}
	}
	return nil
}
