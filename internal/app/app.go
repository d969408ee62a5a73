// Package app assembles the renderer: window, shader program, camera and
// scene, plus the frame loop that ties them together.
package app

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/bkendal2/OpenGLScene/internal/config"
	"github.com/bkendal2/OpenGLScene/internal/engine/camera"
	"github.com/bkendal2/OpenGLScene/internal/engine/mesh"
	"github.com/bkendal2/OpenGLScene/internal/engine/scene"
	"github.com/bkendal2/OpenGLScene/internal/engine/scene/shaders"
	"github.com/bkendal2/OpenGLScene/internal/engine/shader"
	"github.com/bkendal2/OpenGLScene/internal/engine/texture"
	"github.com/bkendal2/OpenGLScene/internal/engine/window"
	"github.com/bkendal2/OpenGLScene/pkg/math"
)

const windowTitle = "Still Life"

// App owns every renderer resource and runs the frame loop.
type App struct {
	window  *window.Window
	program *shader.Program
	camera  *camera.OrbitCamera
	meshes  *mesh.GLLibrary
	scene   *scene.Manager
}

// New creates the window and GL context, compiles the scene shader and
// prepares the scene.
func New(cfg *config.Config) (*App, error) {
	win, err := window.New(window.Config{
		Title:      windowTitle,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}

	if err := gl.Init(); err != nil {
		win.Close()
		return nil, fmt.Errorf("initialize OpenGL: %w", err)
	}
	slog.Info("OpenGL initialized", "version", gl.GoStr(gl.GetString(gl.VERSION)))

	program, err := shader.New(shaders.SceneVertexShader, shaders.SceneFragmentShader)
	if err != nil {
		win.Close()
		return nil, fmt.Errorf("compile scene shader: %w", err)
	}

	meshes := mesh.NewGLLibrary()
	textures := texture.NewRegistry(texture.GL{})
	mgr := scene.NewManager(program, meshes, textures, cfg.Assets.TextureDir)
	if err := mgr.PrepareScene(); err != nil {
		program.Destroy()
		win.Close()
		return nil, fmt.Errorf("prepare scene: %w", err)
	}

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	return &App{
		window:  win,
		program: program,
		camera:  camera.New(),
		meshes:  meshes,
		scene:   mgr,
	}, nil
}

// Run drives the frame loop until the window is closed or ESC is pressed.
func (a *App) Run() error {
	var (
		running       = true
		leftMouseDown bool
		lastMouseX    float32
		lastMouseY    float32
	)

	for running {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				running = false

			case *sdl.KeyboardEvent:
				if e.Type == sdl.KEYDOWN && e.Keysym.Sym == sdl.K_ESCAPE {
					running = false
				}

			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					w, h := a.window.Size()
					gl.Viewport(0, 0, int32(w), int32(h))
				}

			case *sdl.MouseButtonEvent:
				if e.Button == sdl.BUTTON_LEFT {
					leftMouseDown = e.State == sdl.PRESSED
					lastMouseX = float32(e.X)
					lastMouseY = float32(e.Y)
				}

			case *sdl.MouseMotionEvent:
				if leftMouseDown {
					a.camera.HandleDrag(float32(e.X)-lastMouseX, float32(e.Y)-lastMouseY)
				}
				lastMouseX = float32(e.X)
				lastMouseY = float32(e.Y)

			case *sdl.MouseWheelEvent:
				a.camera.HandleZoom(float32(e.Y))
			}
		}

		a.drawFrame()
		a.window.SwapBuffers()
	}

	return nil
}

// drawFrame clears, uploads the per-frame camera state and renders the
// scene.
func (a *App) drawFrame() {
	gl.ClearColor(0.1, 0.1, 0.1, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	projection := math.Perspective(math.Radians(45), a.window.AspectRatio(), 0.1, 100.0)
	a.program.SetMat4("projection", projection)
	a.program.SetMat4("view", a.camera.ViewMatrix())
	a.program.SetVec3("viewPosition", a.camera.Position())

	a.scene.RenderScene()
}

// Close releases every GL resource and tears the window down.
func (a *App) Close() {
	a.scene.Destroy()
	a.meshes.Destroy()
	a.program.Destroy()
	a.window.Close()
}
