// Command gen renders every demo scene offscreen, captures the framebuffer
// and saves JPEG screenshots to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/guikit"
	"github.com/go-theft-auto/guikit/backend/opengl"
	"github.com/go-theft-auto/guikit/imm"
	"github.com/go-theft-auto/guikit/internal/demo"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single scene screenshot to capture.
type screenshot struct {
	scene  string
	width  int
	height int
	frames int                                 // frames to render, at least 3 so auto-sized windows settle
	input  func(frame int, in *imm.InputState) // scripted mouse input, may be nil
}

var shots = []screenshot{
	{scene: "stack", width: 400, height: 300},
	{scene: "tree", width: 360, height: 260, frames: 5, input: clickAt(1, 26, 31)},
	{scene: "topbar", width: 400, height: 240, frames: 4, input: clickAt(2, 12, 6)},
	{scene: "focus", width: 300, height: 300, frames: 4, input: clickAt(1, 40, 40)},
	{scene: "drag", width: 400, height: 160},
}

// clickAt presses the left button at (x, y) on the given frame.
func clickAt(frame int, x, y float32) func(int, *imm.InputState) {
	return func(i int, in *imm.InputState) {
		in.SetMousePos(x, y)
		in.SetMouseButton(imm.MouseButtonLeft, i == frame)
	}
}

func run() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Visible, glfw.False)

	window, err := glfw.CreateWindow(800, 600, "screenshot-gen", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(800, 600, nil)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	theme := guikit.DefaultTheme()
	for _, s := range shots {
		if err := capture(renderer, theme, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.scene, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.scene, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(renderer *opengl.Renderer, theme guikit.Theme, s screenshot, outDir string) error {
	// Only the projection changes: the hidden window stays at 800x600, larger
	// than every screenshot, and GLFW resizes asynchronously.
	renderer.Resize(s.width, s.height)

	scene, err := demo.New(s.scene, theme)
	if err != nil {
		return err
	}
	// Fresh UI per screenshot so window state does not leak between scenes.
	ui := imm.New(renderer)
	in := imm.NewInputState()

	frames := max(s.frames, 3)
	for i := range frames {
		in.Reset()
		if s.input != nil {
			s.input(i, in)
		}

		gl.Viewport(0, 0, int32(s.width), int32(s.height))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		tk := ui.Begin(in, imm.Vec2{X: float32(s.width), Y: float32(s.height)}, 1.0/60.0)
		drawErr := scene.Draw(tk)
		if err := ui.End(); err != nil {
			return err
		}
		if drawErr != nil {
			return drawErr
		}
	}

	pixels := make([]byte, s.width*s.height*4)
	gl.ReadPixels(0, 0, int32(s.width), int32(s.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// Flip vertically (OpenGL origin is bottom-left)
	rowLen := s.width * 4
	tmp := make([]byte, rowLen)
	for y := 0; y < s.height/2; y++ {
		top := y * rowLen
		bot := (s.height - 1 - y) * rowLen
		copy(tmp, pixels[top:top+rowLen])
		copy(pixels[top:top+rowLen], pixels[bot:bot+rowLen])
		copy(pixels[bot:bot+rowLen], tmp)
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, pixels)

	path := filepath.Join(outDir, s.scene+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
