// Command guikit-demo runs one of the demo scenes in a GLFW window.
//
//	guikit-demo stack --axis horizontal --spacing 16
//	guikit-demo tree --theme theme.toml -v
//
// Prerequisites:
//
//	devbox shell              # provides Go + OpenGL/X11 headers
//	go run ./example/ topbar
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/guikit"
	"github.com/go-theft-auto/guikit/backend/opengl"
	"github.com/go-theft-auto/guikit/imm"
	"github.com/go-theft-auto/guikit/internal/demo"
)

const (
	windowWidth  = 1024
	windowHeight = 720
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	theme   string
	axis    string
	spacing float32
	verbose bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:          "guikit-demo [scene]",
		Short:        "Run a guikit demo scene",
		Long:         "Run a guikit demo scene in a window. Scenes: " + strings.Join(demo.Names(), ", ") + ".",
		Args:         cobra.MaximumNArgs(1),
		ValidArgs:    demo.Names(),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			name := "stack"
			if len(args) == 1 {
				name = args[0]
			}
			logger := newLogger(opts.verbose)
			guikit.SetLogger(logger.WithPrefix("guikit"))
			imm.SetLogger(logger.WithPrefix("imm"))

			theme, err := loadTheme(cmd, opts)
			if err != nil {
				return err
			}
			scene, err := demo.New(name, theme)
			if err != nil {
				return err
			}
			return run(cmd.Context(), logger, scene)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.theme, "theme", "", "TOML theme file")
	f.StringVar(&opts.axis, "axis", "", "stack axis: vertical or horizontal")
	f.Float32Var(&opts.spacing, "spacing", 0, "gap between stacked windows")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	return cmd
}

func newLogger(verbose bool) *log.Logger {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// loadTheme reads the theme file, if any, and applies the flag overrides.
func loadTheme(cmd *cobra.Command, opts options) (guikit.Theme, error) {
	theme := guikit.DefaultTheme()
	if opts.theme != "" {
		var err error
		if theme, err = guikit.LoadTheme(opts.theme); err != nil {
			return guikit.Theme{}, err
		}
	}
	if opts.axis != "" {
		axis, err := guikit.ParseAxis(opts.axis)
		if err != nil {
			return guikit.Theme{}, err
		}
		theme.Stack.Axis = axis
	}
	if cmd.Flags().Changed("spacing") {
		theme.Stack.Spacing = opts.spacing
	}
	return theme, theme.Validate()
}

func run(ctx context.Context, logger *log.Logger, scene *demo.Scene) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "guikit demo: "+scene.Name(), nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(windowWidth, windowHeight, nil)
	if err != nil {
		return fmt.Errorf("gui renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	ui := imm.New(renderer)
	logger.Info("running scene", "scene", scene.Name())

	last := time.Now()
	for !window.ShouldClose() && !scene.QuitRequested() {
		if err := ctx.Err(); err != nil {
			return err
		}
		in := input.Update()
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			break
		}

		w, h := window.GetFramebufferSize()
		renderer.Resize(w, h)
		gl.Viewport(0, 0, int32(w), int32(h))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		now := time.Now()
		dt := float32(now.Sub(last).Seconds())
		last = now

		tk := ui.Begin(in, imm.Vec2{X: float32(w), Y: float32(h)}, dt)
		drawErr := scene.Draw(tk)
		if err := ui.End(); err != nil {
			return fmt.Errorf("gui render: %w", err)
		}
		if drawErr != nil {
			return fmt.Errorf("scene %s: %w", scene.Name(), drawErr)
		}

		window.SwapBuffers()
	}

	logger.Info("bye", "scene", scene.Name())
	return nil
}
