package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/kjkrol/gltriangle/internal/config"
	"github.com/kjkrol/gltriangle/internal/platform"
	"github.com/kjkrol/gltriangle/internal/renderer"
	"github.com/kjkrol/gltriangle/internal/shader"
	"github.com/kjkrol/gltriangle/pkg/gfx"
)

const (
	exitOK           = 0
	exitPlatformInit = -1
	exitWindow       = -2
	exitDriverInit   = -3
	exitConfig       = -4
	exitShader       = -5
)

func init() {
	// GLFW and OpenGL calls must stay on the main thread.
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("triangle", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to a YAML configuration file")
	logLevel := fs.String("log-level", "", "log level override (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitConfig
	}

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return exitConfig
	}
	if *logLevel != "" {
		conf.Log.Level = *logLevel
	}
	level, err := conf.Log.SlogLevel()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return exitConfig
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	shader.SetLogger(logger)

	window, err := gfx.NewWindow(windowConfig(conf), renderer.NewRendererFactory(rendererConfig(conf)))
	if err != nil {
		slog.Error("startup failed", "error", err)
		return exitCode(err)
	}
	defer window.Close()
	window.Show()

	slog.Info("window opened", "title", conf.Window.Title, "width", conf.Window.Width, "height", conf.Window.Height)
	window.Run(gfx.CloseOnEscape(window, gfx.LogEvents(logger)))
	slog.Info("window closed", "frames", window.Frames())
	return exitOK
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, platform.ErrInit):
		return exitPlatformInit
	case errors.Is(err, platform.ErrCreateWindow):
		return exitWindow
	case errors.Is(err, renderer.ErrDriverInit):
		return exitDriverInit
	case errors.Is(err, renderer.ErrProgram):
		return exitShader
	default:
		return exitConfig
	}
}

func windowConfig(conf config.Config) gfx.WindowConfig {
	return gfx.WindowConfig{
		Width:             conf.Window.Width,
		Height:            conf.Window.Height,
		Title:             conf.Window.Title,
		ContextMajor:      conf.Window.ContextVersion.Major,
		ContextMinor:      conf.Window.ContextVersion.Minor,
		CoreProfile:       *conf.Window.CoreProfile,
		ForwardCompatible: *conf.Window.ForwardCompatible,
		// shown by run once the renderer is ready
		Hidden: true,
	}
}

func rendererConfig(conf config.Config) gfx.RendererConfig {
	paths := conf.ShaderPaths()
	return gfx.RendererConfig{
		VertexShader:      paths.Vertex,
		FragmentShader:    paths.Fragment,
		FailOnShaderError: conf.Shaders.FailOnError,
		ClearColor:        conf.ClearColor(),
		Mesh:              conf.Mesh(),
	}
}
