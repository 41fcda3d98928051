// cmd/boink/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opd-ai/go-boink/pkg/config"
	"github.com/opd-ai/go-boink/pkg/control"
	"github.com/opd-ai/go-boink/pkg/engine"
	"github.com/opd-ai/go-boink/pkg/event"
	"github.com/opd-ai/go-boink/pkg/logging"
	"github.com/opd-ai/go-boink/pkg/render"
	engorender "github.com/opd-ai/go-boink/pkg/render/engo"
)

func main() {
	configPath := flag.String("config", "", "Path to a JSON configuration file")
	renderer := flag.String("renderer", "engo", "Renderer type: 'engo', 'terminal' or 'null'")
	fullscreen := flag.Bool("fullscreen", false, "Run in fullscreen mode (Engo only)")
	width := flag.Int("width", 0, "Window width (Engo only, overrides config)")
	height := flag.Int("height", 0, "Window height (Engo only, overrides config)")
	dumpConfig := flag.String("dump-config", "", "Write the effective configuration to this path and exit")
	ticks := flag.Int("ticks", 0, "Stop a headless run after this many ticks (0 runs until interrupted)")
	script := flag.String("script", "", "Headless command script, e.g. \"60:none,120:turn_right,1:jump\"")
	flag.Parse()

	ctx := context.Background()
	bootLogger := logging.NewLogger()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		bootLogger.Error(ctx, "failed to load configuration", err, "path", *configPath)
		os.Exit(1)
	}

	if *fullscreen {
		cfg.Window.Fullscreen = true
	}
	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}

	if *dumpConfig != "" {
		if err := config.SaveConfig(cfg, *dumpConfig); err != nil {
			bootLogger.Error(ctx, "failed to write configuration", err, "path", *dumpConfig)
			os.Exit(1)
		}
		bootLogger.Info(ctx, "configuration written", "path", *dumpConfig)
		return
	}

	logger := logging.NewLoggerWithLevel(os.Stderr, cfg.LogLevel)
	session, err := engine.NewChipmunkSession(cfg, engine.WithLogger(logger))
	if err != nil {
		logger.Error(ctx, "failed to create session", err)
		os.Exit(1)
	}
	ctx = session.Context()

	session.EventBus.Subscribe(event.VehicleStateChanged, func(e event.Event) {
		if se, ok := e.(*event.StateEvent); ok {
			logger.Debug(ctx, "vehicle state", "from", se.From.String(), "to", se.To.String(), "tick", se.Tick)
		}
	})

	switch *renderer {
	case "engo":
		engorender.Run(session, cfg.Window)
	case "terminal", "null":
		r, err := newHeadlessRenderer(*renderer, session, logger)
		if err != nil {
			logger.Error(ctx, "invalid renderer", err)
			os.Exit(1)
		}
		commands, err := newScript(*script)
		if err != nil {
			logger.Error(ctx, "invalid script", err)
			os.Exit(1)
		}
		runHeadless(session, r, commands, *ticks)
	default:
		logger.Error(ctx, "invalid renderer", fmt.Errorf("unknown renderer %q", *renderer))
		os.Exit(1)
	}
}

func newHeadlessRenderer(name string, session *engine.Session, logger *logging.Logger) (render.Renderer, error) {
	switch name {
	case "terminal":
		return render.NewArenaTerminalRenderer(105, 40, session.Arena.Bounds()), nil
	case "null":
		return render.NewNullRenderer(logger), nil
	}
	return nil, errors.New("headless renderer must be 'terminal' or 'null'")
}

func newScript(text string) (*control.Script, error) {
	if text == "" {
		return control.DemoScript(), nil
	}
	return control.ParseScript(text, true)
}

// runHeadless ticks the session at its fixed rate until maxTicks is
// reached or the process is signalled.
func runHeadless(session *engine.Session, r render.Renderer, script *control.Script, maxTicks int) {
	ctx := session.Context()
	logger := session.Logger()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	ticker := time.NewTicker(time.Duration(session.TimeStep() * float64(time.Second)))
	defer ticker.Stop()

	session.Start()
	defer session.Stop()

	for {
		select {
		case <-sigChan:
			logger.Info(ctx, "interrupted, shutting down")
			return
		case <-ticker.C:
			cmds, _ := script.Next()
			session.Tick(cmds)

			r.Clear()
			r.RenderFrame(session.Frame())
			r.Present()

			if maxTicks > 0 && session.CurrentTick >= uint64(maxTicks) {
				logger.Info(ctx, "tick limit reached", "ticks", session.CurrentTick)
				return
			}
		}
	}
}
