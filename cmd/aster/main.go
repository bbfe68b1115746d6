package main

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/helkite/aster/internal/audio"
	"github.com/helkite/aster/internal/config"
	"github.com/helkite/aster/internal/data"
	"github.com/helkite/aster/internal/display"
	"github.com/helkite/aster/internal/game"
	"github.com/helkite/aster/internal/render"
	"github.com/helkite/aster/internal/scripting"
	"github.com/helkite/aster/internal/world"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load config
	cfgPath := "config/aster.toml"
	if p := os.Getenv("ASTER_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// 2. Init logger. With the terminal display active the console
	// belongs to the game, so logs go to a file instead.
	log, err := newLogger(cfg.Logging, cfg.Display.Enabled)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	// 3. Load data tables
	blockTable, err := data.LoadBlockTable("data/yaml/block_list.yaml")
	if err != nil {
		return fmt.Errorf("load block table: %w", err)
	}
	log.Info("block table loaded", zap.Int("blocks", blockTable.Count()))

	itemTable, err := data.LoadItemTable("data/yaml/item_list.yaml")
	if err != nil {
		return fmt.Errorf("load item table: %w", err)
	}
	log.Info("item table loaded", zap.Int("items", itemTable.Count()))

	// 4. Lua scripting engine
	luaEngine, err := scripting.NewEngine("scripts", log)
	if err != nil {
		return fmt.Errorf("lua engine: %w", err)
	}
	defer luaEngine.Close()

	// 5. Simulation state
	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	st := world.NewState(rng, blockTable, itemTable, log)

	// 6. Display (doubles as the render backend) or headless
	var mgr render.Manager = render.NewNopManager()
	var disp *display.Display
	if cfg.Display.Enabled {
		disp, err = display.New(cfg.Display, st)
		if err != nil {
			return fmt.Errorf("display: %w", err)
		}
		defer disp.Close()
		mgr = disp
	}

	// 7. Audio cues
	if cfg.Audio.Enabled {
		sounds := audio.NewSoundManager(cfg.Audio)
		if err := sounds.Initialize(); err != nil {
			log.Warn("audio unavailable", zap.Error(err))
		} else {
			defer sounds.Cleanup()
			sounds.Attach(st.Bus)
		}
	}

	// 8. Assemble the game and resolve the system schedule
	g, err := game.New(cfg, st, luaEngine, mgr)
	if err != nil {
		return err
	}

	// 9. Game loop
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(cfg.Sim.TickRate)
	defer ticker.Stop()

	log.Info("game loop started",
		zap.Duration("tick", cfg.Sim.TickRate),
		zap.Int64("seed", seed))

	for {
		select {
		case <-ticker.C:
			if disp != nil && !disp.ProcessInput() {
				log.Info("player quit")
				return nil
			}
			g.Tick(cfg.Sim.TickRate)
			if disp != nil {
				disp.Render()
			}
		case sig := <-shutdownCh:
			log.Info("shutdown signal", zap.String("signal", sig.String()))
			return nil
		}
	}
}

func newLogger(cfg config.LoggingConfig, toFile bool) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	if toFile {
		zapCfg.OutputPaths = []string{"aster.log"}
		zapCfg.ErrorOutputPaths = []string{"aster.log"}
	}

	return zapCfg.Build()
}
