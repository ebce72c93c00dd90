// Command flightsim flies a level headlessly with fixed input axes and logs
// what happens: impacts, the fail countdown and level change requests.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/milk9111/quantumsuit/ecs/component"
	"github.com/milk9111/quantumsuit/levels"
	"github.com/milk9111/quantumsuit/logging"
	"github.com/milk9111/quantumsuit/prefabs"
	"go.uber.org/zap"
)

func main() {
	levelName := flag.String("level", levels.DefaultLevel, "level name in levels/ (basename, .json optional)")
	seconds := flag.Float64("seconds", 15, "maximum simulated seconds")
	tps := flag.Float64("tps", 60, "simulation ticks per second")
	thrust := flag.Float64("thrust", 0, "constant thrust axis in [-1, 1]")
	up := flag.Float64("up", 0, "constant up axis in [-1, 1]")
	right := flag.Float64("right", 0, "constant right axis in [-1, 1]")
	deflect := flag.Bool("deflect", false, "force deflect_on_impact on")
	logFormat := flag.String("log-format", "console", "log encoding: console or json")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger, err := logging.New(logging.Config{Level: "info", Format: *logFormat, Debug: *debug})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer func() { _ = logger.Sync() }()

	lvl, err := levels.Load(*levelName)
	if err != nil {
		logger.Fatal("load level", zap.Error(err))
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		logger.Fatal("load player spec", zap.Error(err))
	}
	if *deflect {
		playerSpec.DeflectOnImpact = true
	}
	cameraSpec, err := prefabs.LoadCameraSpec()
	if err != nil {
		logger.Fatal("load camera spec", zap.Error(err))
	}

	res, err := Run(Options{
		Level:      lvl,
		PlayerSpec: playerSpec,
		CameraSpec: cameraSpec,
		TPS:        *tps,
		Seconds:    *seconds,
		Axes:       component.Input{Thrust: *thrust, MoveUp: *up, MoveRight: *right},
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("simulate", zap.Error(err))
	}

	fields := []zap.Field{
		zap.String("level", lvl.Name),
		zap.Int64("ticks", res.Ticks),
		zap.Float64("elapsed", res.Elapsed),
		zap.Float64("speed", res.Speed),
		zap.Int("impacts", res.Impacts),
		zap.Float32s("position", res.Position[:]),
	}
	if res.Request != nil {
		fields = append(fields,
			zap.String("target_level", res.Request.TargetLevel),
			zap.String("reason", res.Request.Reason),
		)
	}
	logger.Info("simulation finished", fields...)
}
