package main

import (
	"context"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"

	moebius "github.com/themrsung/Moebius-sub003"
	"github.com/themrsung/Moebius-sub003/actor"
)

// Two spheres on a collision course through air: one falls under
// gravity onto one resting below it. The collision listener reports
// the moment they first touch.
func main() {
	logger, _ := zap.NewDevelopment()
	defer logger.Sync()

	cfg := moebius.DefaultConfig()
	cfg.TickInterval = 20 * time.Millisecond

	world := moebius.NewWorld(cfg.GravityVec(), cfg.AirDensity, logger)

	profile, err := actor.NewSphereProfile(10, 1)
	if err != nil {
		logger.Fatal("bad profile", zap.Error(err))
	}

	falling := actor.NewObject(profile, mgl64.Vec3{0, 20, 0})
	resting := actor.NewObject(profile, mgl64.Vec3{0, 0, 0})
	world.AddObject(falling)
	world.AddObject(resting)

	world.Events().Subscribe(moebius.COLLISION_ENTER, func(event moebius.Event) {
		enter := event.(moebius.CollisionEnterEvent)
		logger.Info("collision",
			zap.String("a", enter.A.ID().String()),
			zap.String("b", enter.B.ID().String()),
			zap.Any("at", enter.A.Location()))
	})

	scheduler := moebius.NewScheduler(cfg, logger)
	if err := scheduler.AddWorld(world); err != nil {
		logger.Fatal("schedule", zap.Error(err))
	}
	if err := scheduler.Start(context.Background()); err != nil {
		logger.Fatal("start", zap.Error(err))
	}

	time.Sleep(3 * time.Second)
	scheduler.Stop()

	logger.Info("final state",
		zap.Any("falling", falling.Location()),
		zap.Any("resting", resting.Location()))
}
