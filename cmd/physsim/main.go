// Headless driver: loads a scene and steps the physics system inside a fixed host frame loop.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"rigid3d/internal/config"
	"rigid3d/internal/engine"
	"rigid3d/internal/physics"
	"rigid3d/internal/scenefile"
)

func main() {
	configPath := flag.String("config", config.DefaultPath, "physics config file")
	scenePath := flag.String("scene", "assets/scenes/drop.yaml", "scene file")
	frames := flag.Int("frames", 0, "host frames to run (0 uses the config value)")
	every := flag.Int("print-every", 60, "print body states every N frames (0 prints only the final state)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Config: %v", err)
	}
	if *frames > 0 {
		cfg.Simulation.Frames = *frames
	}

	scene, err := scenefile.Load(*scenePath)
	if err != nil {
		log.Fatalf("Scene: %v", err)
	}
	log.Printf("Physics: loaded %q with %d objects", scene.Name, scene.Len())

	sys := physics.NewSystem(cfg.Physics)
	worst := float32(0)
	sys.OnTick.AddListener(func(r physics.Report) {
		if p := r.Penetration(); p > worst {
			worst = p
		}
	})
	var clock engine.Time
	for frame := 1; frame <= cfg.Simulation.Frames; frame++ {
		clock.Advance(cfg.Simulation.FrameDelta)
		sys.Run(scene, clock)

		if *every > 0 && frame%*every == 0 {
			printStates(scene, clock)
		}
	}
	printStates(scene, clock)
	log.Printf("Physics: %d ticks over %d frames, worst penetration %.4f", sys.Ticks(), cfg.Simulation.Frames, worst)
}

func printStates(scene *engine.Scene, clock engine.Time) {
	states, err := physics.Snapshot(scene)
	if err != nil {
		log.Printf("Physics: snapshot failed: %v", err)
		return
	}
	fmt.Fprintf(os.Stdout, "t=%.3fs frame %d\n", clock.Time(), clock.Frame())
	for _, s := range states {
		if s.Static {
			continue
		}
		p, v := s.Position, s.Velocity
		fmt.Fprintf(os.Stdout, "  %-12s pos (%7.3f %7.3f %7.3f)  vel (%7.3f %7.3f %7.3f)  contacts %d\n",
			s.Name, p.X, p.Y, p.Z, v.X, v.Y, v.Z, len(s.Contacts))
	}
}
