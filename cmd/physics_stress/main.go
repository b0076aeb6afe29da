// Stress test timing the all-pairs solver against growing numbers of spheres
package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"rigid3d/internal/collision"
	"rigid3d/internal/components"
	"rigid3d/internal/config"
	"rigid3d/internal/engine"
	"rigid3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	cfg := config.Default()

	// Test various object counts
	testCounts := []int{50, 100, 200, 400, 800}

	for _, count := range testCounts {
		testSolver(count, cfg.Physics.SolverSteps)
	}
}

func testSolver(count, steps int) {
	rng := rand.New(rand.NewSource(42)) // Consistent results

	// Spawn in a cube, size scales with count to keep density reasonable
	spawnSize := float32(20.0) + float32(count)/20.0

	scene := engine.NewScene("stress")
	for i := 0; i < count; i++ {
		shape, err := collision.NewSphere(rl.Vector3{}, 0.5+rng.Float32()*0.5)
		if err != nil {
			log.Fatal(err)
		}
		g := engine.NewGameObject(fmt.Sprintf("sphere%d", i))
		g.Transform.Position = rl.Vector3{
			X: rng.Float32()*spawnSize - spawnSize/2,
			Y: rng.Float32()*spawnSize - spawnSize/2,
			Z: rng.Float32()*spawnSize - spawnSize/2,
		}
		rb, err := components.NewRigidbody(&g.Transform, 1, 0.1, 0)
		if err != nil {
			log.Fatal(err)
		}
		g.AddComponent(components.NewCollider(shape))
		g.AddComponent(rb)
		scene.AddGameObject(g)
	}

	start := time.Now()
	report := physics.Solver{Steps: steps}.Run(scene)
	elapsed := time.Since(start)

	pairs := 0
	for _, p := range report.Passes {
		pairs += p.Tested
	}
	fmt.Printf("%4d objects: %10v | %d passes | %7d pairs tested | %4d initial contacts | penetration %.3f | converged %v\n",
		count, elapsed.Round(time.Microsecond), len(report.Passes), pairs,
		report.Passes[0].Contacts, report.Penetration(), report.Converged)
}
