package scooter

import (
	"math"

	"tweakpanel/internal/core"
	"tweakpanel/internal/scene"
)

// Rider is the integrated state of the scooter rider. It is read-only for
// callers and derived entirely from the tunable settings.
type Rider struct {
	Position core.Vec3
	Velocity core.Vec3
	Heading  float64
	Airborne bool
	Hops     int
	Pushes   int
}

// World is a small scooter-park simulation whose gameplay objects live in a
// scene graph. Objects appear after a delay, gain settings over time and can
// be replaced wholesale by periodic reloads, like a level restart.
type World struct {
	cfg Config

	graph   *scene.Graph
	physics Physics

	level  *scene.Object
	spawns int
	tick   int
	// lateAt is the tick at which the hop gains its late settings.
	lateAt int

	rider     Rider
	hopTimer  float64
	pushTimer float64
	pushLeft  float64
	pumpTimer float64

	rng *core.RNG
}

// New returns a world with the default configuration.
func New() *World {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig returns a world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	if cfg.TPS <= 0 {
		cfg.TPS = 60
	}
	return &World{
		cfg:     cfg,
		graph:   scene.New(),
		physics: DefaultPhysics(),
		rng:     core.NewRNG(cfg.Seed),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "scooter" }

// Graph exposes the live object graph.
func (w *World) Graph() core.Graph { return w.graph }

// Scene exposes the concrete scene graph.
func (w *World) Scene() *scene.Graph { return w.graph }

// Physics exposes the global physics settings.
func (w *World) Physics() *Physics { return &w.physics }

// Rider returns a copy of the rider state.
func (w *World) Rider() Rider { return w.rider }

// Body reports the rider's drawable state while the level is spawned.
func (w *World) Body() (core.Body, bool) {
	if w.level == nil {
		return core.Body{}, false
	}
	r := w.rider
	return core.Body{Position: r.Position, Velocity: r.Velocity, Heading: r.Heading, Airborne: r.Airborne}, true
}

// DebugRay returns the ground probe ray while ground debugging is enabled.
func (w *World) DebugRay() (from, to core.Vec3, ok bool) {
	ctrl := w.controller()
	if ctrl == nil || ctrl.Ground == nil || !ctrl.Ground.Debug {
		return core.Vec3{}, core.Vec3{}, false
	}
	from = w.rider.Position.Add(ctrl.Ground.RaycastOffset)
	to = from
	to.Y = 0
	return from, to, true
}

// Ticks reports the number of steps since the last reset.
func (w *World) Ticks() int { return w.tick }

// Spawns reports how many times the level has been spawned since reset.
func (w *World) Spawns() int { return w.spawns }

// Reset clears the graph and restarts the spawn schedule. Global physics
// settings survive resets.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	w.rng.Seed(effective)
	w.graph.Clear()
	w.level = nil
	w.spawns = 0
	w.tick = 0
	w.lateAt = 0
	w.rider = Rider{}
	w.hopTimer, w.pushTimer, w.pushLeft, w.pumpTimer = 0, 0, 0, 0
}

// Step advances the spawn schedule and integrates the rider.
func (w *World) Step() {
	w.tick++
	w.schedule()
	w.integrate(1 / float64(w.cfg.TPS))
}

// Reload destroys the level and spawns fresh instances of every object.
func (w *World) Reload() {
	w.despawn()
	w.spawn()
}

func (w *World) schedule() {
	if w.level == nil {
		if w.tick >= w.cfg.SpawnDelay {
			w.spawn()
		}
		return
	}
	if w.tick == w.lateAt {
		if hop := w.hop(); hop != nil {
			attachLateHopSettings(hop)
		}
	}
	if w.cfg.ReloadEvery > 0 && (w.tick-w.cfg.SpawnDelay)%w.cfg.ReloadEvery == 0 && w.tick > w.cfg.SpawnDelay {
		w.Reload()
	}
}

func (w *World) spawn() {
	g := w.graph
	w.level = g.Spawn(levelObjectName, TypeLevel, nil)
	g.SpawnChild(w.level, hopObjectName, TypeHop, newHop())
	g.SpawnChild(w.level, timeObjectName, TypeTimeSpeed, newTimeSpeed())
	g.SpawnChild(w.level, scooterRootName, TypeController, newController())
	g.SpawnChild(w.level, pumpObjectName, TypePump, newPump())

	// The first spawn uses the authored player root; respawns are clones.
	rootName := PlayerRootName
	if w.spawns > 0 {
		rootName = PlayerCloneName
	}
	player := g.Spawn(rootName, TypePlayerRoot, nil)
	model := g.SpawnChild(player, playerModelName, playerModelType, nil)
	g.SpawnChild(model, motorObjectName, TypeMotor, newMotor())
	g.SpawnChild(model, animObjectName, TypeAnimator, newAnimator())

	w.spawns++
	w.lateAt = w.tick + w.cfg.SettingsDelay
	if w.cfg.SettingsDelay == 0 {
		attachLateHopSettings(w.hop())
	}
}

func (w *World) despawn() {
	if w.level != nil {
		w.graph.Destroy(w.level)
		w.level = nil
	}
	for _, name := range []string{PlayerRootName, PlayerCloneName} {
		for o := w.graph.Find(name); o != nil; o = w.graph.Find(name) {
			w.graph.Destroy(o)
		}
	}
}

func find[T any](g *scene.Graph, typ string) T {
	var zero T
	o := g.FindOfType(typ)
	if o == nil {
		return zero
	}
	v, _ := o.Value().(T)
	return v
}

func (w *World) hop() *Hop { return find[*Hop](w.graph, TypeHop) }
func (w *World) controller() *Controller { return find[*Controller](w.graph, TypeController) }
func (w *World) timeSpeed() *TimeSpeed { return find[*TimeSpeed](w.graph, TypeTimeSpeed) }
func (w *World) pump() *PumpMechanic { return find[*PumpMechanic](w.graph, TypePump) }
func (w *World) motor() *Motor { return find[*Motor](w.graph, TypeMotor) }

func (w *World) integrate(dt float64) {
	if ts := w.timeSpeed(); ts != nil && ts.SlowMotion > 0 && ts.SlowMotion < 1 && w.rider.Airborne {
		dt *= ts.SlowMotion
	}
	ctrl := w.controller()
	if ctrl == nil {
		return
	}
	r := &w.rider
	speedMul := 1.0
	if m := w.motor(); m != nil {
		speedMul = m.SpeedMultiplier
		if r.Airborne {
			speedMul *= m.AirSpeed / 4
		}
	}

	if !r.Airborne {
		w.push(ctrl, dt, speedMul)
		w.pumpSpeed(dt)
		w.tryHop(dt)
	}

	if ctrl.Wheel != nil {
		steer := w.rng.Signed() * ctrl.Wheel.MaxSteeringAngle
		damp := math.Max(ctrl.Wheel.SteerDampen, 1)
		r.Heading += steer * math.Pi / 180 * dt / damp
		drag := ctrl.Wheel.StopDrag * 0.01
		r.Velocity.X -= r.Velocity.X * drag * dt
		r.Velocity.Z -= r.Velocity.Z * drag * dt
	}

	if r.Airborne {
		r.Velocity = r.Velocity.Add(w.physics.Gravity.Scale(dt))
	}
	r.Position = r.Position.Add(r.Velocity.Scale(dt))
	if r.Position.Y <= 0 && r.Airborne {
		r.Position.Y = 0
		r.Velocity.Y = 0
		r.Airborne = false
	}
}

func (w *World) push(ctrl *Controller, dt, speedMul float64) {
	p := ctrl.Push
	if p == nil {
		return
	}
	if w.pushLeft > 0 {
		force := p.InitialPushForce * speedMul * dt
		w.rider.Velocity.X += math.Cos(w.rider.Heading) * force * 0.1
		w.rider.Velocity.Z += math.Sin(w.rider.Heading) * force * 0.1
		w.pushLeft -= dt
		return
	}
	w.pushTimer += dt
	if w.pushTimer >= p.Delay {
		w.pushTimer = 0
		w.pushLeft = p.Duration
		w.rider.Pushes++
	}
}

func (w *World) pumpSpeed(dt float64) {
	pm := w.pump()
	if pm == nil || !pm.AutoPump || pm.PumpTime <= 0 {
		return
	}
	w.pumpTimer += dt
	if w.pumpTimer >= pm.PumpTime {
		w.pumpTimer = 0
		w.rider.Velocity.X += math.Cos(w.rider.Heading) * pm.PumpForce * 0.05
		w.rider.Velocity.Z += math.Sin(w.rider.Heading) * pm.PumpForce * 0.05
	}
}

func (w *World) tryHop(dt float64) {
	h := w.hop()
	if h == nil || h.Timer == nil || h.Normal == nil {
		return
	}
	w.hopTimer += dt
	if w.hopTimer < h.Timer.HopTime*10 {
		return
	}
	w.hopTimer = 0
	w.rider.Velocity.Y = h.Normal.Strength
	w.rider.Airborne = true
	w.rider.Hops++
}

func init() {
	core.Register("scooter", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
