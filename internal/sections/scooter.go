package sections

import (
	"tweakpanel/internal/core"
	"tweakpanel/internal/sims/scooter"
	"tweakpanel/internal/tweak"
)

// Section names, in panel order.
const (
	Gravity           = "gravity"
	Hop               = "hop"
	TimeSpeed         = "timespeed"
	Player            = "player"
	ScooterCore       = "scooter"
	Rotation          = "rotation"
	Wheel             = "wheel"
	Push              = "push"
	Fakie             = "fakie"
	Ground            = "ground"
	FootJam           = "footjam"
	VelocityMagnitude = "velocity"
	CrashLand         = "crashland"
	Revert            = "revert"
	CentreOfMass      = "centreofmass"
	Pump              = "pump"
)

// Names lists every scooter section in panel order.
var Names = []string{
	Gravity, Hop, TimeSpeed, Player, ScooterCore, Rotation, Wheel, Push,
	Fakie, Ground, FootJam, VelocityMagnitude, CrashLand, Revert, CentreOfMass, Pump,
}

var (
	floor0   = tweak.Floor(0)
	floorMin = tweak.Floor(0.1)
	fine     = tweak.Scale(0.1)
)

// sub lifts a field reference on a sub-object into one on its owner. The
// result is nil while the sub-object is absent.
func sub[T, S, V any](get func(T) *S, field func(*S) *V) func(T) *V {
	return func(t T) *V {
		s := get(t)
		if s == nil {
			return nil
		}
		return field(s)
	}
}

// settingsOf resolves a settings object hanging off the scooter controller.
// The section is valid only while that settings object exists.
func settingsOf[S any](get func(*scooter.Controller) *S) tweak.Resolver[*S] {
	ctrl := tweak.Find[*scooter.Controller](tweak.Anywhere(scooter.TypeController))
	return tweak.ResolverFunc[*S](func(g core.Graph) (*S, tweak.InstanceID, bool) {
		c, id, ok := ctrl.Resolve(g)
		if !ok {
			return nil, 0, false
		}
		s := get(c)
		return s, id, s != nil
	})
}

type player struct {
	motor *scooter.Motor
	anim  *scooter.Animator
}

// playerResolver finds the motor and animator beneath the player root or its
// cloned variant. Both must be present.
func playerResolver() tweak.Resolver[player] {
	motor := tweak.ChildOf(scooter.TypeMotor, scooter.PlayerRootName, scooter.PlayerCloneName)
	anim := tweak.ChildOf(scooter.TypeAnimator, scooter.PlayerRootName, scooter.PlayerCloneName)
	return tweak.ResolverFunc[player](func(g core.Graph) (player, tweak.InstanceID, bool) {
		mn, ok := motor.Locate(g)
		if !ok {
			return player{}, 0, false
		}
		an, ok := anim.Locate(g)
		if !ok {
			return player{}, 0, false
		}
		m, mok := mn.Value().(*scooter.Motor)
		a, aok := an.Value().(*scooter.Animator)
		if !mok || !aok || m == nil || a == nil {
			return player{}, 0, false
		}
		return player{motor: m, anim: a}, tweak.InstanceID(mn.ID()), true
	})
}

// NewScooter builds the sixteen scooter sections against w.
func NewScooter(w *scooter.World, scope tweak.BaselineScope) []tweak.Panel {
	sc := tweak.WithScope(scope)

	gravity := tweak.NewSection[*scooter.Physics](Gravity, tweak.Static(w.Physics()),
		tweak.Title("Physics: Gravity"), sc).
		Add(tweak.Vector("Gravity", func(p *scooter.Physics) *core.Vec3 { return &p.Gravity },
			fine, tweak.Axes(core.AxisY)))

	timer := func(h *scooter.Hop) *scooter.HopTimerSettings { return h.Timer }
	normal := func(h *scooter.Hop) *scooter.NormalHopSettings { return h.Normal }
	low := func(h *scooter.Hop) *scooter.LowHopSettings { return h.Low }
	nose := func(h *scooter.Hop) *scooter.NoseManualHopSettings { return h.NoseManual }
	jam := func(h *scooter.Hop) *scooter.FootJamHopSettings { return h.FootJam }
	hop := tweak.NewSection[*scooter.Hop](Hop, tweak.Find[*scooter.Hop](tweak.Anywhere(scooter.TypeHop)),
		tweak.Title("Hop & Related Settings"), tweak.Missing("Hop component not found"), sc).
		Group("HopTimerSettings",
			tweak.Float("Hop Time", sub(timer, func(s *scooter.HopTimerSettings) *float64 { return &s.HopTime }), fine, floor0)).
		Group("NormalHopSettings",
			tweak.Float("Normal Strength", sub(normal, func(s *scooter.NormalHopSettings) *float64 { return &s.Strength }), floor0),
			tweak.Float("Min Joystick", sub(normal, func(s *scooter.NormalHopSettings) *float64 { return &s.MinimumTimeForJoystick }), fine, floor0)).
		Group("LowHopSettings",
			tweak.Float("Low Strength", sub(low, func(s *scooter.LowHopSettings) *float64 { return &s.Strength }), floor0),
			tweak.Float("Max Joystick", sub(low, func(s *scooter.LowHopSettings) *float64 { return &s.MaximumTimeForJoystick }), fine, floor0)).
		Group("NoseManualHopSettings",
			tweak.Float("NoseManual Strength", sub(nose, func(s *scooter.NoseManualHopSettings) *float64 { return &s.Strength }), floor0)).
		Group("FootJamHopSettings",
			tweak.Float("FootJam Up Str", sub(jam, func(s *scooter.FootJamHopSettings) *float64 { return &s.UpwardStrength }), floor0),
			tweak.Float("FootJam Fwd Str", sub(jam, func(s *scooter.FootJamHopSettings) *float64 { return &s.ForwardStrength }), floor0))

	timeSpeed := tweak.NewSection[*scooter.TimeSpeed](TimeSpeed, tweak.Find[*scooter.TimeSpeed](tweak.Anywhere(scooter.TypeTimeSpeed)),
		tweak.Title("TimeSpeed"), sc).
		Add(
			tweak.Float("Slomo Scale", func(t *scooter.TimeSpeed) *float64 { return &t.SlowMotion }, tweak.Scale(0.01), floor0, tweak.Precision(2)),
			tweak.Bool("Allow PauseTime", func(t *scooter.TimeSpeed) *bool { return &t.AllowPauseTime }),
		)

	playerSection := tweak.NewSection[player](Player, playerResolver(),
		tweak.Title("Player Animator & Motor"), tweak.Missing("Player components not found"), sc).
		Add(
			tweak.Float("Anim Speed", func(p player) *float64 { return &p.anim.Speed }, floorMin),
			tweak.Float("Walk Mult", func(p player) *float64 { return &p.motor.SpeedMultiplier }, floorMin),
			tweak.Float("Air Speed", func(p player) *float64 { return &p.motor.AirSpeed }, floor0),
			tweak.Float("Roll Speed", func(p player) *float64 { return &p.motor.RollSpeed }, floor0),
			tweak.Float("Roll Rot Spd", func(p player) *float64 { return &p.motor.RollRotationSpeed }, floor0),
		)

	coreSection := tweak.NewSection[*scooter.Controller](ScooterCore, tweak.Find[*scooter.Controller](tweak.Anywhere(scooter.TypeController)),
		tweak.Title("ScooterController Core"), sc).
		Add(tweak.Float("Hop Tilt", func(c *scooter.Controller) *float64 { return &c.HopTilt }, floor0))

	rotation := tweak.NewSection[*scooter.RotationSettings](Rotation,
		settingsOf(func(c *scooter.Controller) *scooter.RotationSettings { return c.Rotation }),
		tweak.Title("Rotation Settings"), tweak.Missing("RotationSettings not found"), sc).
		Add(
			tweak.Float("Flip Speed", func(r *scooter.RotationSettings) *float64 { return &r.FlipSpeed }, floor0),
			tweak.Float("Spin Speed", func(r *scooter.RotationSettings) *float64 { return &r.SpinSpeed }, floor0),
			tweak.Float("Fast Spin", func(r *scooter.RotationSettings) *float64 { return &r.FastSpin }, floor0),
			tweak.Float("Spin Dampen", func(r *scooter.RotationSettings) *float64 { return &r.SpinDampen }, floor0),
			tweak.Float("Norm→Fast Damp", func(r *scooter.RotationSettings) *float64 { return &r.NormalToFastDampen }, floor0),
			tweak.Bool("Disable LandCorrection On Flip", func(r *scooter.RotationSettings) *bool { return &r.DisableLandCorrectionOnFlip }),
		)

	wheel := tweak.NewSection[*scooter.WheelSettings](Wheel,
		settingsOf(func(c *scooter.Controller) *scooter.WheelSettings { return c.Wheel }),
		tweak.Title("Scooter Wheel Settings"), tweak.Missing("ScooterWheelSettings not found"), sc).
		Add(
			tweak.Float("Max Steering Angle", func(s *scooter.WheelSettings) *float64 { return &s.MaxSteeringAngle }, floor0),
			tweak.Float("Fakie Steer Angle", func(s *scooter.WheelSettings) *float64 { return &s.FakieSteerAngle }, floor0),
			tweak.Float("Steer Dampen", func(s *scooter.WheelSettings) *float64 { return &s.SteerDampen }, floor0),
			tweak.Float("Max Motor Torque", func(s *scooter.WheelSettings) *float64 { return &s.MaxMotorTorque }, floor0),
			tweak.Float("Stop Drag", func(s *scooter.WheelSettings) *float64 { return &s.StopDrag }, floor0),
		)

	push := tweak.NewSection[*scooter.PushSettings](Push,
		settingsOf(func(c *scooter.Controller) *scooter.PushSettings { return c.Push }),
		tweak.Title("Push Settings"), tweak.Missing("PushSettings not found"), sc).
		Add(
			tweak.Float("Push Delay", func(s *scooter.PushSettings) *float64 { return &s.Delay }, floor0),
			tweak.Float("Push Duration", func(s *scooter.PushSettings) *float64 { return &s.Duration }, floor0),
			tweak.Float("Initial Push Force", func(s *scooter.PushSettings) *float64 { return &s.InitialPushForce }, floor0),
		)

	fakie := tweak.NewSection[*scooter.FakieSettings](Fakie,
		settingsOf(func(c *scooter.Controller) *scooter.FakieSettings { return c.Fakie }),
		tweak.Title("Fakie Settings"), tweak.Missing("FakieSettings not found"), sc).
		Add(tweak.Float("Fakie Threshold", func(s *scooter.FakieSettings) *float64 { return &s.FakieThreshold }, floor0))

	ground := tweak.NewSection[*scooter.GroundInformation](Ground,
		settingsOf(func(c *scooter.Controller) *scooter.GroundInformation { return c.Ground }),
		tweak.Title("Ground Information"), tweak.Missing("GroundInformation not found"), sc).
		Add(
			tweak.Float("X Divider", func(s *scooter.GroundInformation) *float64 { return &s.XDivider }, floorMin),
			tweak.Float("Z Divider", func(s *scooter.GroundInformation) *float64 { return &s.ZDivider }, floorMin),
			tweak.Bool("Debug Raycast", func(s *scooter.GroundInformation) *bool { return &s.Debug }),
			tweak.Vector("Raycast Offset", func(s *scooter.GroundInformation) *core.Vec3 { return &s.RaycastOffset }, tweak.Caption("R")),
			tweak.Mask("LayerMask", func(s *scooter.GroundInformation) *core.LayerMask { return &s.LayerMask }),
		)

	footJam := tweak.NewSection[*scooter.FootJamSettings](FootJam,
		settingsOf(func(c *scooter.Controller) *scooter.FootJamSettings { return c.FootJam }),
		tweak.Title("FootJam Settings"), tweak.Missing("FootJamSettings not found"), sc).
		Add(
			tweak.Float("Max Jam Angle", func(s *scooter.FootJamSettings) *float64 { return &s.MaxJamAngle }, floor0),
			tweak.Float("Max Jam Fall", func(s *scooter.FootJamSettings) *float64 { return &s.MaxJamFall }, floor0),
			tweak.Float("Wheel Dampen", func(s *scooter.FootJamSettings) *float64 { return &s.WheelDamp }, floor0),
			tweak.Float("Default Wheel Damp", func(s *scooter.FootJamSettings) *float64 { return &s.DefaultWheelDamp }, floor0),
		)

	velocity := tweak.NewSection[*scooter.VelocityMagnitudeSettings](VelocityMagnitude,
		settingsOf(func(c *scooter.Controller) *scooter.VelocityMagnitudeSettings { return c.VelocityMagnitude }),
		tweak.Title("Velocity Magnitude Settings"), tweak.Missing("VelocityMagnitudeSettings not found"), sc).
		Add(tweak.Float("Velocity Delay", func(s *scooter.VelocityMagnitudeSettings) *float64 { return &s.VelocityMagnitudeDelay }, floor0))

	crash := tweak.NewSection[*scooter.CrashLandSettings](CrashLand,
		settingsOf(func(c *scooter.Controller) *scooter.CrashLandSettings { return c.CrashLand }),
		tweak.Title("Crash Land Settings"), tweak.Missing("CrashLandSettings not found"), sc).
		Add(
			tweak.Float("Front In Align Angle", func(s *scooter.CrashLandSettings) *float64 { return &s.FrontInsideAlignedAngle }, floor0),
			tweak.Float("Front Out Align Angle", func(s *scooter.CrashLandSettings) *float64 { return &s.FrontOutsideAlignedAngle }, floor0),
			tweak.Float("Back In Align Angle", func(s *scooter.CrashLandSettings) *float64 { return &s.BackInsideAlignedAngle }, floor0),
			tweak.Float("Back Out Align Angle", func(s *scooter.CrashLandSettings) *float64 { return &s.BackOutsideAlignedAngle }, floor0),
			tweak.Float("Align Landing Vel Thresh", func(s *scooter.CrashLandSettings) *float64 { return &s.AlignedLandingVelThreshold }, floor0),
			tweak.Float("Fall Flat Angle", func(s *scooter.CrashLandSettings) *float64 { return &s.FallFlatAngle }, floor0),
			tweak.Float("Fall Flat Vel Thresh", func(s *scooter.CrashLandSettings) *float64 { return &s.FallFlatVelThreshold }, floor0),
		)

	revert := tweak.NewSection[*scooter.RevertSettings](Revert,
		settingsOf(func(c *scooter.Controller) *scooter.RevertSettings { return c.Revert }),
		tweak.Title("Revert Settings"), tweak.Missing("RevertSettings not found"), sc).
		Add(
			tweak.Float("Crash Angle", func(s *scooter.RevertSettings) *float64 { return &s.CrashAngle }, floor0),
			tweak.Float("Crash Time", func(s *scooter.RevertSettings) *float64 { return &s.CrashTime }, floor0),
			tweak.Float("Torque Start", func(s *scooter.RevertSettings) *float64 { return &s.TorqueStart }, floor0),
			tweak.Float("Torque End", func(s *scooter.RevertSettings) *float64 { return &s.TorqueEnd }, floor0),
			tweak.Float("Revert Torque", func(s *scooter.RevertSettings) *float64 { return &s.RevertTorque }, floor0),
			tweak.Float("Revert Y", func(s *scooter.RevertSettings) *float64 { return &s.RevertY }, floor0),
			tweak.Float("Revert Z", func(s *scooter.RevertSettings) *float64 { return &s.RevertZ }, floor0),
		)

	com := tweak.NewSection[*scooter.CentreOfMassSettings](CentreOfMass,
		settingsOf(func(c *scooter.Controller) *scooter.CentreOfMassSettings { return c.CentreOfMass }),
		tweak.Title("Centre Of Mass Settings"), tweak.Missing("CentreOfMassSettings not found"), sc).
		Add(
			tweak.Vector("CentreOfMass", func(s *scooter.CentreOfMassSettings) *core.Vec3 { return &s.CentreOfMass }, tweak.Caption("CM")),
			tweak.Vector("In Air COM", func(s *scooter.CentreOfMassSettings) *core.Vec3 { return &s.InAir }, tweak.Caption("IA")),
			tweak.Vector("Normal COM", func(s *scooter.CentreOfMassSettings) *core.Vec3 { return &s.Normal }, tweak.Caption("N")),
		)

	pump := tweak.NewSection[*scooter.PumpMechanic](Pump, tweak.Find[*scooter.PumpMechanic](tweak.Anywhere(scooter.TypePump)),
		tweak.Title("Pump Mechanic Settings"), sc).
		Add(
			tweak.Bool("Pump Debug", func(p *scooter.PumpMechanic) *bool { return &p.Debug }),
			tweak.Bool("Auto Pump", func(p *scooter.PumpMechanic) *bool { return &p.AutoPump }),
			tweak.Float("Pump Time", func(p *scooter.PumpMechanic) *float64 { return &p.PumpTime }, fine, floor0),
			tweak.Float("Pump Force", func(p *scooter.PumpMechanic) *float64 { return &p.PumpForce }, floor0),
		)

	return []tweak.Panel{
		gravity, hop, timeSpeed, playerSection, coreSection, rotation, wheel, push,
		fakie, ground, footJam, velocity, crash, revert, com, pump,
	}
}

func init() {
	Register("scooter", func(sim core.Sim, scope tweak.BaselineScope) []tweak.Panel {
		w, ok := sim.(*scooter.World)
		if !ok {
			return nil
		}
		return NewScooter(w, scope)
	})
}
