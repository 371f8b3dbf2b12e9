package scooter

import "tweakpanel/internal/core"

// DefaultPhysics returns the global physics settings a fresh world starts with.
func DefaultPhysics() Physics {
	return Physics{Gravity: core.Vec3{Y: -9.81}}
}

func newHop() *Hop {
	return &Hop{
		Timer:  &HopTimerSettings{HopTime: 0.4},
		Normal: &NormalHopSettings{Strength: 6, MinimumTimeForJoystick: 0.1},
	}
}

// attachLateHopSettings fills in the settings objects the hop receives after
// its first frames.
func attachLateHopSettings(h *Hop) {
	if h.Low == nil {
		h.Low = &LowHopSettings{Strength: 3.5, MaximumTimeForJoystick: 0.2}
	}
	if h.NoseManual == nil {
		h.NoseManual = &NoseManualHopSettings{Strength: 4}
	}
	if h.FootJam == nil {
		h.FootJam = &FootJamHopSettings{UpwardStrength: 5, ForwardStrength: 2}
	}
}

func newTimeSpeed() *TimeSpeed {
	return &TimeSpeed{SlowMotion: 0.25, AllowPauseTime: true}
}

func newMotor() *Motor {
	return &Motor{SpeedMultiplier: 1, AirSpeed: 4, RollSpeed: 6, RollRotationSpeed: 12}
}

func newAnimator() *Animator {
	return &Animator{Speed: 1}
}

func newController() *Controller {
	return &Controller{
		HopTilt: 15,
		Rotation: &RotationSettings{
			FlipSpeed:          360,
			SpinSpeed:          420,
			FastSpin:           720,
			SpinDampen:         4,
			NormalToFastDampen: 2,
		},
		Wheel: &WheelSettings{
			MaxSteeringAngle: 30,
			FakieSteerAngle:  20,
			SteerDampen:      5,
			MaxMotorTorque:   150,
			StopDrag:         2,
		},
		Push:  &PushSettings{Delay: 0.5, Duration: 0.3, InitialPushForce: 40},
		Fakie: &FakieSettings{FakieThreshold: 0.5},
		Ground: &GroundInformation{
			XDivider:      2,
			ZDivider:      2,
			RaycastOffset: core.Vec3{Y: 0.5},
			LayerMask:     0b111,
		},
		FootJam:           &FootJamSettings{MaxJamAngle: 35, MaxJamFall: 2, WheelDamp: 5, DefaultWheelDamp: 1},
		VelocityMagnitude: &VelocityMagnitudeSettings{VelocityMagnitudeDelay: 0.2},
		CrashLand: &CrashLandSettings{
			FrontInsideAlignedAngle:    45,
			FrontOutsideAlignedAngle:   60,
			BackInsideAlignedAngle:     45,
			BackOutsideAlignedAngle:    60,
			AlignedLandingVelThreshold: 8,
			FallFlatAngle:              70,
			FallFlatVelThreshold:       6,
		},
		Revert: &RevertSettings{
			CrashAngle:   90,
			CrashTime:    1.5,
			TorqueStart:  10,
			TorqueEnd:    30,
			RevertTorque: 50,
			RevertY:      1,
			RevertZ:      0.5,
		},
		CentreOfMass: &CentreOfMassSettings{
			CentreOfMass: core.Vec3{Y: 0.3, Z: 0.1},
			InAir:        core.Vec3{Y: 0.2},
			Normal:       core.Vec3{Y: 0.35, Z: 0.1},
		},
	}
}

func newPump() *PumpMechanic {
	return &PumpMechanic{PumpTime: 0.6, PumpForce: 12}
}
