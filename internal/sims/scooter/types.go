package scooter

import "tweakpanel/internal/core"

// Type identifiers of the objects spawned into the scene graph.
const (
	TypeHop          = "Hop"
	TypeTimeSpeed    = "TimeSpeed"
	TypeController   = "ScooterController"
	TypePump         = "PumpMechanic"
	TypeMotor        = "ThirdPersonMotor"
	TypeAnimator     = "Animator"
	TypePlayerRoot   = "PlayerRoot"
	TypeLevel        = "Level"
	PlayerRootName   = "PlayerComponents"
	PlayerCloneName  = PlayerRootName + "(Clone)"
	levelObjectName  = "Level"
	scooterRootName  = "Scooter"
	hopObjectName    = "Hop"
	timeObjectName   = "TimeSpeed"
	pumpObjectName   = "Pump"
	motorObjectName  = "Motor"
	animObjectName   = "Animator"
	playerModelName  = "Model"
	playerModelType  = "Transform"
)

// Physics holds global physics settings. It exists for the lifetime of the
// world and is never part of the scene graph.
type Physics struct {
	Gravity core.Vec3
}

type HopTimerSettings struct {
	HopTime float64
}

type NormalHopSettings struct {
	Strength               float64
	MinimumTimeForJoystick float64
}

type LowHopSettings struct {
	Strength               float64
	MaximumTimeForJoystick float64
}

type NoseManualHopSettings struct {
	Strength float64
}

type FootJamHopSettings struct {
	UpwardStrength  float64
	ForwardStrength float64
}

// Hop drives jump behaviour. Its settings objects are attached lazily by the
// world, so any of them may be nil.
type Hop struct {
	Timer      *HopTimerSettings
	Normal     *NormalHopSettings
	Low        *LowHopSettings
	NoseManual *NoseManualHopSettings
	FootJam    *FootJamHopSettings
}

// TimeSpeed scales simulation time.
type TimeSpeed struct {
	SlowMotion     float64
	AllowPauseTime bool
}

// Motor is the rider's locomotion component.
type Motor struct {
	SpeedMultiplier   float64
	AirSpeed          float64
	RollSpeed         float64
	RollRotationSpeed float64
}

// Animator plays the rider's animations.
type Animator struct {
	Speed float64
}

type RotationSettings struct {
	FlipSpeed                   float64
	SpinSpeed                   float64
	FastSpin                    float64
	SpinDampen                  float64
	NormalToFastDampen          float64
	DisableLandCorrectionOnFlip bool
}

type WheelSettings struct {
	MaxSteeringAngle float64
	FakieSteerAngle  float64
	SteerDampen      float64
	MaxMotorTorque   float64
	StopDrag         float64
}

type PushSettings struct {
	Delay            float64
	Duration         float64
	InitialPushForce float64
}

type FakieSettings struct {
	FakieThreshold float64
}

type GroundInformation struct {
	XDivider      float64
	ZDivider      float64
	Debug         bool
	RaycastOffset core.Vec3
	LayerMask     core.LayerMask
}

type FootJamSettings struct {
	MaxJamAngle      float64
	MaxJamFall       float64
	WheelDamp        float64
	DefaultWheelDamp float64
}

type VelocityMagnitudeSettings struct {
	VelocityMagnitudeDelay float64
}

type CrashLandSettings struct {
	FrontInsideAlignedAngle    float64
	FrontOutsideAlignedAngle   float64
	BackInsideAlignedAngle     float64
	BackOutsideAlignedAngle    float64
	AlignedLandingVelThreshold float64
	FallFlatAngle              float64
	FallFlatVelThreshold       float64
}

type RevertSettings struct {
	CrashAngle   float64
	CrashTime    float64
	TorqueStart  float64
	TorqueEnd    float64
	RevertTorque float64
	RevertY      float64
	RevertZ      float64
}

type CentreOfMassSettings struct {
	CentreOfMass core.Vec3
	InAir        core.Vec3
	Normal       core.Vec3
}

// Controller is the scooter itself. Every settings pointer may be nil.
type Controller struct {
	HopTilt float64

	Rotation          *RotationSettings
	Wheel             *WheelSettings
	Push              *PushSettings
	Fakie             *FakieSettings
	Ground            *GroundInformation
	FootJam           *FootJamSettings
	VelocityMagnitude *VelocityMagnitudeSettings
	CrashLand         *CrashLandSettings
	Revert            *RevertSettings
	CentreOfMass      *CentreOfMassSettings
}

// PumpMechanic converts rider input into speed on transitions.
type PumpMechanic struct {
	Debug     bool
	AutoPump  bool
	PumpTime  float64
	PumpForce float64
}
