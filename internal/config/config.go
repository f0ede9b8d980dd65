package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the optional walkthrough config file, relative to the process working directory.
// When it is missing the built-in defaults are used; when present, only the keys it sets
// override the defaults.
const ConfigPath = "config/walkthrough.yaml"

// ViewPose describes a named camera placement: where the camera stands, what it looks at,
// and the vertical field of view in degrees.
type ViewPose struct {
	Position [3]float32 `yaml:"position"`
	Target   [3]float32 `yaml:"target"`
	Fovy     float32    `yaml:"fovy"`
}

// Movement holds first-person movement tuning. Units are world meters and seconds.
type Movement struct {
	Speed           float32 `yaml:"speed"`            // walking speed in m/s
	EyeHeight       float32 `yaml:"eye_height"`       // camera Y while walking; re-pinned every frame
	Clearance       float32 `yaml:"clearance"`        // collision probe distance (player radius)
	LookSensitivity float32 `yaml:"look_sensitivity"` // radians per pixel of mouse delta
}

// Transition holds camera fly-to tuning.
type Transition struct {
	Duration float32 `yaml:"duration"` // seconds for a view-to-view transition
}

// Tour holds guided tour tuning. The waypoint order itself is fixed in the navigation
// package; only timing and the shared look target are configurable.
type Tour struct {
	RotationDuration float32    `yaml:"rotation_duration"` // seconds for the full 360° sweep at a waypoint
	PauseDuration    float32    `yaml:"pause_duration"`    // dwell after each sweep
	LookTarget       [3]float32 `yaml:"look_target"`       // point the sweep orbits around
}

// WallRun is a straight wall segment on the XZ plane, described by its two endpoints.
// Door openings are expressed by splitting a wall into runs that leave a gap.
type WallRun struct {
	From [2]float32 `yaml:"from"`
	To   [2]float32 `yaml:"to"`
}

// House describes the walkable model: a floor rectangle and wall runs. The house package
// turns these into collision boxes and draws them.
type House struct {
	WallHeight    float32    `yaml:"wall_height"`
	WallThickness float32    `yaml:"wall_thickness"`
	Floor         [4]float32 `yaml:"floor"` // minX, minZ, maxX, maxZ
	Walls         []WallRun  `yaml:"walls"`
}

// Config is the immutable walkthrough configuration: constructed once at startup and
// passed to the packages that need it. Nothing mutates it after Load.
type Config struct {
	Movement   Movement            `yaml:"movement"`
	Transition Transition          `yaml:"transition"`
	Tour       Tour                `yaml:"tour"`
	Views      map[string]ViewPose `yaml:"views"`
	House      House               `yaml:"house"`
}

// Default returns the built-in configuration: a single-floor home, hall on the west
// half, bedroom north-east, kitchen south-east, front door on the south wall.
func Default() Config {
	return Config{
		Movement: Movement{
			Speed:           2.5,
			EyeHeight:       1.6,
			Clearance:       0.6,
			LookSensitivity: 0.003,
		},
		Transition: Transition{Duration: 1.5},
		Tour: Tour{
			RotationDuration: 8,
			PauseDuration:    2,
			LookTarget:       [3]float32{0, 1.2, 0},
		},
		Views: map[string]ViewPose{
			"default": {Position: [3]float32{0, 1.7, 9}, Target: [3]float32{0, 1.2, 0}, Fovy: 60},
			"top":     {Position: [3]float32{0, 14, 0.01}, Target: [3]float32{0, 0, 0}, Fovy: 60},
			"hall":    {Position: [3]float32{-3, 1.6, 2.5}, Target: [3]float32{-3, 1.4, -2.5}, Fovy: 50},
			"bedroom": {Position: [3]float32{3, 1.6, -2.5}, Target: [3]float32{1, 1.3, -1}, Fovy: 50},
			"kitchen": {Position: [3]float32{3, 1.6, 2.5}, Target: [3]float32{1, 1.3, 1}, Fovy: 50},
			"walk":    {Position: [3]float32{-3, 1.6, 0}, Target: [3]float32{-3, 1.5, -3}, Fovy: 60},
		},
		House: House{
			WallHeight:    2.6,
			WallThickness: 0.2,
			Floor:         [4]float32{-6, -4, 6, 4},
			Walls: []WallRun{
				// Outer shell. The south wall leaves a front door gap at x in [-1, 1].
				{From: [2]float32{-6, -4}, To: [2]float32{6, -4}},
				{From: [2]float32{-6, 4}, To: [2]float32{-1, 4}},
				{From: [2]float32{1, 4}, To: [2]float32{6, 4}},
				{From: [2]float32{-6, -4}, To: [2]float32{-6, 4}},
				{From: [2]float32{6, -4}, To: [2]float32{6, 4}},
				// Hall partition at x=0 with bedroom and kitchen door gaps.
				{From: [2]float32{0, -4}, To: [2]float32{0, -2.6}},
				{From: [2]float32{0, -1.4}, To: [2]float32{0, 1.4}},
				{From: [2]float32{0, 2.6}, To: [2]float32{0, 4}},
				// Bedroom/kitchen partition at z=0 with a connecting door gap.
				{From: [2]float32{0, 0}, To: [2]float32{2.4, 0}},
				{From: [2]float32{3.6, 0}, To: [2]float32{6, 0}},
			},
		},
	}
}

// Load reads ConfigPath and overlays any keys it sets onto the defaults. A missing or
// unparseable file yields the defaults without error; the walkthrough always starts.
func Load() Config {
	return loadFrom(ConfigPath)
}

func loadFrom(path string) Config {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}
	// Unmarshalling into the populated struct overlays only the keys the file sets;
	// everything else keeps its default. A broken file changes nothing.
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default()
	}
	return cfg
}
