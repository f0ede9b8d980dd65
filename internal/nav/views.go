package nav

import (
	"walkthrough/internal/config"
)

// ViewKey identifies one of the preset camera views. The set is closed; every key maps
// to exactly one pose in the Registry, fixed at startup.
type ViewKey int

const (
	ViewDefault ViewKey = iota
	ViewTop
	ViewHall
	ViewBedroom
	ViewKitchen
	ViewWalk
)

// configKeys maps ViewKeys to their names in the configuration file.
var configKeys = map[ViewKey]string{
	ViewDefault: "default",
	ViewTop:     "top",
	ViewHall:    "hall",
	ViewBedroom: "bedroom",
	ViewKitchen: "kitchen",
	ViewWalk:    "walk",
}

// String returns the configuration name of the view key.
func (k ViewKey) String() string {
	if name, ok := configKeys[k]; ok {
		return name
	}
	return "default"
}

// Label returns the human-readable button label for the view.
func (k ViewKey) Label() string {
	switch k {
	case ViewTop:
		return "Top view"
	case ViewHall:
		return "Hall"
	case ViewBedroom:
		return "Bedroom"
	case ViewKitchen:
		return "Kitchen"
	case ViewWalk:
		return "Walk"
	default:
		return "Home"
	}
}

// Registry is the fixed table of named camera poses. Built once from the configuration
// and never mutated afterwards.
type Registry struct {
	poses    map[ViewKey]Pose
	fallback Pose
}

// NewRegistry builds the registry from the configured views. Views absent from the
// configuration resolve to the default pose.
func NewRegistry(cfg config.Config) *Registry {
	r := &Registry{poses: make(map[ViewKey]Pose, len(configKeys))}
	for key, name := range configKeys {
		if v, ok := cfg.Views[name]; ok {
			r.poses[key] = poseFrom(v)
		}
	}
	r.fallback = r.poses[ViewDefault]
	return r
}

// PoseFor returns the pose for a view key. Total: an unrecognized or unconfigured key
// yields the default pose rather than an error.
func (r *Registry) PoseFor(key ViewKey) Pose {
	if p, ok := r.poses[key]; ok {
		return p
	}
	return r.fallback
}
