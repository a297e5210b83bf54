package cloth

import (
	"fmt"
	"strings"
)

// StartMode selects how a freshly built cloth begins simulating.
type StartMode int

const (
	// integrate from the first Step
	START_IMMEDIATE StartMode = iota
	// relax only, until StartSimulation releases the cloth
	START_DRAPED
)

// AnchorEligibility selects which particles an anchor may adopt.
type AnchorEligibility int

const (
	ELIGIBLE_TOP_ROW AnchorEligibility = iota
	ELIGIBLE_BOUNDARY
)

// Profile names a tuned preset.
type Profile int

const (
	PROFILE_HANGING Profile = iota
	PROFILE_DRAPED
)

var (
	startModeNames   = []string{"immediate", "draped"}
	eligibilityNames = []string{"top_row", "boundary"}
	orientationNames = []string{"vertical", "horizontal"}
	profileNames     = []string{"hanging", "draped"}
)

func (m StartMode) String() string {
	return nameOf(startModeNames, int(m))
}

func (m *StartMode) UnmarshalText(text []byte) error {
	i, err := parseName("start mode", startModeNames, text)
	if err != nil {
		return err
	}
	*m = StartMode(i)
	return nil
}

func (e AnchorEligibility) String() string {
	return nameOf(eligibilityNames, int(e))
}

func (e *AnchorEligibility) UnmarshalText(text []byte) error {
	i, err := parseName("anchor eligibility", eligibilityNames, text)
	if err != nil {
		return err
	}
	*e = AnchorEligibility(i)
	return nil
}

func (o Orientation) String() string {
	return nameOf(orientationNames, int(o))
}

func (o *Orientation) UnmarshalText(text []byte) error {
	i, err := parseName("orientation", orientationNames, text)
	if err != nil {
		return err
	}
	*o = Orientation(i)
	return nil
}

func (p Profile) String() string {
	return nameOf(profileNames, int(p))
}

// ParseProfile accepts a profile name, ignoring case.
func ParseProfile(name string) (Profile, error) {
	i, err := parseName("profile", profileNames, []byte(name))
	return Profile(i), err
}

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("unknown(%d)", i)
	}
	return names[i]
}

func parseName(kind string, names []string, text []byte) (int, error) {
	for i, name := range names {
		if strings.EqualFold(name, string(text)) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("cloth: unknown %s %q", kind, text)
}

const (
	DEFAULT_MAX_TIME_STEP = 0.02
	DEFAULT_RELAXATION    = 0.25
	DEFAULT_MIN_STIFFNESS = 0.5
)

type Config struct {
	Mass          float64 `toml:"mass"`
	Damping       float64 `toml:"damping"`
	Gravity       float64 `toml:"gravity"`
	WindForce     float64 `toml:"wind_force"`
	WindFrequency float64 `toml:"wind_frequency"`

	StructuralStiffness float64 `toml:"structural_stiffness"`
	ShearStiffness      float64 `toml:"shear_stiffness"`
	BendingStiffness    float64 `toml:"bending_stiffness"`

	// TearFactor <= 0 disables stretch tearing.
	TearFactor     float64 `toml:"tear_factor"`
	Iterations     int     `toml:"iterations"`
	Relaxation     float64 `toml:"relaxation"`
	AlternateOrder bool    `toml:"alternate_order"`
	MaxTimeStep    float64 `toml:"max_time_step"`

	SnapDistance      float64           `toml:"snap_distance"`
	AnchorEligibility AnchorEligibility `toml:"anchor_eligibility"`

	MinStiffnessFactor float64 `toml:"min_stiffness_factor"`
	CutRays            int     `toml:"cut_rays"`
	EdgeRoughness      float64 `toml:"edge_roughness"`

	StartMode      StartMode   `toml:"start_mode"`
	Orientation    Orientation `toml:"orientation"`
	Origin         Vector      `toml:"origin"`
	SagRatio       float64     `toml:"sag_ratio"`
	PreRelaxPasses int         `toml:"pre_relax_passes"`

	// Workers > 1 relaxes graph-colored constraint batches concurrently.
	Workers int   `toml:"workers"`
	Seed    int64 `toml:"seed"`
}

func DefaultConfig() Config {
	return NewConfig(PROFILE_HANGING)
}

func NewConfig(profile Profile) Config {
	cfg := Config{
		Mass:                0.1,
		Damping:             0.03,
		Gravity:             9.81,
		WindForce:           0,
		WindFrequency:       1.5,
		StructuralStiffness: 1.0,
		ShearStiffness:      0.8,
		BendingStiffness:    0.4,
		TearFactor:          3.0,
		Iterations:          24,
		Relaxation:          DEFAULT_RELAXATION,
		AlternateOrder:      true,
		MaxTimeStep:         DEFAULT_MAX_TIME_STEP,
		SnapDistance:        0.5,
		AnchorEligibility:   ELIGIBLE_TOP_ROW,
		MinStiffnessFactor:  DEFAULT_MIN_STIFFNESS,
		CutRays:             16,
		EdgeRoughness:       0.05,
		StartMode:           START_IMMEDIATE,
		Orientation:         ORIENTATION_VERTICAL,
		SagRatio:            0.08,
		PreRelaxPasses:      60,
		Workers:             1,
		Seed:                1,
	}

	switch profile {
	case PROFILE_DRAPED:
		cfg.StartMode = START_DRAPED
		cfg.TearFactor = 1.75
		cfg.Damping = 0.02
		cfg.ShearStiffness = 0.9
		cfg.BendingStiffness = 0.6
		cfg.Iterations = 60
	}
	return cfg
}

// sanitize replaces unusable values with the hanging defaults.
func (cfg Config) sanitize() Config {
	def := DefaultConfig()
	if !(cfg.Mass > 0) || !finite(cfg.Mass) {
		cfg.Mass = def.Mass
	}
	if !finite(cfg.Damping) {
		cfg.Damping = def.Damping
	}
	cfg.Damping = Clamp(cfg.Damping, 0, 1)
	if !finite(cfg.Gravity) {
		cfg.Gravity = def.Gravity
	}
	if !finite(cfg.WindForce) {
		cfg.WindForce = 0
	}
	if !finite(cfg.WindFrequency) {
		cfg.WindFrequency = def.WindFrequency
	}
	cfg.StructuralStiffness = unit(cfg.StructuralStiffness, def.StructuralStiffness)
	cfg.ShearStiffness = unit(cfg.ShearStiffness, def.ShearStiffness)
	cfg.BendingStiffness = unit(cfg.BendingStiffness, def.BendingStiffness)
	if cfg.Iterations < 1 {
		cfg.Iterations = def.Iterations
	}
	if !(cfg.Relaxation > 0 && cfg.Relaxation <= 1) {
		cfg.Relaxation = def.Relaxation
	}
	if !(cfg.MaxTimeStep > 0) || !finite(cfg.MaxTimeStep) {
		cfg.MaxTimeStep = def.MaxTimeStep
	}
	if !(cfg.SnapDistance >= 0) {
		cfg.SnapDistance = def.SnapDistance
	}
	cfg.MinStiffnessFactor = unit(cfg.MinStiffnessFactor, def.MinStiffnessFactor)
	if cfg.CutRays < 3 {
		cfg.CutRays = def.CutRays
	}
	if !(cfg.EdgeRoughness >= 0) || !finite(cfg.EdgeRoughness) {
		cfg.EdgeRoughness = 0
	}
	if !Finite(cfg.Origin) {
		cfg.Origin = Vector{}
	}
	if !finite(cfg.SagRatio) || cfg.SagRatio < 0 {
		cfg.SagRatio = 0
	}
	if cfg.PreRelaxPasses < 0 {
		cfg.PreRelaxPasses = 0
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return cfg
}

func unit(f, fallback float64) float64 {
	if !finite(f) {
		return fallback
	}
	return Clamp01(f)
}
