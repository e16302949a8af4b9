package bellows

import (
	"fmt"

	"github.com/sylvainf/bellows/pkg/errors"
)

// CameraSpec describes the two frames the bellows connects and how far it
// must extend. All values are millimeters.
type CameraSpec struct {
	FrontWidth  float64 `json:"front_width" yaml:"front_width" toml:"front_width"`
	FrontHeight float64 `json:"front_height" yaml:"front_height" toml:"front_height"`
	RearWidth   float64 `json:"rear_width" yaml:"rear_width" toml:"rear_width"`
	RearHeight  float64 `json:"rear_height" yaml:"rear_height" toml:"rear_height"`
	MaxDraw     float64 `json:"max_draw" yaml:"max_draw" toml:"max_draw"`
}

// ConstructionParams controls how the panels are pleated and arranged.
type ConstructionParams struct {
	// StiffenerHeight is the depth of one stiffener card, which is also the
	// nominal pleat depth.
	StiffenerHeight float64 `json:"stiffener_height" yaml:"stiffener_height" toml:"stiffener_height"`

	// GapHeight is the flat connector between consecutive stiffeners where
	// the fabric folds.
	GapHeight float64 `json:"gap_height" yaml:"gap_height" toml:"gap_height"`

	// Chamfer clips the corners of outlines and stiffener cards at 45°.
	Chamfer float64 `json:"chamfer" yaml:"chamfer" toml:"chamfer"`

	// FaceGap separates adjacent faces in the combined pattern.
	FaceGap float64 `json:"face_gap" yaml:"face_gap" toml:"face_gap"`
}

// Default construction values, matching common large-format practice.
const (
	DefaultStiffenerHeight = 12.0
	DefaultGapHeight       = 2.5
	DefaultChamfer         = 1.5
	DefaultFaceGap         = 5.0
)

// DefaultCamera returns a 96×96mm front, 145×145mm rear bellows with a 300mm draw.
func DefaultCamera() CameraSpec {
	return CameraSpec{
		FrontWidth:  96,
		FrontHeight: 96,
		RearWidth:   145,
		RearHeight:  145,
		MaxDraw:     300,
	}
}

// DefaultConstruction returns the default pleating parameters.
func DefaultConstruction() ConstructionParams {
	return ConstructionParams{
		StiffenerHeight: DefaultStiffenerHeight,
		GapHeight:       DefaultGapHeight,
		Chamfer:         DefaultChamfer,
		FaceGap:         DefaultFaceGap,
	}
}

// Validate checks that every frame dimension and the draw are finite and positive.
func (s CameraSpec) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"front width", s.FrontWidth},
		{"front height", s.FrontHeight},
		{"rear width", s.RearWidth},
		{"rear height", s.RearHeight},
		{"max draw", s.MaxDraw},
	}
	for _, c := range checks {
		if err := errors.ValidatePositive(c.name, c.v); err != nil {
			return err
		}
	}
	return nil
}

// Edges returns the front (near) and rear (far) edge lengths of a face.
// Top and bottom faces span the frame width, left and right faces the height.
func (s CameraSpec) Edges(f Face) (near, far float64) {
	if f.SpansWidth() {
		return s.FrontWidth, s.RearWidth
	}
	return s.FrontHeight, s.RearHeight
}

// Validate checks the construction parameters. The stiffener height must be
// positive; the remaining lengths may be zero.
func (p ConstructionParams) Validate() error {
	if err := errors.ValidatePositive("stiffener height", p.StiffenerHeight); err != nil {
		return err
	}
	checks := []struct {
		name string
		v    float64
	}{
		{"gap height", p.GapHeight},
		{"chamfer", p.Chamfer},
		{"face gap", p.FaceGap},
	}
	for _, c := range checks {
		if err := errors.ValidateNonNegative(c.name, c.v); err != nil {
			return err
		}
	}
	return nil
}

// FoldCycle is the nominal length of one pleat plus its connector.
func (p ConstructionParams) FoldCycle() float64 {
	return p.StiffenerHeight + p.GapHeight
}

// MinDraw is the shortest draw that holds a single fold pair.
func (p ConstructionParams) MinDraw() float64 {
	return 2 * p.FoldCycle()
}

// String formats the frames like "96×96 → 145×145 mm".
func (s CameraSpec) String() string {
	return fmt.Sprintf("%g×%g → %g×%g mm", s.FrontWidth, s.FrontHeight, s.RearWidth, s.RearHeight)
}
