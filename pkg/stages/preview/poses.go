package preview

import (
	"github.com/user/skinview/pkg/pipeline"
	"github.com/user/skinview/pkg/regions"
)

// placement draws one texture part at a grid position relative to the pose origin.
type placement struct {
	part   regions.Part
	x, y   int
	mirror bool
}

// Pose geometry in grid units.
const (
	poseWidth  = 16
	poseHeight = 32
)

// Placements are drawn in order: base layer parts first, then overlays.
// Single layer poses synthesise the left limbs by mirroring the right ones.
var frontPoses = [2][2][]placement{
	pipeline.ModelSteve: {
		pipeline.LayerSingle: {
			{part: regions.HeadFront, x: 4, y: 0},
			{part: regions.HatFront, x: 4, y: 0},
			{part: regions.BodyFront, x: 4, y: 8},
			{part: regions.RightLegFront, x: 4, y: 20},
			{part: regions.RightArmFront, x: 0, y: 8},
			{part: regions.RightArmFront, x: 12, y: 8, mirror: true},
			{part: regions.RightLegFront, x: 8, y: 20, mirror: true},
		},
		pipeline.LayerDouble: {
			{part: regions.HeadFront, x: 4, y: 0},
			{part: regions.HatFront, x: 4, y: 0},
			{part: regions.BodyFront, x: 4, y: 8},
			{part: regions.RightLegFront, x: 4, y: 20},
			{part: regions.RightArmFront, x: 0, y: 8},
			{part: regions.LeftLegFront, x: 8, y: 20},
			{part: regions.LeftArmFront, x: 12, y: 8},
			{part: regions.BodyFrontOverlay, x: 4, y: 8},
			{part: regions.RightLegFrontOverlay, x: 4, y: 20},
			{part: regions.LeftLegFrontOverlay, x: 8, y: 20},
			{part: regions.RightArmFrontOverlay, x: 0, y: 8},
			{part: regions.LeftArmFrontOverlay, x: 12, y: 8},
		},
	},
	pipeline.ModelAlex: {
		pipeline.LayerSingle: {
			{part: regions.HeadFront, x: 4, y: 0},
			{part: regions.HatFront, x: 4, y: 0},
			{part: regions.BodyFront, x: 4, y: 8},
			{part: regions.RightLegFront, x: 4, y: 20},
			{part: regions.RightArmFront, x: 1, y: 8},
			{part: regions.RightArmFront, x: 12, y: 8, mirror: true},
			{part: regions.RightLegFront, x: 8, y: 20, mirror: true},
		},
		pipeline.LayerDouble: {
			{part: regions.HeadFront, x: 4, y: 0},
			{part: regions.HatFront, x: 4, y: 0},
			{part: regions.BodyFront, x: 4, y: 8},
			{part: regions.RightLegFront, x: 4, y: 20},
			{part: regions.RightArmFront, x: 1, y: 8},
			{part: regions.LeftLegFront, x: 8, y: 20},
			{part: regions.LeftArmFront, x: 12, y: 8},
			{part: regions.BodyFrontOverlay, x: 4, y: 8},
			{part: regions.RightLegFrontOverlay, x: 4, y: 20},
			{part: regions.LeftLegFrontOverlay, x: 8, y: 20},
			{part: regions.RightArmFrontOverlay, x: 1, y: 8},
			{part: regions.LeftArmFrontOverlay, x: 12, y: 8},
		},
	},
}

// Seen from behind, the right limbs appear on the viewer's right.
var backPoses = [2][2][]placement{
	pipeline.ModelSteve: {
		pipeline.LayerSingle: {
			{part: regions.BodyBack, x: 4, y: 8},
			{part: regions.HeadBack, x: 4, y: 0},
			{part: regions.RightLegBack, x: 8, y: 20},
			{part: regions.HatBack, x: 4, y: 0},
			{part: regions.RightArmBack, x: 12, y: 8},
			{part: regions.RightArmBack, x: 0, y: 8, mirror: true},
			{part: regions.RightLegBack, x: 4, y: 20, mirror: true},
		},
		pipeline.LayerDouble: {
			{part: regions.BodyBack, x: 4, y: 8},
			{part: regions.HeadBack, x: 4, y: 0},
			{part: regions.RightLegBack, x: 8, y: 20},
			{part: regions.HatBack, x: 4, y: 0},
			{part: regions.RightArmBack, x: 12, y: 8},
			{part: regions.LeftArmBack, x: 0, y: 8},
			{part: regions.LeftLegBack, x: 4, y: 20},
			{part: regions.BodyBackOverlay, x: 4, y: 8},
			{part: regions.RightArmBackOverlay, x: 12, y: 8},
			{part: regions.LeftArmBackOverlay, x: 0, y: 8},
			{part: regions.RightLegBackOverlay, x: 8, y: 20},
			{part: regions.LeftLegBackOverlay, x: 4, y: 20},
		},
	},
	pipeline.ModelAlex: {
		pipeline.LayerSingle: {
			{part: regions.BodyBack, x: 4, y: 8},
			{part: regions.HeadBack, x: 4, y: 0},
			{part: regions.RightLegBack, x: 8, y: 20},
			{part: regions.HatBack, x: 4, y: 0},
			{part: regions.RightArmBack, x: 12, y: 8},
			{part: regions.RightArmBack, x: 1, y: 8, mirror: true},
			{part: regions.RightLegBack, x: 4, y: 20, mirror: true},
		},
		pipeline.LayerDouble: {
			{part: regions.BodyBack, x: 4, y: 8},
			{part: regions.HeadBack, x: 4, y: 0},
			{part: regions.RightLegBack, x: 8, y: 20},
			{part: regions.HatBack, x: 4, y: 0},
			{part: regions.RightArmBack, x: 12, y: 8},
			{part: regions.LeftArmBack, x: 1, y: 8},
			{part: regions.LeftLegBack, x: 4, y: 20},
			{part: regions.BodyBackOverlay, x: 4, y: 8},
			{part: regions.RightArmBackOverlay, x: 12, y: 8},
			{part: regions.LeftArmBackOverlay, x: 1, y: 8},
			{part: regions.RightLegBackOverlay, x: 8, y: 20},
			{part: regions.LeftLegBackOverlay, x: 4, y: 20},
		},
	},
}
