// Package builder defines shared constants used by the generators, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandomInventory is the canonical name for RandomInventory.
	MethodRandomInventory = "RandomInventory"
	// MethodGenerateInventory is the canonical name for GenerateInventory.
	MethodGenerateInventory = "GenerateInventory"
	// MethodLadder is the canonical name for the Ladder constructor.
	MethodLadder = "Ladder"
	// MethodRandomNetwork is the canonical name for the RandomNetwork constructor.
	MethodRandomNetwork = "RandomNetwork"
	// MethodLeaf is the canonical name for the Leaf constructor.
	MethodLeaf = "Leaf"
	// MethodBuild is the canonical name for the Build orchestrator.
	MethodBuild = "Build"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinInventorySize is the smallest inventory RandomInventory will produce.
const MinInventorySize = 1

// MinLadderSections is the smallest meaningful RC ladder.
const MinLadderSections = 1

// MinNetworkDepth is the smallest nesting depth for RandomNetwork; depth 1
// means one composite whose children are all inventory clones.
const MinNetworkDepth = 1

// MinFanout is the smallest number of children per composite.
const MinFanout = 1

//-----------------------------------------------------------------------------
// Scaling Defaults
//-----------------------------------------------------------------------------

// DefaultReactiveScale multiplies drawn capacitor and inductor values so that a
// shared maxValue yields physically plausible µF/µH parts next to Ohm-range
// resistors.
const DefaultReactiveScale = 1e-6

// nestProbability is the chance that a RandomNetwork child is itself a
// composite (while depth allows).
const nestProbability = 0.5
