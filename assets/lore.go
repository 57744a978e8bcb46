package assets

// DepthLore holds atmospheric snippets per cave depth (index 0 is the
// surface level). One is picked at random on arrival.
var DepthLore = [][]string{
	{
		"Cold air drifts up from somewhere far below.",
		"Fungus glows faintly along the cracks in the rock.",
		"Water drips in a slow, patient rhythm.",
	},
	{
		"The walls here are scored with old claw marks.",
		"Something small skitters away from your light.",
		"The floor is slick with a greenish film.",
	},
	{
		"Bones crunch underfoot. Most of them are not human.",
		"A draft carries the smell of damp earth and rot.",
		"The tunnels fork and fork again.",
	},
	{
		"The rock sweats. The air tastes of iron.",
		"Far off, something heavy shifts and settles.",
		"Your footsteps echo longer than they should.",
	},
	{
		"The ceiling presses low. You stoop without meaning to.",
		"Faint scratching comes from inside the walls.",
		"A cold wind rises from the depths below.",
	},
	{
		"The ground trembles in slow, regular beats.",
		"A great dark hole yawns somewhere on this level.",
		"Whatever lives at the bottom of the world is awake.",
	},
}

// CavernLore is shown on falling into the boss cavern.
var CavernLore = []string{
	"You land hard in a vast round cavern. Something enormous turns toward you.",
	"Still water reflects a shape that is far too large.",
}

// LoreFor returns the snippets for a depth, reusing the deepest set past the
// last defined depth.
func LoreFor(depth int) []string {
	if depth < 0 {
		depth = 0
	}
	if depth >= len(DepthLore) {
		depth = len(DepthLore) - 1
	}
	return DepthLore[depth]
}
