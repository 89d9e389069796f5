package render

// Layer sort orders used by the world. Lower values render first
// Drawables added without an order render after every layer
const (
	LayerGround   = 0
	LayerFields   = 2
	LayerEntities = 3
)
