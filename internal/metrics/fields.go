package metrics

// Attribute keys shared by all instruments.
const (
	AttrProvider = "provider"
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
)
