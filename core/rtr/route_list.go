package rtr

// RouteList represents a registered route for debugging and inspection
// purposes. HandlerRef is a string rendering of the handler data.
type RouteList struct {
	Pattern    string
	HandlerRef string
}
