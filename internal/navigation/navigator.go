package navigation

import (
	"strings"
	"sync"
)

// Route is one entry of the navigation stack.
type Route struct {
	Path   string
	Params Params
}

// ListRoute is the route of the list screen for an entity path.
func ListRoute(entity string) string {
	return "/" + strings.Trim(entity, "/")
}

// FormRoute is the route of the form screen for an entity path.
func FormRoute(entity string) string {
	return ListRoute(entity) + "/form"
}

// Navigator keeps the route stack. The bottom entry is the home route.
type Navigator struct {
	mu       sync.RWMutex
	stack    []Route
	onChange func(Route)
}

// HomeRoute is the initial route.
const HomeRoute = "/"

// NewNavigator creates a navigator positioned on the home route.
func NewNavigator() *Navigator {
	return &Navigator{stack: []Route{{Path: HomeRoute, Params: Params{}}}}
}

// SetChangeCallback sets the function called with the new current route.
func (n *Navigator) SetChangeCallback(fn func(Route)) {
	n.mu.Lock()
	n.onChange = fn
	n.mu.Unlock()
}

// Push opens path on top of the current route.
func (n *Navigator) Push(path string, params Params) {
	n.mu.Lock()
	route := Route{Path: path, Params: normalize(params)}
	n.stack = append(n.stack, route)
	n.mu.Unlock()
	n.notify(route)
}

// Replace swaps the current route for path. When the route below already
// shows path, the two collapse so that list -> form -> list does not grow
// the stack.
func (n *Navigator) Replace(path string, params Params) {
	n.mu.Lock()
	route := Route{Path: path, Params: normalize(params)}
	n.stack = n.stack[:len(n.stack)-1]
	if len(n.stack) > 1 && n.stack[len(n.stack)-1].Path == path {
		n.stack = n.stack[:len(n.stack)-1]
	}
	n.stack = append(n.stack, route)
	n.mu.Unlock()
	n.notify(route)
}

// Back pops the current route. It returns false on the home route.
func (n *Navigator) Back() bool {
	n.mu.Lock()
	if len(n.stack) <= 1 {
		n.mu.Unlock()
		return false
	}
	n.stack = n.stack[:len(n.stack)-1]
	route := n.stack[len(n.stack)-1]
	n.mu.Unlock()
	n.notify(route)
	return true
}

// Reset pops every route down to home.
func (n *Navigator) Reset() {
	n.mu.Lock()
	n.stack = n.stack[:1]
	route := n.stack[0]
	n.mu.Unlock()
	n.notify(route)
}

// Current returns the route on top of the stack.
func (n *Navigator) Current() Route {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.stack[len(n.stack)-1]
}

// Depth returns the number of routes on the stack.
func (n *Navigator) Depth() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.stack)
}

func (n *Navigator) notify(route Route) {
	n.mu.RLock()
	fn := n.onChange
	n.mu.RUnlock()
	if fn != nil {
		fn(route)
	}
}

func normalize(params Params) Params {
	if params == nil {
		return Params{}
	}
	return params.Clone()
}
