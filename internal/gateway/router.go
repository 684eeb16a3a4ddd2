package gateway

import (
	"fmt"
	"net/http"
	"strings"
)

var supportedMethods = map[string]bool{
	http.MethodOptions: true,
	http.MethodHead:    true,
	http.MethodGet:     true,
	http.MethodPost:    true,
	http.MethodPut:     true,
	http.MethodPatch:   true,
	http.MethodDelete:  true,
}

// Router keeps routes per method; the first registered match wins
type Router struct {
	routes map[string][]*Route
	count  int
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{routes: make(map[string][]*Route)}
}

// Add registers a route
func (r *Router) Add(config RouteConfig) (*Route, error) {
	method := strings.ToUpper(config.Method)
	if !supportedMethods[method] {
		return nil, fmt.Errorf("unsupported method: %s", config.Method)
	}
	config.Method = method

	route, err := NewRoute(config)
	if err != nil {
		return nil, err
	}

	r.routes[method] = append(r.routes[method], route)
	r.count++
	return route, nil
}

// Find returns the route serving method and path, or nil
func (r *Router) Find(method, path string) *Route {
	for _, route := range r.routes[strings.ToUpper(method)] {
		if route.Match(path) {
			return route
		}
	}
	return nil
}

// HasRoutes reports whether any route is registered
func (r *Router) HasRoutes() bool {
	return r.count > 0
}
