package gateway

import (
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// Parameter declares a request parameter forwarded to the function
type Parameter struct {
	Name     string `mapstructure:"name"`
	Required bool   `mapstructure:"required"`
}

// Parameters groups the declared parameters of a route
type Parameters struct {
	Paths        []Parameter `mapstructure:"paths"`
	QueryStrings []Parameter `mapstructure:"querystrings"`
	Headers      []Parameter `mapstructure:"headers"`
}

// RouteConfig describes one HTTP event of a function
type RouteConfig struct {
	Method string `mapstructure:"method"`
	Path   string `mapstructure:"path"`
	// Target is the base URL of a runtime interface emulator serving the function
	Target string `mapstructure:"target"`
	// Function names an in-process handler; used when Target is empty
	Function   string     `mapstructure:"function"`
	Parameters Parameters `mapstructure:"parameters"`
}

// Route matches requests against a path template such as /users/{id}
type Route struct {
	config  RouteConfig
	pattern *regexp.Regexp
}

var templateParam = regexp.MustCompile(`^\{([A-Za-z_][A-Za-z0-9_]*)(\+?)\}$`)

// PathPattern compiles a path template. {name} matches one segment, {name+} the rest of the path.
func PathPattern(path string) (*regexp.Regexp, error) {
	var parts []string
	for _, fragment := range strings.Split(path, "/") {
		if fragment == "" {
			continue
		}
		if m := templateParam.FindStringSubmatch(fragment); m != nil {
			if m[2] == "+" {
				parts = append(parts, fmt.Sprintf("(?P<%s>.+)", m[1]))
			} else {
				parts = append(parts, fmt.Sprintf("(?P<%s>[^/]+)", m[1]))
			}
			continue
		}
		if strings.ContainsAny(fragment, "{}") {
			return nil, fmt.Errorf("invalid path segment %q", fragment)
		}
		parts = append(parts, regexp.QuoteMeta(fragment))
	}

	return regexp.Compile("^/" + strings.Join(parts, "/") + "/?$")
}

// NewRoute creates a route from its configuration
func NewRoute(config RouteConfig) (*Route, error) {
	if config.Target == "" && config.Function == "" {
		return nil, fmt.Errorf("route %s %s needs a target or a function", config.Method, config.Path)
	}

	pattern, err := PathPattern(config.Path)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q: %w", config.Path, err)
	}

	return &Route{config: config, pattern: pattern}, nil
}

// Config returns the route configuration
func (r *Route) Config() RouteConfig {
	return r.config
}

// Match reports whether the route serves the escaped path
func (r *Route) Match(path string) bool {
	return r.pattern.MatchString(path)
}

// Validate lists every missing required query or header parameter
func (r *Route) Validate(req *http.Request) []string {
	var errs []string
	query := req.URL.Query()

	for _, p := range r.config.Parameters.QueryStrings {
		if p.Required && !query.Has(p.Name) {
			errs = append(errs, fmt.Sprintf("query parameter %q is required", p.Name))
		}
	}

	for _, p := range r.config.Parameters.Headers {
		if p.Required && req.Header.Get(p.Name) == "" {
			errs = append(errs, fmt.Sprintf("header parameter %q is required", p.Name))
		}
	}

	return errs
}

// PathParams extracts the declared path parameters from an escaped path, unescaping each once
func (r *Route) PathParams(path string) map[string]string {
	params := make(map[string]string)
	match := r.pattern.FindStringSubmatch(path)
	if match == nil {
		return params
	}

	for _, p := range r.config.Parameters.Paths {
		idx := r.pattern.SubexpIndex(p.Name)
		if idx < 0 {
			continue
		}
		if value, err := url.PathUnescape(match[idx]); err == nil {
			params[p.Name] = value
		} else {
			params[p.Name] = match[idx]
		}
	}

	return params
}

// QueryParams returns the first non-empty value of each declared query parameter
func (r *Route) QueryParams(query url.Values) map[string]string {
	params := make(map[string]string)
	for _, p := range r.config.Parameters.QueryStrings {
		if value := query.Get(p.Name); value != "" {
			params[p.Name] = value
		}
	}
	return params
}

// MultiQueryParams returns every value of each declared query parameter
func (r *Route) MultiQueryParams(query url.Values) map[string][]string {
	params := make(map[string][]string)
	for _, p := range r.config.Parameters.QueryStrings {
		if values := query[p.Name]; len(values) > 0 {
			params[p.Name] = values
		}
	}
	return params
}
