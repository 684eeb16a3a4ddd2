package gateway

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"serverless-examples/internal/middleware"
)

// Options configures the local gateway
type Options struct {
	// FormatJSON pretty prints JSON response bodies
	FormatJSON bool
	// InvokeTimeout bounds calls to emulator targets
	InvokeTimeout time.Duration
}

// Gateway serves HTTP requests by invoking functions with proxy events
type Gateway struct {
	router    *Router
	functions map[string]Invoker
	invokers  map[*Route]Invoker
	options   Options
	logger    logrus.FieldLogger
}

// New creates a gateway. functions resolves routes that name an in-process function.
func New(routes []RouteConfig, functions map[string]Invoker, options Options, logger logrus.FieldLogger) (*Gateway, error) {
	if options.InvokeTimeout <= 0 {
		options.InvokeTimeout = 30 * time.Second
	}

	g := &Gateway{
		router:    NewRouter(),
		functions: functions,
		invokers:  make(map[*Route]Invoker),
		options:   options,
		logger:    logger,
	}

	for _, rc := range routes {
		route, err := g.router.Add(rc)
		if err != nil {
			return nil, err
		}

		invoker, err := g.invokerFor(route)
		if err != nil {
			return nil, err
		}
		g.invokers[route] = invoker

		logger.WithFields(logrus.Fields{
			"method": route.Config().Method,
			"path":   route.Config().Path,
		}).Info("API Gateway route added")
	}

	return g, nil
}

func (g *Gateway) invokerFor(route *Route) (Invoker, error) {
	cfg := route.Config()
	if cfg.Target != "" {
		return NewEmulatorInvoker(cfg.Target, g.options.InvokeTimeout), nil
	}
	invoker, ok := g.functions[cfg.Function]
	if !ok {
		return nil, fmt.Errorf("route %s %s names unknown function %q", cfg.Method, cfg.Path, cfg.Function)
	}
	return invoker, nil
}

// HasRoutes reports whether any route is registered
func (g *Gateway) HasRoutes() bool {
	return g.router.HasRoutes()
}

// Engine builds the gin engine serving every route
func (g *Gateway) Engine() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.StructuredLogger(g.logger))
	engine.Use(middleware.CORS(g.routed))
	engine.NoRoute(g.handle)
	return engine
}

// routed reports whether a declared route serves req
func (g *Gateway) routed(req *http.Request) bool {
	return g.router.Find(req.Method, req.URL.EscapedPath()) != nil
}

func (g *Gateway) handle(c *gin.Context) {
	route := g.router.Find(c.Request.Method, c.Request.URL.EscapedPath())
	if route == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
		return
	}

	if errs := route.Validate(c.Request); len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"errors": errs})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to read request body"})
		return
	}

	event := NewProxyEvent(route, c.Request, body, c.GetString(middleware.RequestIDKey))

	output, err := g.invokers[route].Invoke(c.Request.Context(), event)
	if err != nil {
		g.logger.WithError(err).WithField("path", route.Config().Path).Error("Invocation failed")
		c.JSON(http.StatusBadGateway, gin.H{"message": "Function invocation failed"})
		return
	}

	resp := TranslateOutput(output)
	respBody, err := ResponseBody(resp)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Function returned an undecodable body"})
		return
	}
	if g.options.FormatJSON {
		respBody = FormatJSON(respBody)
	}

	for name, value := range resp.Headers {
		c.Header(name, value)
	}
	for name, values := range resp.MultiValueHeaders {
		for _, value := range values {
			c.Writer.Header().Add(name, value)
		}
	}

	contentType := c.Writer.Header().Get("Content-Type")
	c.Data(resp.StatusCode, contentType, respBody)
}
