package main

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"serverless-examples/internal/config"
	"serverless-examples/internal/gateway"
	"serverless-examples/internal/handlers"
	"serverless-examples/pkg/lambda"
)

var (
	routesFile    string
	port          int
	formatJSON    bool
	invokeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the routes of a routes file",
	Long: `
	Translates HTTP requests into API Gateway proxy events and invokes either a runtime
	interface emulator (route target) or one of the bundled functions (route function).
	`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		logger, err := config.NewLogger(cfg.Logging)
		if err != nil {
			return err
		}

		routes, err := gateway.LoadRoutes(routesFile)
		if err != nil {
			return err
		}

		g, err := gateway.New(routes, bundledFunctions(logger), gateway.Options{
			FormatJSON:    formatJSON,
			InvokeTimeout: invokeTimeout,
		}, logger)
		if err != nil {
			return err
		}
		if !g.HasRoutes() {
			logger.WithField("routes", routesFile).Warn("No routes configured")
		}

		gin.SetMode(gin.ReleaseMode)
		addr := fmt.Sprintf(":%d", port)
		logger.WithField("addr", addr).Info("Local gateway listening")
		return g.Engine().Run(addr)
	},
}

// bundledFunctions are the proxy handlers a route can name instead of a target
func bundledFunctions(logger logrus.FieldLogger) map[string]gateway.Invoker {
	h := handlers.NewHTTPHandler(logger)
	return map[string]gateway.Invoker{
		"hello":    gateway.NewHandlerInvoker(lambda.Proxy(h.Hello)),
		"name":     gateway.NewHandlerInvoker(lambda.Proxy(h.Name)),
		"paths":    gateway.NewHandlerInvoker(lambda.Proxy(h.Paths)),
		"jsonbody": gateway.NewHandlerInvoker(lambda.Proxy(h.JSONBody)),
	}
}

func init() {
	serveCmd.Flags().StringVar(&routesFile, "routes", "routes.yaml", "routes file (YAML or JSON)")
	serveCmd.Flags().IntVar(&port, "port", 3000, "port to listen on")
	serveCmd.Flags().BoolVar(&formatJSON, "format", false, "pretty print JSON response bodies")
	serveCmd.Flags().DurationVar(&invokeTimeout, "timeout", 30*time.Second, "emulator invocation timeout")
}
