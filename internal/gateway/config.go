package gateway

import (
	"fmt"

	"github.com/spf13/viper"
)

// RoutesFile is the layout of a routes file
type RoutesFile struct {
	Routes []RouteConfig `mapstructure:"routes"`
}

// LoadRoutes reads route definitions from a YAML or JSON file
func LoadRoutes(path string) ([]RouteConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read routes file %s: %w", path, err)
	}

	var file RoutesFile
	if err := v.Unmarshal(&file); err != nil {
		return nil, fmt.Errorf("failed to decode routes file %s: %w", path, err)
	}

	return file.Routes, nil
}
