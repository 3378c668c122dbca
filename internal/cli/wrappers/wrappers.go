package wrappers

import "github.com/danieljhkim/hms-sandbox/internal/config"

// ConfigGetter is a function that returns the resolved configuration
type ConfigGetter func() *config.Config
