package host

import (
	"go.uber.org/zap"
)

// DefaultMaxStringLength bounds strings read from guest memory unless
// configured otherwise.
const DefaultMaxStringLength = 64 * 1024

type EnvironmentConfig struct {
	logger          *zap.Logger
	maxStringLength uint32
}

func NewConfig() *EnvironmentConfig {
	return &EnvironmentConfig{
		logger:          zap.NewNop(),
		maxStringLength: DefaultMaxStringLength,
	}
}

// WithLogger sets the logger failed host calls are reported to.
func (c *EnvironmentConfig) WithLogger(logger *zap.Logger) *EnvironmentConfig {
	c.logger = logger
	return c
}

// WithMaxStringLength sets the longest string a guest may pass. 0 disables
// the limit.
func (c *EnvironmentConfig) WithMaxStringLength(n uint32) *EnvironmentConfig {
	c.maxStringLength = n
	return c
}

func (c *EnvironmentConfig) GetLogger() *zap.Logger {
	return c.logger
}

func (c *EnvironmentConfig) GetMaxStringLength() uint32 {
	return c.maxStringLength
}
