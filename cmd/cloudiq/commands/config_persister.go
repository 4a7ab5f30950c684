package commands

import (
	"sync"
	"time"
)

// ConfigPersister saves refreshed tokens into the CLI config file so later
// invocations reuse them. It implements the auth.ConfigPersister interface.
type ConfigPersister struct {
	mutex sync.Mutex
}

// NewConfigPersister creates a new config persister.
func NewConfigPersister() *ConfigPersister {
	return &ConfigPersister{}
}

// UpdateToken stores the token and its expiry in the config file.
func (p *ConfigPersister) UpdateToken(endpoint, token string, expiresAt time.Time) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	config := loadConfig()
	config.Endpoint = endpoint
	config.Token = token

	if expiresAt.IsZero() {
		config.TokenExpiresAt = nil
	} else {
		expiry := expiresAt
		config.TokenExpiresAt = &expiry
	}

	return saveConfig(config)
}
