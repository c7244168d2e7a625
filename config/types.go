package config

import (
	"path/filepath"

	"github.com/olebedev/emitter"

	"github.com/lumenwatch/tower/pkgs/logger"
)

const (
	// ModeProd refers to production mode
	ModeProd = iota
	// ModeDev refers to development mode
	ModeDev
	// ModeTest refers to test mode
	ModeTest
)

// NodeConfig represents the node's configuration
type NodeConfig struct {

	// Mode determines the current environment type
	Mode int `json:"mode" mapstructure:"mode"`

	// Network is the chain network the tower watches
	Network string `json:"network" mapstructure:"network"`
}

// SubscriptionConfig holds the parameters applied to user subscriptions
type SubscriptionConfig struct {

	// Slots is the number of appointment slots granted per registration
	// or renewal
	Slots uint32 `json:"slots" mapstructure:"slots"`

	// Duration is the subscription lifetime in blocks, counted from the
	// block the subscription is requested at
	Duration uint32 `json:"duration" mapstructure:"duration"`

	// ExpiryDelta is the grace period, in blocks, users get to renew an
	// expired subscription before being purged
	ExpiryDelta uint32 `json:"expirydelta" mapstructure:"expirydelta"`
}

// Globals holds references to global objects that can be used
// anywhere a config is required
type Globals struct {

	// Log is the application logger
	Log logger.Logger

	// Bus is the application event emitter
	Bus *emitter.Emitter
}

// AppConfig represents the tower's configuration
type AppConfig struct {

	// Node holds the node configuration
	Node *NodeConfig `json:"node" mapstructure:"node"`

	// Subscription holds the user subscription parameters
	Subscription *SubscriptionConfig `json:"subscription" mapstructure:"subscription"`

	// dataDir is where the tower's config and data are stored
	dataDir string

	// g stores references to global objects
	g *Globals
}

// EmptyAppConfig returns an empty config object with
// its required fields initialized
func EmptyAppConfig() *AppConfig {
	return &AppConfig{
		Node:         &NodeConfig{},
		Subscription: &SubscriptionConfig{},
		g: &Globals{
			Bus: emitter.New(0),
		},
	}
}

// G returns the global objects
func (c *AppConfig) G() *Globals {
	return c.g
}

// DataDir returns the application's data directory
func (c *AppConfig) DataDir() string {
	return c.dataDir
}

// SetDataDir sets the application's data directory
func (c *AppConfig) SetDataDir(d string) {
	c.dataDir = d
}

// GetDBDir returns the path where database files are stored
func (c *AppConfig) GetDBDir() string {
	return filepath.Join(c.dataDir, "data")
}

// IsDev checks whether the current environment is 'development'
func (c *AppConfig) IsDev() bool {
	return c.Node.Mode == ModeDev
}

// IsTest checks whether the current environment is 'test'
func (c *AppConfig) IsTest() bool {
	return c.Node.Mode == ModeTest
}
