package circuit

import "github.com/edp1096/spicedeck/internal/consts"

type config struct {
	ground  string
	globals []string
}

type Option func(*config)

// WithGround sets the ground node name. The default is "0".
func WithGround(name string) Option {
	return func(c *config) { c.ground = name }
}

// WithGlobalNodes declares .global nodes. Sub-circuits ignore it.
func WithGlobalNodes(nodes ...string) Option {
	return func(c *config) { c.globals = append(c.globals, nodes...) }
}

func newConfig(opts []Option) config {
	cfg := config{ground: consts.GROUND}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
