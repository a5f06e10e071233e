package detect

import "testing"

func TestDefaultConfig_IsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("default config must validate, got: %v", err)
	}
}

func TestConfigValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"visibility above one", func(c *Config) { c.MinVisibility = 1.5 }},
		{"negative visibility", func(c *Config) { c.MinVisibility = -0.1 }},
		{"min duration above max", func(c *Config) { c.MinServeDuration = 10; c.MaxServeDuration = 5 }},
		{"negative min duration", func(c *Config) { c.MinServeDuration = -1 }},
		{"negative buffer", func(c *Config) { c.BufferSeconds = -0.5 }},
		{"negative cooldown", func(c *Config) { c.CooldownFrames = -1 }},
		{"negative gap", func(c *Config) { c.MinGapSeconds = -2 }},
		{"confidence above one", func(c *Config) { c.ConfidenceThreshold = 1.2 }},
		{"zero half window", func(c *Config) { c.HalfWindow = 0 }},
		{"zero peak window", func(c *Config) { c.PeakWindow = 0 }},
		{"negative peak tolerance", func(c *Config) { c.PeakTolerance = -3 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MinServeDuration = 20 // above max

	if _, err := New(cfg); err == nil {
		t.Error("expected New to fail fast on invalid config")
	}
}
