package scooter

import "strconv"

// Config controls when the world spawns and replaces its gameplay objects.
type Config struct {
	// SpawnDelay is the number of ticks before the level objects appear.
	SpawnDelay int
	// SettingsDelay is the number of ticks after spawn before the hop's
	// late settings objects are attached.
	SettingsDelay int
	// ReloadEvery destroys and respawns the level every N ticks after the
	// first spawn. Zero disables reloads.
	ReloadEvery int
	// TPS is the tick rate the rider physics integrate against.
	TPS  int
	Seed int64
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		SpawnDelay:    30,
		SettingsDelay: 15,
		ReloadEvery:   0,
		TPS:           60,
		Seed:          1337,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["spawn_delay"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SpawnDelay = parsed
		}
	}
	if v, ok := cfg["settings_delay"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.SettingsDelay = parsed
		}
	}
	if v, ok := cfg["reload_every"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ReloadEvery = parsed
		}
	}
	if v, ok := cfg["tps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.TPS = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}
