package config

import (
	"github.com/spf13/viper"
	"time"
)

// EngineConfig holds the allocation engine tunables
type EngineConfig struct {
	CooldownSeconds      int    `mapstructure:"cooldown_seconds"`
	FraudWindowMinutes   int    `mapstructure:"fraud_window_minutes"`
	DeviceUserThreshold  int64  `mapstructure:"device_user_threshold"`
	IPUserThreshold      int64  `mapstructure:"ip_user_threshold"`
	MaxRedrawAttempts    int    `mapstructure:"max_redraw_attempts"`
	AlertIntervalMinutes int    `mapstructure:"alert_interval_minutes"`
	ConfigCacheSeconds   int    `mapstructure:"config_cache_seconds"`
	Timezone             string `mapstructure:"timezone"`

	DefaultTierName      string `mapstructure:"default_tier_name"`
	DefaultMaxDailySpins int64  `mapstructure:"default_max_daily_spins"`
	DefaultTierColor     string `mapstructure:"default_tier_color"`
}

func setEngineDefaults(vip *viper.Viper) {
	vip.SetDefault("engine.cooldown_seconds", 5)
	vip.SetDefault("engine.fraud_window_minutes", 60)
	vip.SetDefault("engine.device_user_threshold", 3)
	vip.SetDefault("engine.ip_user_threshold", 5)
	vip.SetDefault("engine.max_redraw_attempts", 5)
	vip.SetDefault("engine.alert_interval_minutes", 5)
	vip.SetDefault("engine.config_cache_seconds", 5)
	vip.SetDefault("engine.timezone", "UTC")
	vip.SetDefault("engine.default_tier_name", "standard")
	vip.SetDefault("engine.default_max_daily_spins", 1)
	vip.SetDefault("engine.default_tier_color", "#9e9e9e")
}

// Cooldown ...
func (c EngineConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownSeconds) * time.Second
}

// FraudWindow ...
func (c EngineConfig) FraudWindow() time.Duration {
	return time.Duration(c.FraudWindowMinutes) * time.Minute
}

// AlertInterval ...
func (c EngineConfig) AlertInterval() time.Duration {
	return time.Duration(c.AlertIntervalMinutes) * time.Minute
}

// Location returns the timezone used for the user-facing daily quota window
func (c EngineConfig) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		panic(err)
	}
	return loc
}
