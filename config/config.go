package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig        `mapstructure:"server"`
	Database DatabaseConfig      `mapstructure:"database"`
	Redis    RedisConfig         `mapstructure:"redis"`
	JWT      JWTConfig           `mapstructure:"jwt"`
	Session  SessionConfig       `mapstructure:"session"`
	Email    EmailConfig         `mapstructure:"email"`
	CORS     CORSConfig          `mapstructure:"cors"`
	Plans    map[string]PlanSpec `mapstructure:"plans"`
	Chat     ChatConfig          `mapstructure:"chat"`
}

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Host         string `mapstructure:"host"`
	Port         int    `mapstructure:"port"`
	Username     string `mapstructure:"username"`
	Password     string `mapstructure:"password"`
	Database     string `mapstructure:"database"`
	MaxIdleConns int    `mapstructure:"max_idle_conns"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type SessionConfig struct {
	TTLHours int `mapstructure:"ttl_hours"`
}

type EmailConfig struct {
	SMTPHost string `mapstructure:"smtp_host"`
	SMTPPort int    `mapstructure:"smtp_port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	AllowedMethods []string `mapstructure:"allowed_methods"`
	AllowedHeaders []string `mapstructure:"allowed_headers"`
}

// PlanSpec 套餐规格（message_limit 为 -1 表示不限量）
type PlanSpec struct {
	MessageLimit int     `mapstructure:"message_limit"`
	Price        float64 `mapstructure:"price"`
	DisplayName  string  `mapstructure:"display_name"`
}

type ChatConfig struct {
	ReplyDelayMS int `mapstructure:"reply_delay_ms"` // 模拟机器人回复延迟
	HistoryLimit int `mapstructure:"history_limit"`
}

// ReplyDelay 机器人回复延迟
func (c ChatConfig) ReplyDelay() time.Duration {
	return time.Duration(c.ReplyDelayMS) * time.Millisecond
}

// TTL 会话快照有效期
func (c SessionConfig) TTL() time.Duration {
	if c.TTLHours <= 0 {
		return 24 * time.Hour
	}
	return time.Duration(c.TTLHours) * time.Hour
}

// DefaultPlans 内置套餐表，config 未配置时使用
func DefaultPlans() map[string]PlanSpec {
	return map[string]PlanSpec{
		"free":       {MessageLimit: 10, Price: 0, DisplayName: "Free"},
		"individual": {MessageLimit: 15, Price: 9.99, DisplayName: "Individual"},
		"group":      {MessageLimit: 30, Price: 29.99, DisplayName: "Group"},
		"lifetime":   {MessageLimit: -1, Price: 299, DisplayName: "Lifetime"},
	}
}

func Load(configPath string) (*Config, error) {
	// 优先尝试读取 config.local.yaml（包含真实密钥，不提交到git）
	dir := filepath.Dir(configPath)
	localConfigPath := filepath.Join(dir, "config.local.yaml")

	// 检查 config.local.yaml 是否存在
	if _, err := os.Stat(localConfigPath); err == nil {
		configPath = localConfigPath
	}

	viper.SetConfigFile(configPath)
	viper.SetConfigType("yaml")

	// 环境变量覆盖
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if len(cfg.Plans) == 0 {
		cfg.Plans = DefaultPlans()
	}

	return &cfg, nil
}
