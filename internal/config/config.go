package config

import (
	"fmt"
	"time"
)

// Config 应用配置结构
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Redis    RedisConfig    `mapstructure:"redis_service"`
	Token    TokenConfig    `mapstructure:"token"`
	User     UserConfig     `mapstructure:"user"`
	Admin    AdminConfig    `mapstructure:"admin"`
	Upload   UploadConfig   `mapstructure:"upload"`
	CORS     CORSConfig     `mapstructure:"cors"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	ProductionMode bool   `mapstructure:"production_mode"`
}

// GetAddress 获取服务器地址
func (s *ServerConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// DatabaseConfig 数据库配置
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// RedisConfig Redis配置
type RedisConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	DB            int    `mapstructure:"db"`
	Password      string `mapstructure:"password"`
	LoginAttempts int    `mapstructure:"login_attempts"`
	LoginWindow   int    `mapstructure:"login_window"`
}

// GetAddress 获取Redis地址
func (r *RedisConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Enabled Redis是否启用(未配置host时登录限流自动关闭)
func (r *RedisConfig) Enabled() bool {
	return r.Host != ""
}

// GetLoginWindow 获取登录限流窗口时长
func (r *RedisConfig) GetLoginWindow() time.Duration {
	return time.Duration(r.LoginWindow) * time.Second
}

// TokenConfig 令牌配置
type TokenConfig struct {
	ExpireHours int `mapstructure:"expire_hours"`
}

// GetExpireDuration 获取令牌过期时间(0表示永不过期)
func (t *TokenConfig) GetExpireDuration() time.Duration {
	return time.Duration(t.ExpireHours) * time.Hour
}

// UserConfig 用户规则配置
type UserConfig struct {
	MinPasswordLength int `mapstructure:"min_password_length"`
}

// AdminConfig 超级用户引导配置
type AdminConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

// UploadConfig 上传配置
type UploadConfig struct {
	Root      string `mapstructure:"root"`
	MaxSizeMB int    `mapstructure:"max_size_mb"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	Origins          []string `mapstructure:"origins"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	AllowMethods     []string `mapstructure:"allow_methods"`
	AllowHeaders     []string `mapstructure:"allow_headers"`
}
