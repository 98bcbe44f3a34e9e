package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// 支持的数据库驱动
const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config 全局配置结构
// 设计说明：使用Viper管理配置，支持YAML文件、环境变量覆盖
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Tracing  TracingConfig  `mapstructure:"tracing"`
	Metrics  MetricsConfig  `mapstructure:"metrics"`
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Mode            string        `mapstructure:"mode"` // debug | release | test
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// Addr 监听地址
func (s ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"` // mysql | postgres | sqlite
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	DBName          string        `mapstructure:"dbname"`
	Charset         string        `mapstructure:"charset"`
	ParseTime       bool          `mapstructure:"parse_time"`
	Loc             string        `mapstructure:"loc"`
	SSLMode         string        `mapstructure:"sslmode"`
	Path            string        `mapstructure:"path"` // sqlite文件路径或DSN
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
}

// DSN 按驱动生成连接字符串
//
// mysql:    user:password@tcp(host:port)/dbname?charset=utf8mb4&parseTime=True&loc=Local
// postgres: host=... port=... user=... password=... dbname=... sslmode=disable TimeZone=...
// sqlite:   原样返回path，外键约束由persistence层开启
//
// 注意：mysql的loc参数需要URL编码（Asia/Shanghai → Asia%2FShanghai）
func (d DatabaseConfig) DSN() string {
	switch d.Driver {
	case DriverPostgres:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
		if d.Loc != "" {
			dsn += " TimeZone=" + d.Loc
		}
		return dsn
	case DriverSQLite:
		return d.Path
	default:
		loc := url.QueryEscape(d.Loc)
		return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=%s",
			d.User, d.Password, d.Host, d.Port, d.DBName, d.Charset, d.ParseTime, loc)
	}
}

type LogConfig struct {
	Level        string `mapstructure:"level"`  // debug | info | warn | error
	Format       string `mapstructure:"format"` // console | json
	Output       string `mapstructure:"output"` // stdout | stderr | /path/to/file
	EnableCaller bool   `mapstructure:"enable_caller"`
}

type TracingConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	ServiceName string  `mapstructure:"service_name"`
	Endpoint    string  `mapstructure:"endpoint"` // OTLP gRPC，如 localhost:4317
	SampleRatio float64 `mapstructure:"sample_ratio"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load 加载配置文件
// 支持：
// 1. 默认加载config/config.yaml，文件不存在时使用默认值
// 2. 通过环境变量BOOKSTORE_ENV指定环境（如config.prod.yaml）
// 3. 环境变量覆盖（如BOOKSTORE_DATABASE_PASSWORD）
func Load() (*Config, error) {
	return LoadFrom("./config", ".")
}

// LoadFrom 从指定目录加载配置
func LoadFrom(paths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// 环境特定配置（如config.prod.yaml）
	if env := os.Getenv("BOOKSTORE_ENV"); env != "" {
		v.SetConfigName("config." + env)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	// 环境变量绑定（BOOKSTORE_DATABASE_PASSWORD → database.password）
	v.SetEnvPrefix("BOOKSTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults 默认值
// AutomaticEnv只对viper已知的key生效，所以每个可覆盖的key都要有默认值
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.read_timeout", 10*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("server.shutdown_timeout", 5*time.Second)

	v.SetDefault("database.driver", DriverMySQL)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.dbname", "bookshelf")
	v.SetDefault("database.charset", "utf8mb4")
	v.SetDefault("database.parse_time", true)
	v.SetDefault("database.loc", "Local")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.path", "bookshelf.db")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.enable_caller", true)

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "bookshelf-api")
	v.SetDefault("tracing.endpoint", "localhost:4317")
	v.SetDefault("tracing.sample_ratio", 1.0)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}

// validate 配置校验
func validate(cfg *Config) error {
	if cfg.Server.Port <= 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("无效的服务端口: %d", cfg.Server.Port)
	}

	switch cfg.Database.Driver {
	case DriverMySQL, DriverPostgres:
		if cfg.Database.Host == "" || cfg.Database.DBName == "" {
			return fmt.Errorf("%s驱动需要配置host和dbname", cfg.Database.Driver)
		}
	case DriverSQLite:
		if cfg.Database.Path == "" {
			return fmt.Errorf("sqlite驱动需要配置path")
		}
	default:
		return fmt.Errorf("不支持的数据库驱动: %s", cfg.Database.Driver)
	}

	if cfg.Tracing.Enabled && cfg.Tracing.Endpoint == "" {
		return fmt.Errorf("启用链路追踪时必须配置tracing.endpoint")
	}

	if cfg.Metrics.Enabled && !strings.HasPrefix(cfg.Metrics.Path, "/") {
		return fmt.Errorf("无效的指标路径: %s", cfg.Metrics.Path)
	}

	return nil
}
