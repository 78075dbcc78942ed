package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var ErrMissingEnvironmentVariables = errors.New("faltan variables de entorno requeridas")

// Config configuración de la aplicación cargada desde archivo y variables de entorno
type Config struct {
	Env       string  `mapstructure:"env"`        // entorno actual (local, dev, prod)
	HTTPAddr  string  `mapstructure:"http_addr"`  // dirección del servidor HTTP
	UploadDir string  `mapstructure:"upload_dir"` // directorio para materiales subidos
	Redis     Redis   `mapstructure:"redis"`
	DB        DB      `mapstructure:"database"`
	Session   Session `mapstructure:"session"`
}

// Redis configuración de la conexión a Redis
type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"-"` // cargada desde el entorno
	DB       int    `mapstructure:"db"`
}

// DB configuración de la conexión a PostgreSQL
type DB struct {
	URL             string        `mapstructure:"-"` // cadena de conexión cargada desde el entorno
	MaxConnections  int           `mapstructure:"max_connections"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
}

// Session configuración de las sesiones de quiz
type Session struct {
	TTL time.Duration `mapstructure:"ttl"` // tiempo de vida de una sesión en Redis
}

// DSN retorna la cadena de conexión a la base de datos si está configurada
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load lee la configuración desde archivo y variables de entorno
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Valores por defecto
	v.SetDefault("env", "local")
	v.SetDefault("http_addr", ":8080")
	v.SetDefault("upload_dir", "uploads")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("session.ttl", "24h")

	// Mapear claves anidadas a nombres de variables de entorno
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("redis_password", "REDIS_PASSWORD")
	_ = v.BindEnv("env", "APP_ENV")

	// El archivo de configuración es opcional
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error leyendo archivo de configuración: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error deserializando configuración: %w", err)
	}

	// Valores sensibles sólo desde el entorno
	cfg.DB.URL = v.GetString("database_url")
	if cfg.DB.URL == "" {
		return nil, ErrMissingEnvironmentVariables
	}
	cfg.Redis.Password = v.GetString("redis_password")

	return &cfg, nil
}
