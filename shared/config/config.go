package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

const (
	DriverPg     = "pg"
	DriverMemory = "memory"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	HttpPort       string        `yaml:"http_port"`
	RequestTimeout time.Duration `yaml:"request_timeout"` // seconds
	JwtTTL         time.Duration `yaml:"jwt_ttl" validate:"required"` // seconds
	LogLevel       string        `yaml:"log_level"`
	LogJSON        bool          `yaml:"log_json"`
	AllowedOrigins []string      `yaml:"allowed_origins"`
	SecureCookies  bool          `yaml:"secure_cookies"`
	Storage        Storage       `yaml:"storage"`
	// per user token bucket for mutations
	MutationRPS   float64 `yaml:"mutation_rps"`
	MutationBurst float64 `yaml:"mutation_burst"`
}

type Storage struct {
	Driver string `yaml:"driver" validate:"omitempty,oneof=pg memory"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key" validate:"required"`
	Pg     Pg     `yaml:"pg"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return s.Public.JwtTTL * time.Second
}

func (s *Config) RequestTimeout() time.Duration {
	return s.Public.RequestTimeout * time.Second
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err = yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}

	if err = validator.New().Struct(output); err != nil {
		panic(fmt.Sprintf("invalid config %s: %s", configPath, err))
	}
}

func (p *Public) setDefaults() {
	if p.HttpPort == "" {
		p.HttpPort = "8080"
	}
	if p.RequestTimeout == 0 {
		p.RequestTimeout = 5
	}
	if p.LogLevel == "" {
		p.LogLevel = "info"
	}
	if p.Storage.Driver == "" {
		p.Storage.Driver = DriverPg
	}
	if p.MutationRPS == 0 {
		p.MutationRPS = 1
	}
	if p.MutationBurst == 0 {
		p.MutationBurst = 5
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)
	public.setDefaults()

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	if port := os.Getenv("PORT"); port != "" {
		public.HttpPort = port
	}

	return &Config{Public: public, Private: private}
}
