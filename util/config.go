package util

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Environment       string        `mapstructure:"ENVIRONMENT"`
	HTTPServerAddress string        `mapstructure:"HTTP_SERVER_ADDRESS"`
	RedisAddress      string        `mapstructure:"REDIS_ADDRESS"`
	AllowedOrigins    []string      `mapstructure:"ALLOWED_ORIGINS"`
	DocumentTTL       time.Duration `mapstructure:"DOCUMENT_TTL"`
}

func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}

// ExtractHostPort parses the HTTP server address and returns the host and port components.
// If no port is specified in the URL, port will be an empty string.
func (config *Config) ExtractHostPort() (host string, port string, err error) {
	if config.HTTPServerAddress == "" {
		err = fmt.Errorf("http server address is empty")
		return
	}

	// a plain "host:port" address has no scheme, in which case url.Parse
	// either fails or leaves Host empty; fall back to the raw address then
	hostPort := config.HTTPServerAddress
	if urlStr, parseErr := url.Parse(hostPort); parseErr == nil && urlStr.Host != "" {
		hostPort = urlStr.Host
	}

	host, port, err = net.SplitHostPort(hostPort)
	if err != nil {
		// If there's no port, SplitHostPort returns an error,
		// in which case the host itself is the hostname.
		host = hostPort
		err = nil
	}

	return
}
