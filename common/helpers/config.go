package helpers

import (
	"gopkg.in/yaml.v2"
	"io/ioutil"
	"log"
	"time"
)

type RedisConfig struct {
	Address  string `yaml:"address"`
	Password string `yaml:"password"`
	DBNum    int    `yaml:"dbNum"`
}

type ServerConfig struct {
	ListenAddress   string `yaml:"listen"`
	SnapshotExpiry  int    `yaml:"snapshotExpirySeconds"` //0 means keep media snapshots forever
	MaxPayloadBytes int64  `yaml:"maxPayloadBytes"`
}

type Config struct {
	Redis  RedisConfig  `yaml:"redis"`
	Server ServerConfig `yaml:"server"`
}

const (
	defaultListenAddress   = ":9000"
	defaultMaxPayloadBytes = 10 * 1024 * 1024
)

func (c *Config) SnapshotExpiryDuration() time.Duration {
	return time.Duration(c.Server.SnapshotExpiry) * time.Second
}

func ParseConfig(configBytes []byte) (*Config, error) {
	var conf Config

	err := yaml.Unmarshal(configBytes, &conf)
	if err != nil {
		return nil, err
	}
	if conf.Server.ListenAddress == "" {
		conf.Server.ListenAddress = defaultListenAddress
	}
	if conf.Server.MaxPayloadBytes <= 0 {
		conf.Server.MaxPayloadBytes = defaultMaxPayloadBytes
	}
	if conf.Server.SnapshotExpiry < 0 {
		log.Printf("WARNING: negative snapshot expiry %d in config, snapshots will not expire", conf.Server.SnapshotExpiry)
		conf.Server.SnapshotExpiry = 0
	}
	return &conf, nil
}

func ReadConfig(configFile string) (*Config, error) {
	configBytes, readErr := ioutil.ReadFile(configFile)
	if readErr != nil {
		log.Printf("Could not read config from '%s': %s\n", configFile, readErr)
		return nil, readErr
	}

	conf, err := ParseConfig(configBytes)
	if err != nil {
		log.Printf("Could not understand config from '%s': %s\n", configFile, err)
		return nil, err
	}
	return conf, nil
}
