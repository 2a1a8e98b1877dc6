package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Storage driver names accepted in storage.driver.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverMongo  = "mongo"
)

// Config holds all configuration for the application.
// The values are read by Viper from a config file or environment variables.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Storage StorageConfig `mapstructure:"storage"`
}

type ServerConfig struct {
	Address string `mapstructure:"address"`
}

// StorageConfig selects and parameterizes the storage backend. The memory
// driver needs nothing; sqlite needs a path; mongo needs a URI and database
// name. Seed controls whether an empty durable store gets the starter plan.
type StorageConfig struct {
	Driver     string `mapstructure:"driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
	MongoURI   string `mapstructure:"mongo_uri"`
	MongoDB    string `mapstructure:"mongo_db"`
	Seed       bool   `mapstructure:"seed"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Environment variables override the file, e.g.
	// storage.driver -> STORAGE_DRIVER.
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`))

	viper.SetDefault("server.address", ":8080")
	viper.SetDefault("storage.driver", DriverMemory)
	viper.SetDefault("storage.sqlite_path", "data/workouts.db")
	viper.SetDefault("storage.mongo_uri", "mongodb://localhost:27017")
	viper.SetDefault("storage.mongo_db", "workout_tracker")
	viper.SetDefault("storage.seed", true)

	err = viper.ReadInConfig()
	// A missing config file is fine; defaults and env vars carry the rest.
	if _, ok := err.(viper.ConfigFileNotFoundError); ok {
		err = nil
	} else if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
