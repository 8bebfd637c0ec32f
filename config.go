package main

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	defaultEnvFile = ".env"

	credentialsKey = "GOOGLE_APPLICATION_CREDENTIALS"
	projectIDKey   = "PROJECT_ID"
	endpointKey    = "STORAGE_ENDPOINT"
	debugKey       = "DEBUG"
)

type userData struct {
	configFile      *viper.Viper
	credentialsFile string
	projectID       string
	endpoint        string
	debug           bool
}

// loadEnvironment exports the keys of a dotenv style file into the process
// environment. Variables already present in the environment are left alone.
// A missing file falls back to the process environment; a malformed one is
// a configuration error.
func loadEnvironment(v *viper.Viper, envFile string) error {
	v.SetConfigFile(envFile)
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.WithFields(logrus.Fields{"file": envFile}).Debug("no env file found, using process environment")
			return nil
		}
		return newConfigError("unable to parse env file "+envFile, err)
	}

	for _, key := range v.AllKeys() {
		name := strings.ToUpper(key)
		if val, ok := os.LookupEnv(name); ok && val != "" {
			log.WithFields(logrus.Fields{"key": name}).Debug("already set in environment, skipping")
			continue
		}
		if err := os.Setenv(name, v.GetString(key)); err != nil {
			return newConfigError("unable to export "+name, err)
		}
	}

	log.WithFields(logrus.Fields{"file": envFile, "keys": len(v.AllKeys())}).Debug("loaded env file")
	return nil
}

func parseConfig(envFile string) (*userData, error) {
	v := viper.New()

	if err := loadEnvironment(v, envFile); err != nil {
		return nil, err
	}

	v.AutomaticEnv()

	return &userData{
		configFile:      v,
		credentialsFile: v.GetString(credentialsKey),
		projectID:       v.GetString(projectIDKey),
		endpoint:        v.GetString(endpointKey),
		debug:           v.GetBool(debugKey),
	}, nil
}
