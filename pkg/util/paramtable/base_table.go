// Licensed to the Strata project under one or more contributor
// license agreements. See the NOTICE file distributed with
// this work for additional information regarding copyright
// ownership. The Strata project licenses this file to you under
// the Apache License, Version 2.0 (the "License"); you may
// not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package paramtable centralizes runtime configuration. Values resolve from
// the yaml config file, overridden by STRATA_* environment variables,
// overridden by explicit Save calls.
package paramtable

import (
	"os"
	"path"
	"runtime"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/strata-db/strata/pkg/log"
)

const (
	defaultYamlName = "strata"
	envPrefix       = "strata"
	// config directory override
	configDirEnvKey = "STRATACONF"
)

var errKeyNotFound = errors.New("key not found")

// BaseTable is the flat key/value view over all configuration sources.
type BaseTable struct {
	mu sync.RWMutex
	v  *viper.Viper

	configDir string
}

func (gp *BaseTable) init() {
	gp.v = viper.New()
	gp.configDir = gp.initConfPath()

	gp.v.SetConfigName(defaultYamlName)
	gp.v.SetConfigType("yaml")
	gp.v.AddConfigPath(gp.configDir)
	gp.v.SetEnvPrefix(envPrefix)
	gp.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	gp.v.AutomaticEnv()

	if err := gp.v.ReadInConfig(); err != nil {
		log.Warn("failed to read config file, defaults only",
			zap.String("configDir", gp.configDir), zap.Error(err))
	}
}

// GetConfigDir returns the config directory
func (gp *BaseTable) GetConfigDir() string {
	return gp.configDir
}

func (gp *BaseTable) initConfPath() string {
	// check if user set conf dir through env
	configDir := os.Getenv(configDirEnvKey)
	if configDir != "" {
		return configDir
	}

	runPath, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	configDir = runPath + "/configs"
	if _, err := os.Stat(configDir); err != nil {
		_, fpath, _, _ := runtime.Caller(0)
		configDir = path.Dir(fpath) + "/../../../configs"
	}
	return configDir
}

// Load loads an object with @key.
func (gp *BaseTable) Load(key string) (string, error) {
	gp.mu.RLock()
	defer gp.mu.RUnlock()
	if v := gp.v.Get(key); v != nil {
		return cast.ToString(v), nil
	}
	return "", errors.Wrapf(errKeyNotFound, "key=%s", key)
}

func (gp *BaseTable) Get(key string) string {
	return gp.GetWithDefault(key, "")
}

// GetWithDefault loads an object with @key. If the object does not exist,
// @defaultValue will be returned.
func (gp *BaseTable) GetWithDefault(key, defaultValue string) string {
	str, err := gp.Load(key)
	if err != nil {
		return defaultValue
	}
	return str
}

// Save sets an override for @key, shadowing file and environment values.
func (gp *BaseTable) Save(key, value string) error {
	gp.mu.Lock()
	defer gp.mu.Unlock()
	gp.v.Set(key, value)
	return nil
}
