package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/taskboard/internal/flagx"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for decoding config files. Pointer
// fields tell "absent" apart from "zero", so a file only overrides what it
// mentions.
type FileConfig struct {
	Storage    *string         `json:"storage" yaml:"storage"`
	SQLitePath *string         `json:"sqlite_path" yaml:"sqlite_path"`
	Redis      *FileRedisBlock `json:"redis" yaml:"redis"`
	Log        *FileLogBlock   `json:"log" yaml:"log"`
}

type FileRedisBlock struct {
	Addr     *string `json:"addr" yaml:"addr"`
	Password *string `json:"password" yaml:"password"`
	DB       *int    `json:"db" yaml:"db"`
	Prefix   *string `json:"prefix" yaml:"prefix"`
}

type FileLogBlock struct {
	Level  *string `json:"level" yaml:"level"`
	Format *string `json:"format" yaml:"format"`
}

// parseFile overlays Config with values loaded from a config file.
//
// The path comes from -c or -config (flagx.ConfigFileFlag); without it the
// function returns and cfg is left unchanged. Read and decode errors panic,
// so a broken config file stops the program before anything is opened.
//
// Intended usage is: defaults -> parseFile -> parseFlags, where later stages
// override earlier ones.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	fc, err := decodeFile(path, data)
	if err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func decodeFile(path string, data []byte) (*FileConfig, error) {
	var fc FileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, err
		}
	default:
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, err
		}
	}
	return &fc, nil
}

func (fc *FileConfig) apply(cfg *Config) {
	setString(&cfg.Storage, fc.Storage)
	setString(&cfg.SQLitePath, fc.SQLitePath)
	if r := fc.Redis; r != nil {
		setString(&cfg.RedisAddr, r.Addr)
		setString(&cfg.RedisPassword, r.Password)
		if r.DB != nil {
			cfg.RedisDB = *r.DB
		}
		setString(&cfg.RedisPrefix, r.Prefix)
	}
	if l := fc.Log; l != nil {
		setString(&cfg.LogLevel, l.Level)
		setString(&cfg.LogFormat, l.Format)
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}
