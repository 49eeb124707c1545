package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// EnvConfig overrides the config file location.
	EnvConfig = "TFD_CONFIG"
	// EnvBackend forces a Unix tool (same values as unix.force).
	EnvBackend = "TFD_BACKEND"
	// EnvLogLevel overrides log.level.
	EnvLogLevel = "TFD_LOG_LEVEL"
)

// LoadResult carries the effective config and the file it came from.
type LoadResult struct {
	Config *Config
	File   string // empty when defaults were used
}

// DefaultConfigPath returns $TFD_CONFIG or ~/.config/tfd/config.yaml.
func DefaultConfigPath() (string, error) {
	if p := strings.TrimSpace(os.Getenv(EnvConfig)); p != "" {
		return p, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "tfd", "config.yaml"), nil
}

// Load reads the configuration from the standard location.
func Load() (*Config, error) {
	res, err := LoadWithSource()
	if err != nil {
		return nil, err
	}
	return res.Config, nil
}

// LoadWithSource is Load plus the path that was read.
func LoadWithSource() (*LoadResult, error) {
	path, err := DefaultConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads path over the defaults. A missing file is not an error.
// Environment overrides are applied last.
func LoadFromPath(path string) (*LoadResult, error) {
	cfg := DefaultConfig()
	res := &LoadResult{Config: cfg}

	exists, err := pathExists(path)
	if err != nil {
		return nil, err
	}

	var doc *yaml.Node
	if exists {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to read: %w", path, err)
		}
		doc, err = decodeInto(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		res.File = path
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, attachPosition(err, doc, res.File)
	}
	return res, nil
}

// Parse decodes a YAML document over the defaults without touching the
// environment.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	doc, err := decodeInto(data, cfg)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, attachPosition(err, doc, "")
	}
	return cfg, nil
}

func decodeInto(data []byte, cfg *Config) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse: %w", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("failed to parse: %w", err)
	}
	return &doc, nil
}

func applyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv(EnvBackend)); v != "" {
		cfg.Unix.Force = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Log.Level = v
	}
}

// Marshal renders cfg as YAML.
func Marshal(cfg *Config) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return buf.Bytes(), nil
}

func attachPosition(err error, doc *yaml.Node, file string) error {
	var ve *ValidationError
	if !errors.As(err, &ve) || doc == nil {
		return err
	}
	if node := lookupNode(doc, ve.Path); node != nil {
		ve.File = file
		ve.Line = node.Line
		ve.Column = node.Column
	}
	return ve
}

// lookupNode resolves a dotted path with optional [i] indices, such as
// "unix.tools[1]".
func lookupNode(doc *yaml.Node, path string) *yaml.Node {
	node := doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	for _, part := range strings.Split(path, ".") {
		key, index := part, -1
		if open := strings.Index(part, "["); open >= 0 && strings.HasSuffix(part, "]") {
			key = part[:open]
			n, err := strconv.Atoi(part[open+1 : len(part)-1])
			if err != nil {
				return nil
			}
			index = n
		}
		node = mappingValue(node, key)
		if node == nil {
			return nil
		}
		if index >= 0 {
			if node.Kind != yaml.SequenceNode || index >= len(node.Content) {
				return nil
			}
			node = node.Content[index]
		}
	}
	return node
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
