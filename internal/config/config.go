package config

import (
	"encoding/json"
	"os"
)

type Config struct {
	InputPath  string `json:"input_path"`
	OutputCSV  string `json:"output_csv"`
	OutputXLSX string `json:"output_xlsx"`
	Theme      string `json:"theme"`
	LogFile    string `json:"log_file"`
	LogLevel   string `json:"log_level"`
}

// LoadConfig loads a JSON config from the given path. If path is empty, looks
// for ./config.json. A missing file is not fatal: defaults are returned.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = "config.json"
	}
	f, err := os.Open(path)
	if err != nil {
		// not fatal: return defaults
		return &Config{}, nil
	}
	defer f.Close()
	var c Config
	dec := json.NewDecoder(f)
	if err := dec.Decode(&c); err != nil {
		return nil, err
	}
	return &c, nil
}
