package estimate

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Document wraps an estimate together with the logging and output sections
// of an estimate file.
type Document struct {
	Estimate Estimate      `json:"estimate" yaml:"estimate"`
	Logging  LoggingConfig `json:"logging,omitempty" yaml:"logging,omitempty"`
	Output   OutputConfig  `json:"output,omitempty" yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `json:"level,omitempty" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `json:"format,omitempty" yaml:"format,omitempty"`         // json, console
	OutputFile string `json:"outputFile,omitempty" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `json:"format,omitempty" yaml:"format,omitempty"` // pretty, csv
}

// LoadDocument takes a file path as input and loads the YAML- or
// JSON-formatted estimate document there.
func LoadDocument(documentPath string) (*Document, error) {
	viper.SetConfigFile(documentPath)
	viper.AutomaticEnv()

	switch strings.ToLower(filepath.Ext(documentPath)) {
	case ".json":
		viper.SetConfigType("json")
	default:
		viper.SetConfigType("yml")
	}

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading estimate file, %s", err)
	}

	var document Document
	err := viper.Unmarshal(&document)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &document, nil
}

// LoadDocumentFromReader decodes an estimate document from a reader. YAML
// is a superset of JSON, so both formats decode through the same path.
func LoadDocumentFromReader(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading estimate data, %s", err)
	}

	var document Document
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &document, nil
}
