package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/SAP-F-2025/workdna-service/internal/models"
	"github.com/SAP-F-2025/workdna-service/internal/scoring"
	"github.com/SAP-F-2025/workdna-service/internal/validator"
	"gopkg.in/yaml.v3"
)

var ErrConfigurationLoad = errors.New("failed to load question catalog")

// catalogFile mirrors Catalog with an optional threshold so an absent key can
// fall back to the default.
type catalogFile struct {
	PassThreshold *int                         `json:"PASS_THRESHOLD" yaml:"PASS_THRESHOLD"`
	JobProfiles   map[string]models.JobProfile `json:"JOB_PROFILES" yaml:"JOB_PROFILES"`
}

// Load reads a catalog from path. Files ending in .yaml or .yml are parsed as
// YAML, everything else as JSON. Every failure wraps ErrConfigurationLoad.
func Load(path string, v *validator.Validator) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigurationLoad, err)
	}
	return Parse(data, formatOf(path), v)
}

// Format selects the decoder used by Parse
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func formatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Parse decodes and validates catalog data
func Parse(data []byte, format Format, v *validator.Validator) (*Catalog, error) {
	var file catalogFile
	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &file)
	default:
		err = json.Unmarshal(data, &file)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s: %w", ErrConfigurationLoad, format, err)
	}

	catalog := Empty()
	if file.PassThreshold != nil {
		catalog.PassThreshold = *file.PassThreshold
	}
	if file.JobProfiles != nil {
		catalog.JobProfiles = file.JobProfiles
	}

	if err := v.Validate(catalog); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigurationLoad, err)
	}
	if err := v.Question().ValidateProfiles(catalog.JobProfiles); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfigurationLoad, err)
	}
	return catalog, nil
}

// LoadOrDefault loads path and falls back to an empty catalog when it cannot
func LoadOrDefault(path string, v *validator.Validator, logger *slog.Logger) *Catalog {
	catalog, err := Load(path, v)
	if err != nil {
		logger.Error("Question catalog unavailable, starting with no job profiles",
			"path", path,
			"pass_threshold", scoring.DefaultPassThreshold,
			"error", err)
		return Empty()
	}

	logger.Info("Question catalog loaded",
		"path", path,
		"job_profiles", catalog.Len(),
		"pass_threshold", catalog.PassThreshold)
	return catalog
}
