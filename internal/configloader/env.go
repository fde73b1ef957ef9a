package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gomdcore/pkg/config"
)

// envVarPrefix is the prefix for all gomdcore environment variables.
const envVarPrefix = "GOMDCORE_"

// envFieldType represents the type of a configuration field.
type envFieldType int

const (
	envTypeString envFieldType = iota
	envTypeBool
	envTypeInt
	envTypeSlice
)

// envMapping defines environment variable to config field mappings.
type envMapping struct {
	field string
	typ   envFieldType
}

// envMappings maps environment variable names (without prefix) to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envMappings = map[string]envMapping{
	"TAB_SIZE":             {field: "tab_size", typ: envTypeInt},
	"MAX_NESTING_DEPTH":    {field: "max_nesting_depth", typ: envTypeInt},
	"OUT_DIR":              {field: "out_dir", typ: envTypeString},
	"IGNORE":               {field: "ignore", typ: envTypeSlice},
	"AUTO_DETECT_LANGUAGE": {field: "auto_detect_language", typ: envTypeBool},
	"JOBS":                 {field: "jobs", typ: envTypeInt},
	"RECURSIVE":            {field: "recursive", typ: envTypeBool},
	"COLOR":                {field: "color", typ: envTypeBool},
	"FORMAT":               {field: "format", typ: envTypeString},
}

// LoadFromEnv applies environment variable overrides to the configuration.
// Environment variables are prefixed with GOMDCORE_ (e.g., GOMDCORE_OUT_DIR).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	for envSuffix, mapping := range envMappings {
		envVar := envVarPrefix + envSuffix
		value := os.Getenv(envVar)
		if value == "" {
			continue
		}

		if err := applyEnvValue(cfg, mapping, value, envVar); err != nil {
			return err
		}
	}

	return nil
}

// applyEnvValue applies a single environment variable value to the config.
func applyEnvValue(cfg *config.Config, mapping envMapping, value, envVar string) error {
	switch mapping.typ {
	case envTypeString:
		return setStringField(cfg, mapping.field, value)
	case envTypeBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid boolean for %s: %q (expected true/false/1/0)", envVar, value)
		}
		return setBoolField(cfg, mapping.field, b)
	case envTypeInt:
		i, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer for %s: %q", envVar, value)
		}
		return setIntField(cfg, mapping.field, i)
	case envTypeSlice:
		parts := parseSliceValue(value)
		return setSliceField(cfg, mapping.field, parts)
	default:
		return fmt.Errorf("unknown field type for %s", envVar)
	}
}

// parseSliceValue parses a comma-separated string into a slice.
// Each element is trimmed of whitespace.
func parseSliceValue(value string) []string {
	if value == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// setStringField sets a string field on the config by field path.
func setStringField(cfg *config.Config, field, value string) error {
	switch field {
	case "out_dir":
		cfg.OutDir = value
	case "format":
		cfg.Format = config.OutputFormat(value)
	default:
		return fmt.Errorf("unknown string field: %s", field)
	}
	return nil
}

// setBoolField sets a boolean field on the config by field path.
func setBoolField(cfg *config.Config, field string, value bool) error {
	switch field {
	case "auto_detect_language":
		cfg.AutoDetectLanguage = value
	case "recursive":
		cfg.Recursive = value
	case "color":
		cfg.Color = value
	default:
		return fmt.Errorf("unknown boolean field: %s", field)
	}
	return nil
}

// setIntField sets an integer field on the config by field path.
func setIntField(cfg *config.Config, field string, value int) error {
	switch field {
	case "tab_size":
		cfg.TabSize = value
	case "max_nesting_depth":
		cfg.MaxNestingDepth = value
	case "jobs":
		cfg.Jobs = value
	default:
		return fmt.Errorf("unknown integer field: %s", field)
	}
	return nil
}

// setSliceField sets a slice field on the config by field path.
func setSliceField(cfg *config.Config, field string, value []string) error {
	switch field {
	case "ignore":
		cfg.Ignore = value
	default:
		return fmt.Errorf("unknown slice field: %s", field)
	}
	return nil
}

// GetEnvVarName returns the full environment variable name for a config field.
func GetEnvVarName(field string) string {
	for suffix, mapping := range envMappings {
		if mapping.field == field {
			return envVarPrefix + suffix
		}
	}
	return ""
}

// ListEnvVars returns a list of all supported environment variables with their descriptions.
func ListEnvVars() map[string]string {
	return map[string]string{
		"GOMDCORE_TAB_SIZE":             "Tab expansion width in columns",
		"GOMDCORE_MAX_NESTING_DEPTH":    "Maximum block/list nesting depth",
		"GOMDCORE_OUT_DIR":              "Output directory for rendered HTML",
		"GOMDCORE_IGNORE":               "Comma-separated list of ignore patterns",
		"GOMDCORE_AUTO_DETECT_LANGUAGE": "Auto-detect languages of code blocks without a tag: true or false",
		"GOMDCORE_JOBS":                 "Number of parallel workers (0 = auto)",
		"GOMDCORE_RECURSIVE":            "Recorded in the config only; directories are always walked recursively",
		"GOMDCORE_COLOR":                "Colorize terminal output: true or false",
		"GOMDCORE_FORMAT":               "Diagnostic output format: text or json (validated, not read; output is always text)",
	}
}
