package configloader

import "github.com/yaklabco/gomdcore/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := *base

	if override.TabSize != 0 {
		result.TabSize = override.TabSize
	}
	if override.MaxNestingDepth != 0 {
		result.MaxNestingDepth = override.MaxNestingDepth
	}
	if override.OutDir != "" {
		result.OutDir = override.OutDir
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}

	// Booleans are tricky because false is the zero value: a config file
	// cannot explicitly unset one of these, only a later true wins.
	if override.AutoDetectLanguage {
		result.AutoDetectLanguage = override.AutoDetectLanguage
	}
	if override.Recursive {
		result.Recursive = override.Recursive
	}
	if override.Color {
		result.Color = override.Color
	}

	if override.Ignore != nil {
		result.Ignore = override.Ignore
	}

	return &result
}

// MergeAll merges multiple configurations in order, with later configs taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	if len(configs) == 0 {
		return nil
	}

	result := configs[0]
	for i := 1; i < len(configs); i++ {
		result = merge(result, configs[i])
	}
	return result
}
