package configloader

import "github.com/yaklabco/mdprefix/pkg/config"

// merge combines two configurations, with override taking precedence over base.
// The merge follows these rules:
//   - Scalar values: override overwrites base if override is non-zero
//   - Pointers: override overwrites base if non-nil, so false can be set
//   - Slices: override replaces base entirely if override is non-nil
//   - Nil/unset values in override do not override values in base
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base
	}

	result := base.Clone()

	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.Format != "" {
		result.Format = override.Format
	}
	if override.Jobs != 0 {
		result.Jobs = override.Jobs
	}
	if override.MaxMarkers != 0 {
		result.MaxMarkers = override.MaxMarkers
	}
	if override.TaskLists != nil {
		enabled := *override.TaskLists
		result.TaskLists = &enabled
	}

	// Plain booleans can only be switched on by a later layer.
	if override.Verify {
		result.Verify = true
	}
	if override.ShowBlank {
		result.ShowBlank = true
	}
	if override.Output != "" {
		result.Output = override.Output
	}

	if override.Ignore != nil {
		result.Ignore = append([]string(nil), override.Ignore...)
	}
	if override.Extensions != nil {
		result.Extensions = append([]string(nil), override.Extensions...)
	}

	return result
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
