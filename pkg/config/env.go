package config

import (
	"fmt"
	"maps"
	"os"
	"slices"
	"strconv"
)

// EnvVarPrefix is the prefix for all gotree environment variables.
const EnvVarPrefix = "GOTREE_"

// envSetter parses a raw environment value into one config field.
type envSetter func(c *Config, raw string) error

// bind builds an envSetter from a field accessor and a parser for its type.
func bind[T any](field func(c *Config) *T, parse func(string) (T, error)) envSetter {
	return func(c *Config, raw string) error {
		v, err := parse(raw)
		if err != nil {
			return err
		}
		*field(c) = v
		return nil
	}
}

func parseString(s string) (string, error) { return s, nil }

func parseUint64(s string) (uint64, error) { return strconv.ParseUint(s, 10, 64) }

// envSetters maps environment variable names, without prefix, to config fields.
//
//nolint:gochecknoglobals // Read-only lookup table.
var envSetters = map[string]envSetter{
	"LOG_LEVEL": bind(func(c *Config) *string { return &c.LogLevel }, parseString),

	"NEWICK_REPLACE_UNDERSCORES": bind(func(c *Config) *bool { return &c.Newick.ReplaceUnderscores }, strconv.ParseBool),
	"NEWICK_WRITE_NAMES":         bind(func(c *Config) *bool { return &c.Newick.WriteNames }, strconv.ParseBool),
	"NEWICK_WRITE_VALUES":        bind(func(c *Config) *bool { return &c.Newick.WriteValues }, strconv.ParseBool),
	"NEWICK_WRITE_TAGS":          bind(func(c *Config) *bool { return &c.Newick.WriteTags }, strconv.ParseBool),
	"NEWICK_WRITE_COMMENTS":      bind(func(c *Config) *bool { return &c.Newick.WriteComments }, strconv.ParseBool),
	"NEWICK_TRAILING_NEWLINE":    bind(func(c *Config) *bool { return &c.Newick.TrailingNewline }, strconv.ParseBool),
	"NEWICK_PRECISION":           bind(func(c *Config) *int { return &c.Newick.Precision }, strconv.Atoi),

	"PLACEMENT_PRINT_EDGE_NUMS":        bind(func(c *Config) *bool { return &c.Placement.PrintEdgeNums }, strconv.ParseBool),
	"PLACEMENT_PRINT_PLACEMENT_COUNTS": bind(func(c *Config) *bool { return &c.Placement.PrintPlacementCounts }, strconv.ParseBool),

	"KMEANS_MAX_ITERATIONS": bind(func(c *Config) *int { return &c.Kmeans.MaxIterations }, strconv.Atoi),
	"KMEANS_INIT":           bind(func(c *Config) *string { return &c.Kmeans.Init }, parseString),
	"KMEANS_SEED":           bind(func(c *Config) *uint64 { return &c.Kmeans.Seed }, parseUint64),
	"KMEANS_JOBS":           bind(func(c *Config) *int { return &c.Kmeans.Jobs }, strconv.Atoi),

	"PRINTER_COLOR":     bind(func(c *Config) *string { return &c.Printer.Color }, parseString),
	"PRINTER_MAX_WIDTH": bind(func(c *Config) *int { return &c.Printer.MaxWidth }, strconv.Atoi),
}

// LoadFromEnv overrides fields of cfg from GOTREE_* variables, for example
// GOTREE_KMEANS_SEED. Unset and empty variables are ignored. Variables are applied
// in name order, so the first malformed one by name is reported.
func LoadFromEnv(cfg *Config) error {
	if cfg == nil {
		return nil
	}

	for _, suffix := range slices.Sorted(maps.Keys(envSetters)) {
		name := EnvVarPrefix + suffix
		raw := os.Getenv(name)
		if raw == "" {
			continue
		}
		if err := envSetters[suffix](cfg, raw); err != nil {
			return fmt.Errorf("%s=%q: %w", name, raw, err)
		}
	}
	return nil
}

// EnvVarNames lists the recognized environment variables in sorted order.
func EnvVarNames() []string {
	names := make([]string, 0, len(envSetters))
	for suffix := range envSetters {
		names = append(names, EnvVarPrefix+suffix)
	}
	slices.Sort(names)
	return names
}
