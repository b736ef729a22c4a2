// Package config defines the configuration of gotree and how it is loaded.
//
// A configuration is resolved in layers: built-in defaults, then the project config
// file, then an explicit file, then GOTREE_ environment variables. Each file layer
// is decoded on top of the previous result, so it only overrides the keys it sets.
package config

// Initialization strategies for k-means.
const (
	InitFirst    = "first"
	InitRandom   = "random"
	InitPlusPlus = "plusplus"
)

// Color modes for printers.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// NewickConfig controls reading and writing Newick text.
type NewickConfig struct {
	// ReplaceUnderscores turns underscores in unquoted names into blanks on read.
	ReplaceUnderscores bool `yaml:"replace_underscores"`

	WriteNames    bool `yaml:"write_names"`
	WriteValues   bool `yaml:"write_values"`
	WriteTags     bool `yaml:"write_tags"`
	WriteComments bool `yaml:"write_comments"`

	// TrailingNewline ends written trees with a line break.
	TrailingNewline bool `yaml:"trailing_newline"`

	// Precision is the number of decimals of written branch lengths, 0 for the
	// shortest exact form.
	Precision int `yaml:"precision"`
}

// PlacementConfig controls the Newick annotations of placement trees.
type PlacementConfig struct {
	PrintEdgeNums        bool `yaml:"print_edge_nums"`
	PrintPlacementCounts bool `yaml:"print_placement_counts"`
}

// KmeansConfig controls the clustering driver.
type KmeansConfig struct {
	MaxIterations int    `yaml:"max_iterations"`
	Init          string `yaml:"init"`
	Seed          uint64 `yaml:"seed"`

	// Jobs is the number of parallel workers, 0 means GOMAXPROCS.
	Jobs int `yaml:"jobs"`
}

// PrinterConfig controls the debug printers.
type PrinterConfig struct {
	Color    string `yaml:"color"`
	MaxWidth int    `yaml:"max_width"`
}

// Config is the root configuration structure.
type Config struct {
	LogLevel  string          `yaml:"log_level"`
	Newick    NewickConfig    `yaml:"newick"`
	Placement PlacementConfig `yaml:"placement"`
	Kmeans    KmeansConfig    `yaml:"kmeans"`
	Printer   PrinterConfig   `yaml:"printer"`
}

// NewConfig returns a Config with sensible defaults.
func NewConfig() *Config {
	return &Config{
		LogLevel: "info",
		Newick: NewickConfig{
			WriteNames:      true,
			WriteValues:     true,
			WriteTags:       true,
			WriteComments:   true,
			TrailingNewline: true,
		},
		Placement: PlacementConfig{
			PrintEdgeNums: true,
		},
		Kmeans: KmeansConfig{
			MaxIterations: 100,
			Init:          InitPlusPlus,
			Seed:          1,
			Jobs:          0,
		},
		Printer: PrinterConfig{
			Color: ColorAuto,
		},
	}
}
