package newick

import "github.com/yaklabco/gotree/pkg/config"

// ReaderOptionsFromConfig returns the reader options of cfg.
func ReaderOptionsFromConfig(cfg *config.Config) ReaderOptions {
	return ReaderOptions{
		ReplaceUnderscores: cfg.Newick.ReplaceUnderscores,
	}
}

// WriterOptionsFromConfig returns the writer options of cfg.
func WriterOptionsFromConfig(cfg *config.Config) WriterOptions {
	return WriterOptions{
		OmitNames:       !cfg.Newick.WriteNames,
		OmitValues:      !cfg.Newick.WriteValues,
		OmitTags:        !cfg.Newick.WriteTags,
		OmitComments:    !cfg.Newick.WriteComments,
		TrailingNewline: cfg.Newick.TrailingNewline,
	}
}

// DefaultPluginFromConfig returns a DefaultPlugin with the configured precision.
func DefaultPluginFromConfig(cfg *config.Config) DefaultPlugin {
	return DefaultPlugin{Precision: cfg.Newick.Precision}
}
