package config

import (
	"context"

	"github.com/yaklabco/gotree/pkg/fsutil"
)

// DefaultTemplateHeader returns the comment placed above generated config files.
func DefaultTemplateHeader() string {
	return `# gotree configuration
#
# Place this file as .gotree.yml in your project. Every key is optional;
# missing keys keep the defaults shown here. Environment variables with the
# GOTREE_ prefix override file values, e.g. GOTREE_KMEANS_SEED=42.`
}

// GenerateTemplate returns the default configuration as commented YAML.
func GenerateTemplate() ([]byte, error) {
	return NewConfig().ToYAMLWithHeader(DefaultTemplateHeader())
}

// WriteTemplate writes the commented default configuration to path.
func WriteTemplate(ctx context.Context, path string) error {
	data, err := GenerateTemplate()
	if err != nil {
		return err
	}
	return fsutil.WriteAtomic(ctx, path, data, 0)
}
