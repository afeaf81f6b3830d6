package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/siyuan-infoblox/ts-imports-group/pkg/errors"
)

// YAMLFileNames are tried in order when no explicit path is given
var YAMLFileNames = []string{".tig.yaml", ".tig.yml"}

// YAMLSource reads the tool's own configuration in YAML
type YAMLSource struct {
	Path     string
	Required bool
}

func (y YAMLSource) Name() string {
	if y.Path != "" {
		return y.Path
	}
	return YAMLFileNames[0]
}

func (y YAMLSource) Apply(root string, s *Settings) error {
	path := resolvePath(root, y.Path, YAMLFileNames[0])
	if y.Path == "" {
		for _, name := range YAMLFileNames {
			candidate := resolvePath(root, "", name)
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
	}
	data, err := readOptional(path, y.Required)
	if err != nil || data == nil {
		return err
	}

	var fileCfg fileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseConfig, err)
	}
	return fileCfg.merge(s)
}
