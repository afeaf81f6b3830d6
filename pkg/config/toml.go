package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/siyuan-infoblox/ts-imports-group/pkg/errors"
)

const TOMLFileName = ".tig.toml"

// TOMLSource reads the tool's own configuration in TOML
type TOMLSource struct {
	Path     string // defaults to .tig.toml under the root
	Required bool   // fail when the file does not exist
}

func (t TOMLSource) Name() string {
	if t.Path != "" {
		return t.Path
	}
	return TOMLFileName
}

func (t TOMLSource) Apply(root string, s *Settings) error {
	data, err := readOptional(resolvePath(root, t.Path, TOMLFileName), t.Required)
	if err != nil || data == nil {
		return err
	}

	var fileCfg fileConfig
	if _, err := toml.Decode(string(data), &fileCfg); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseConfig, err)
	}
	return fileCfg.merge(s)
}
