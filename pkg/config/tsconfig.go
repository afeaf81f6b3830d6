package config

import (
	"encoding/json"
	"fmt"

	"github.com/tailscale/hujson"

	"github.com/siyuan-infoblox/ts-imports-group/pkg/errors"
)

const TSConfigFileName = "tsconfig.json"

// TSConfigSource reads compilerOptions.baseUrl and compilerOptions.paths
type TSConfigSource struct {
	Path string // defaults to tsconfig.json under the root
}

func (t TSConfigSource) Name() string {
	return TSConfigFileName
}

func (t TSConfigSource) Apply(root string, s *Settings) error {
	data, err := readOptional(resolvePath(root, t.Path, TSConfigFileName), t.Path != "")
	if err != nil || data == nil {
		return err
	}

	var file struct {
		CompilerOptions struct {
			BaseURL string              `json:"baseUrl"`
			Paths   map[string][]string `json:"paths"`
		} `json:"compilerOptions"`
	}
	data, err = stripJSONComments(data)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseConfig, err)
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToParseConfig, err)
	}

	if file.CompilerOptions.BaseURL != "" {
		s.Format.BaseDir = file.CompilerOptions.BaseURL
	}
	if len(file.CompilerOptions.Paths) > 0 {
		s.Format.PathAliases = file.CompilerOptions.Paths
	}
	return nil
}

// stripJSONComments turns JSON with comments and trailing commas, as
// tsconfig.json and tslint.json files commonly contain, into standard JSON
func stripJSONComments(data []byte) ([]byte, error) {
	return hujson.Standardize(data)
}
