package batch

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadScript reads a TOML run script: [[job]] blocks carrying dir and
// args. A missing dir means "run where the harness already is".
func LoadScript(path string) (*Script, error) {
	var script Script
	if _, err := toml.DecodeFile(path, &script); err != nil {
		return nil, fmt.Errorf("load run script %q: %w", path, err)
	}
	for i := range script.Jobs {
		if script.Jobs[i].Dir == "" {
			script.Jobs[i].Dir = "."
		}
	}
	return &script, nil
}
