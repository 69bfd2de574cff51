package config

import (
	"path/filepath"
)

// CfgPath is a path from the config file. Relative paths are taken relative to
// the directory the config file lives in.
type CfgPath string

func (c CfgPath) resolve(base string) CfgPath {
	if c == "" || filepath.IsAbs(string(c)) {
		return c
	}
	return CfgPath(filepath.Join(base, string(c)))
}

func (c CfgPath) String() string {
	return string(c)
}
