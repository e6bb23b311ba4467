package main

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"braces.dev/errtrace"
	"github.com/goccy/go-yaml"
)

// _hljsSection is a YAML section whose keys are highlighting flags.
// It lets a configuration file group them:
//
//	hljs:
//	  library: common
//	  theme: github
//	  tabsize: 2
const _hljsSection = "hljs"

// _configKeys maps configuration file keys to the flags they set
// where the two differ.
var _configKeys = map[string]string{
	"tabsize": "tab-size",
}

// parseYAMLConfig is an ff.ConfigFileParser for YAML files.
//
// Top-level keys name flags.
// Lists set a flag once per item.
func parseYAMLConfig(r io.Reader, set func(name, value string) error) error {
	var m map[string]any
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil // empty file
		}
		return errtrace.Wrap(err)
	}
	return errtrace.Wrap(setConfigMap(m, true /* top */, set))
}

func setConfigMap(m map[string]any, top bool, set func(name, value string) error) error {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		value := m[key]
		if sub, ok := value.(map[string]any); ok {
			if !top || key != _hljsSection {
				return errtrace.Errorf("config: unexpected section %q", key)
			}
			if err := setConfigMap(sub, false, set); err != nil {
				return errtrace.Wrap(err)
			}
			continue
		}

		name := key
		if flagName, ok := _configKeys[key]; ok {
			name = flagName
		}
		if err := setConfigValue(name, value, set); err != nil {
			return errtrace.Wrap(err)
		}
	}
	return nil
}

func setConfigValue(name string, value any, set func(name, value string) error) error {
	switch v := value.(type) {
	case nil:
		return nil
	case []any:
		for _, item := range v {
			if err := setConfigValue(name, item, set); err != nil {
				return errtrace.Wrap(err)
			}
		}
		return nil
	case map[string]any:
		return errtrace.Errorf("config: %v: unexpected section", name)
	default:
		return errtrace.Wrap(set(name, fmt.Sprint(v)))
	}
}
