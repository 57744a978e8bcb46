// Package assets holds the static game content: entity and item templates
// and the flavor text shown on entering each depth.
package assets

import _ "embed"

// Templates is the YAML document defining every entity and item template.
//
//go:embed templates.yaml
var Templates []byte
