package mixin

// Props is the construction property bag of an entity or item template.
// Values come from YAML templates or from Go literals, so numeric lookups
// accept any of the numeric types either source produces.
type Props map[string]any

// Int returns the integer property for key, or def when absent or not numeric.
func (p Props) Int(key string, def int) int {
	switch v := p[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case uint64:
		return int(v)
	case float64:
		return int(v)
	}
	return def
}

// Float returns the float property for key, or def.
func (p Props) Float(key string, def float64) float64 {
	switch v := p[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return def
}

// String returns the string property for key, or def when absent or empty.
func (p Props) String(key, def string) string {
	if s, ok := p[key].(string); ok && s != "" {
		return s
	}
	return def
}

// Bool returns the boolean property for key (false when absent).
func (p Props) Bool(key string) bool {
	b, _ := p[key].(bool)
	return b
}

// Merge returns a copy of p with every key of extra overlaid on top.
func (p Props) Merge(extra Props) Props {
	out := make(Props, len(p)+len(extra))
	for k, v := range p {
		out[k] = v
	}
	for k, v := range extra {
		out[k] = v
	}
	return out
}

// Strings returns the string list for key, or def. YAML lists arrive as
// []any; non-string elements are skipped.
func (p Props) Strings(key string, def []string) []string {
	switch v := p[key].(type) {
	case []string:
		return append([]string(nil), v...)
	case []any:
		out := make([]string, 0, len(v))
		for _, e := range v {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return def
}
