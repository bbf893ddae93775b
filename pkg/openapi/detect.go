package openapi

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Detect reports whether the raw payload appears to be an OpenAPI document.
func Detect(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return false
	}
	if trimmed[0] == '{' {
		var payload map[string]any
		if err := json.Unmarshal(trimmed, &payload); err == nil {
			_, openapi := payload["openapi"]
			_, swagger := payload["swagger"]
			return openapi || swagger
		}
	}
	// Only top-level keys count; nested "openapi:" keys sit indented.
	for _, line := range strings.Split(string(trimmed), "\n") {
		if strings.HasPrefix(line, "openapi:") || strings.HasPrefix(line, "swagger:") {
			return true
		}
	}
	return false
}
