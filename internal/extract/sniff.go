package extract

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// locateJSON finds a single JSON object embedded in loosely-formatted model
// output. The heuristic is bounded and runs in two documented stages: strip
// code-fence wrapping, then scan for the first balanced {...} span (tracking
// string literals and escapes so braces inside strings don't count). The
// first balanced span that is strictly valid JSON wins; if none validates,
// the first balanced span is returned so the caller's repair pass can try it.
func locateJSON(text string) (string, bool) {
	text = stripFences(text)

	var firstBalanced string
	for start := 0; start < len(text); start++ {
		if text[start] != '{' {
			continue
		}
		candidate, ok := balancedSpan(text[start:])
		if !ok {
			continue
		}
		if json.Valid([]byte(candidate)) {
			return candidate, true
		}
		if firstBalanced == "" {
			firstBalanced = candidate
		}
	}
	if firstBalanced != "" {
		return firstBalanced, true
	}
	return "", false
}

// balancedSpan returns the prefix of s spanning one balanced {...} object.
func balancedSpan(s string) (string, bool) {
	depth := 0
	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return s[:i+1], true
				}
			}
		}
	}
	return "", false
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// parseObject strict-parses a candidate span into a JSON object, falling back
// to one jsonrepair pass for near-JSON (single quotes, trailing commas,
// unquoted keys) before giving up.
func parseObject(candidate string) (map[string]any, error) {
	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err == nil {
		return obj, nil
	}
	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		return nil, errors.New("candidate is not a JSON object and could not be repaired")
	}
	if err := json.Unmarshal([]byte(repaired), &obj); err != nil {
		return nil, errors.New("repaired candidate is not a JSON object")
	}
	return obj, nil
}
