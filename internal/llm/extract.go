package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ExtractJSON parses a JSON value of type T from an LLM response. Models
// sometimes wrap their output in ```json fences despite being told not to,
// so fences are stripped before decoding, and trailing commas are repaired
// on a second attempt.
func ExtractJSON[T any](content string) (T, error) {
	var result T

	content = strings.TrimSpace(content)
	if start := strings.Index(content, "```json"); start != -1 {
		start += len("```json")
		if end := strings.LastIndex(content, "```"); end > start {
			content = content[start:end]
		}
	} else if start := strings.Index(content, "```"); start != -1 {
		start += len("```")
		if end := strings.LastIndex(content[start:], "```"); end != -1 {
			content = content[start : start+end]
		}
	}
	content = strings.TrimSpace(content)

	if err := json.Unmarshal([]byte(content), &result); err != nil {
		content = strings.ReplaceAll(content, ",]", "]")
		content = strings.ReplaceAll(content, ",}", "}")
		if err := json.Unmarshal([]byte(content), &result); err != nil {
			return result, fmt.Errorf("failed to parse JSON: %w (content: %s)", err, truncate(content, 200))
		}
	}
	return result, nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
