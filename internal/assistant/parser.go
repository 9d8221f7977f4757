package assistant

import (
	"encoding/json"
	"strings"
)

// Parse turns raw model output into a Command. Markdown code fences are
// stripped and the outermost JSON object extracted. Output that cannot be
// parsed as a command becomes an ERROR command carrying the raw text, so the
// caller can surface it instead of mutating anything.
func Parse(raw string) Command {
	text := strings.TrimSpace(raw)
	text = stripFences(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return errorCommand(raw)
	}

	var cmd Command
	if err := json.Unmarshal([]byte(text[start:end+1]), &cmd); err != nil {
		return errorCommand(raw)
	}
	if cmd.Action == "" {
		return errorCommand(raw)
	}
	return cmd
}

func stripFences(text string) string {
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func errorCommand(raw string) Command {
	return Command{Action: ActionError, Message: strings.TrimSpace(raw)}
}
