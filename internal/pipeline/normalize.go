package pipeline

import (
	"encoding/json"
	"regexp"
	"strings"
)

// fenceRe matches markdown code-fence delimiters, language-tagged or
// bare, with their trailing newline when present.
var fenceRe = regexp.MustCompile("```[a-zA-Z]*\n?")

// Normalize parses one JSON object out of a raw model completion into
// T. It strips code-fence delimiters and trims whitespace, then
// strict-parses: correctness of the contained JSON is the model's
// responsibility, and anything that fails to parse is a
// *MalformedOutputError carrying the original text. No repair
// heuristics beyond delimiter stripping.
func Normalize[T any](raw string) (T, error) {
	var out T

	cleaned := strings.TrimSpace(fenceRe.ReplaceAllString(raw, ""))

	if err := json.Unmarshal([]byte(cleaned), &out); err != nil {
		var zero T
		return zero, &MalformedOutputError{Err: err, Raw: raw}
	}
	return out, nil
}
