package extractor

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"brewlog/internal/usecase/extract"
	"brewlog/internal/utils/text"
)

// maxPromptInput bounds the user text placed in a prompt, in runes.
const maxPromptInput = 6000

// ErrUnparseable is returned when a provider answers without a JSON object.
var ErrUnparseable = errors.New("provider answer is not a JSON object")

const roasterInstructions = `You extract facts about a coffee roasting company from the text below.
Answer with one JSON object and nothing else, using exactly these keys:
{"name": "", "country": "", "city": "", "homepage": ""}
Use an empty string for anything the text does not state. "homepage" must be an absolute http(s) URL.

Text:
`

// buildPrompt returns the extraction prompt and whether text was truncated.
func buildPrompt(input string) (string, bool) {
	body, cut := text.Truncate(input, maxPromptInput)
	return roasterInstructions + body, cut
}

// parseSuggestion decodes the first JSON object in answer. Models sometimes
// wrap the object in prose or a code fence.
func parseSuggestion(answer string) (extract.Suggestion, error) {
	start := strings.IndexByte(answer, '{')
	end := strings.LastIndexByte(answer, '}')
	if start < 0 || end < start {
		return extract.Suggestion{}, ErrUnparseable
	}
	var s extract.Suggestion
	if err := json.Unmarshal([]byte(answer[start:end+1]), &s); err != nil {
		return extract.Suggestion{}, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}
	return s.Trimmed(), nil
}
