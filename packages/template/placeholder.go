package template

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/comandev/coman/packages/collection"
)

// Placeholder marks a value the user must supply at request time.
const Placeholder = ":?"

// contextWidth is how much of the body around a placeholder is echoed
// back in the prompt message.
const contextWidth = 20

// FillBody replaces each placeholder in body left to right, prompting
// once per occurrence. Each answer is spliced in before the next
// placeholder is located, so answers containing ":?" are taken
// literally and not re-prompted.
func FillBody(body string, prompter Prompter) (string, error) {
	for {
		i := strings.Index(body, Placeholder)
		if i < 0 {
			return body, nil
		}
		end := i + contextWidth
		if end > len(body) {
			end = len(body)
		}
		msg := fmt.Sprintf("Missing data at position %d - %s...", i, body[i:end])
		answer, err := prompter.Prompt(msg)
		if err != nil {
			return "", err
		}
		body = body[:i] + answer + body[i+len(Placeholder):]
	}
}

// FillHeaders prompts for each header whose value contains the
// placeholder and replaces the whole value with the answer. The input
// slice is not modified.
func FillHeaders(headers []collection.Header, prompter Prompter) ([]collection.Header, error) {
	filled := make([]collection.Header, len(headers))
	copy(filled, headers)
	for i := range filled {
		if !strings.Contains(filled[i].Value, Placeholder) {
			continue
		}
		msg := fmt.Sprintf("Header value for key '%s' is missing data...", filled[i].Key)
		answer, err := prompter.Prompt(msg)
		if err != nil {
			return nil, err
		}
		filled[i].Value = answer
	}
	return filled, nil
}

// IsText reports whether data is valid UTF-8 and therefore treated as
// text rather than a binary payload.
func IsText(data []byte) bool {
	return utf8.Valid(data)
}
