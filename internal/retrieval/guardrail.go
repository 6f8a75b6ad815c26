package retrieval

import (
	"strings"

	"github.com/NielsFilter/learnai/internal/entity"
)

// blockedPhrases are matched case-insensitively as substrings. The list
// targets prompt-injection attempts against the tutor persona.
var blockedPhrases = []string{
	"ignore instructions",
	"ignore previous instructions",
	"ignore all previous instructions",
	"disregard instructions",
	"system prompt",
	"you are not",
	"reveal your prompt",
	"jailbreak",
}

// CheckMessage rejects user messages that try to subvert the assistant.
// Pure string matching, applied to the chat path only.
func CheckMessage(message string) error {
	lowered := strings.ToLower(message)
	for _, phrase := range blockedPhrases {
		if strings.Contains(lowered, phrase) {
			return entity.ErrBlockedMessage
		}
	}
	return nil
}
