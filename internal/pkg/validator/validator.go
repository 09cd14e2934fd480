package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/plateforme-chat/chats-service/internal/model"
)

// Channel ids keep the shape of the metadata store's document ids.
var channelIDPattern = regexp.MustCompile(`^[a-fA-F0-9]{24}$`)

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateChannelID(channelID string) error {
	if !channelIDPattern.MatchString(channelID) {
		return fmt.Errorf("channel id is invalid or missing")
	}

	return nil
}

func (v *Validator) ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("content cannot be empty")
	}

	return nil
}

// ValidateTimestamp accepts only timestamps whose canonical re-serialization
// equals the input, which rejects partial or ambiguous dates.
func (v *Validator) ValidateTimestamp(timestamp string) (time.Time, error) {
	parsed, err := time.Parse(time.RFC3339Nano, timestamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("timestamp is invalid or missing")
	}

	if parsed.UTC().Format(model.TimeLayoutISOMillis) != timestamp {
		return time.Time{}, fmt.Errorf("timestamp is not in canonical form")
	}

	return parsed, nil
}

// ValidateCursor parses the pagination cursor. A nil cursor selects the
// newest page and yields 0.
func (v *Validator) ValidateCursor(cursor *string) (int64, error) {
	if cursor == nil {
		return 0, nil
	}

	id, err := strconv.ParseInt(*cursor, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("cursor is invalid")
	}

	return id, nil
}
