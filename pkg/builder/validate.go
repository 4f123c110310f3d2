package builder

import (
	"errors"
	"strings"

	"github.com/forPelevin/gomoji"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/soundboard/pkg/optional"
	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
)

// Bounds documented by the service.
const (
	minSoundNameLength = 2
	maxSoundNameLength = 32
	maxInviteAge       = 7 * 24 * 60 * 60
	maxInviteUses      = 100
)

var nameRules = []validation.Rule{
	validation.Required,
	validation.RuneLength(minSoundNameLength, maxSoundNameLength),
}

var volumeRules = []validation.Rule{
	validation.Min(0.0),
	validation.Max(1.0),
}

// singleEmoji accepts a string consisting of exactly one unicode emoji.
var singleEmoji = validation.By(func(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if _, err := gomoji.GetInfo(s); err == nil {
		return nil
	}
	// FindAll drops repeats, so count with CollectAll.
	if len(gomoji.CollectAll(s)) == 1 && strings.TrimSpace(gomoji.RemoveEmojis(s)) == "" {
		return nil
	}
	return errors.New("must be a single unicode emoji")
})

// validateSoundFields checks the optional fields shared by create and edit.
func validateSoundFields(
	errs validation.Errors,
	volume optional.Field[float64],
	emojiID optional.Field[snowflake.EmojiID],
	emojiName optional.Field[string],
) {
	if v, ok := volume.Get(); ok {
		errs["volume"] = validation.Validate(v, volumeRules...)
	}

	name, hasName := emojiName.Get()
	if hasName {
		errs["emoji_name"] = validation.Validate(name, singleEmoji)
	}
	if _, hasID := emojiID.Get(); hasID && hasName && name != "" {
		errs["emoji_name"] = errors.New("cannot be set together with emoji_id")
	}
}
