package builder

import (
	"context"
	"encoding/json"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/soundboard/pkg/models"
	"github.com/hashicorp-forge/soundboard/pkg/optional"
	"github.com/hashicorp-forge/soundboard/pkg/rest"
	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
)

type editSoundboardSoundPayload struct {
	Name      optional.Field[string]            `json:"name,omitzero"`
	Volume    optional.Field[float64]           `json:"volume,omitzero"`
	EmojiID   optional.Field[snowflake.EmojiID] `json:"emoji_id,omitzero"`
	EmojiName optional.Field[string]            `json:"emoji_name,omitzero"`
}

// EditSoundboardSound builds a partial update of a guild sound. Only fields
// whose setters were called are sent; the rest keep their current value.
//
// Requires the Manage Guild Expressions permission, or Create Guild
// Expressions for sounds created by the current user.
type EditSoundboardSound struct {
	payload        editSoundboardSoundPayload
	auditLogReason string
}

// NewEditSoundboardSound starts an edit request with every field unset.
func NewEditSoundboardSound() EditSoundboardSound {
	return EditSoundboardSound{}
}

// Name renames the sound. Must be between 2 and 32 characters long.
func (b EditSoundboardSound) Name(name string) EditSoundboardSound {
	b.payload.Name = optional.Some(name)
	return b
}

// Volume sets the playback volume, between 0 and 1.
func (b EditSoundboardSound) Volume(volume float64) EditSoundboardSound {
	b.payload.Volume = optional.Some(volume)
	return b
}

// EmojiID sets a custom emoji for the sound.
func (b EditSoundboardSound) EmojiID(id snowflake.EmojiID) EditSoundboardSound {
	b.payload.EmojiID = optional.Some(id)
	return b
}

// ClearEmojiID removes the custom emoji. The field is sent as null.
func (b EditSoundboardSound) ClearEmojiID() EditSoundboardSound {
	b.payload.EmojiID = optional.Null[snowflake.EmojiID]()
	return b
}

// EmojiName sets a standard unicode emoji for the sound.
func (b EditSoundboardSound) EmojiName(name string) EditSoundboardSound {
	b.payload.EmojiName = optional.Some(name)
	return b
}

// ClearEmojiName removes the unicode emoji. The field is sent as null.
func (b EditSoundboardSound) ClearEmojiName() EditSoundboardSound {
	b.payload.EmojiName = optional.Null[string]()
	return b
}

// AuditLogReason sets the audit log reason sent with the request.
func (b EditSoundboardSound) AuditLogReason(reason string) EditSoundboardSound {
	b.auditLogReason = reason
	return b
}

// MarshalJSON encodes the request body.
func (b EditSoundboardSound) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.payload)
}

// Validate checks the documented bounds of the fields that are set.
// Execute does not call it.
func (b EditSoundboardSound) Validate() error {
	errs := validation.Errors{}
	if name, ok := b.payload.Name.Get(); ok {
		errs["name"] = validation.Validate(name, nameRules...)
	}
	validateSoundFields(errs, b.payload.Volume, b.payload.EmojiID, b.payload.EmojiName)
	return errs.Filter()
}

// Execute applies the edit to soundID in guildID and returns the updated
// sound.
func (b EditSoundboardSound) Execute(ctx context.Context, s rest.Submitter, guildID snowflake.GuildID, soundID snowflake.SoundID) (*models.SoundboardSound, error) {
	return execute[models.SoundboardSound](ctx, "edit soundboard sound", s, &rest.Request{
		Method:         http.MethodPatch,
		Path:           rest.GuildSoundboardSound(guildID, soundID),
		Body:           b,
		AuditLogReason: b.auditLogReason,
	})
}
