// Package soundboard reads and deletes soundboard sounds.
//
// Creating, editing and playing sounds are request builders in pkg/builder.
// The operations here take no optional fields, so they are plain functions.
// They report failures as *builder.Error, like the builders.
package soundboard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hashicorp-forge/soundboard/pkg/builder"
	"github.com/hashicorp-forge/soundboard/pkg/models"
	"github.com/hashicorp-forge/soundboard/pkg/rest"
	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
)

type listResponse struct {
	Items []models.SoundboardSound `json:"items"`
}

// Get returns one sound of a guild.
func Get(ctx context.Context, s rest.Submitter, guildID snowflake.GuildID, soundID snowflake.SoundID) (*models.SoundboardSound, error) {
	const op = "get soundboard sound"

	var sound models.SoundboardSound
	if err := call(ctx, op, s, &rest.Request{
		Method: http.MethodGet,
		Path:   rest.GuildSoundboardSound(guildID, soundID),
	}, &sound); err != nil {
		return nil, err
	}
	return &sound, nil
}

// List returns every sound uploaded to a guild.
func List(ctx context.Context, s rest.Submitter, guildID snowflake.GuildID) ([]models.SoundboardSound, error) {
	const op = "list soundboard sounds"

	var resp listResponse
	if err := call(ctx, op, s, &rest.Request{
		Method: http.MethodGet,
		Path:   rest.GuildSoundboardSounds(guildID),
	}, &resp); err != nil {
		return nil, err
	}
	return resp.Items, nil
}

// ListDefault returns the platform's built-in sounds, available everywhere.
func ListDefault(ctx context.Context, s rest.Submitter) ([]models.SoundboardSound, error) {
	const op = "list default soundboard sounds"

	var sounds []models.SoundboardSound
	if err := call(ctx, op, s, &rest.Request{
		Method: http.MethodGet,
		Path:   rest.DefaultSoundboardSounds(),
	}, &sounds); err != nil {
		return nil, err
	}
	return sounds, nil
}

// Delete removes a sound from a guild. An empty reason sends no audit log
// note.
func Delete(ctx context.Context, s rest.Submitter, guildID snowflake.GuildID, soundID snowflake.SoundID, reason string) error {
	_, err := s.Submit(ctx, &rest.Request{
		Method:         http.MethodDelete,
		Path:           rest.GuildSoundboardSound(guildID, soundID),
		AuditLogReason: reason,
	})
	if err != nil {
		return builder.Wrap("delete soundboard sound", err)
	}
	return nil
}

func call(ctx context.Context, op string, s rest.Submitter, req *rest.Request, result any) error {
	body, err := s.Submit(ctx, req)
	if err != nil {
		return builder.Wrap(op, err)
	}
	if err := json.Unmarshal(body, result); err != nil {
		return &builder.Error{
			Op:   op,
			Kind: builder.KindTransportFailure,
			Err:  fmt.Errorf("failed to decode response: %w", err),
		}
	}
	return nil
}
