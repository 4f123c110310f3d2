// Package builder constructs and sends sparse mutation requests.
//
// # Overview
//
// Every mutating operation has its own builder type:
//
//   - CreateSoundboardSound: POST /guilds/{guild}/soundboard-sounds
//   - EditSoundboardSound:   PATCH /guilds/{guild}/soundboard-sounds/{sound}
//   - CreateInvite:          POST /channels/{channel}/invites
//   - SendSoundboardSound:   POST /channels/{channel}/send-soundboard-sound
//
// A builder is a plain value. Each setter returns an updated copy, so calls
// chain and an earlier value is never changed behind the caller's back:
//
//	sound, err := builder.NewEditSoundboardSound().
//		Name("siren").
//		Volume(0.5).
//		AuditLogReason("louder alarm").
//		Execute(ctx, client, guildID, soundID)
//
// # Sparse payloads
//
// A field is sent only if its setter was called. Calling a setter twice keeps
// the last value. This is what gives edits PATCH semantics: fields that were
// never set keep their server-side value. Clearing a field is a distinct,
// explicit operation (for example EditSoundboardSound.ClearEmojiID) that
// sends JSON null. Mandatory fields of create operations are taken by the
// constructor and are always sent.
//
// The JSON encoding of a builder (MarshalJSON) is exactly the request body.
// Field order is fixed, so a builder always encodes to the same bytes.
//
// # Audit log reason
//
// AuditLogReason attaches a note for the guild audit log. It travels to the
// transport as request metadata and is never part of the body. An empty
// reason sends no note.
//
// # Execution
//
// Execute performs exactly one rest.Submitter call and does not retry;
// retries, if any, happen inside the transport. A builder may be executed
// once per request the caller intends to make. Every failure is returned as
// an *Error whose Kind tells a rejection by the service apart from a
// transport failure; the cause is available through errors.As/errors.Is.
//
// # Validation
//
// Execute never validates locally; the service enforces bounds such as
// name length and volume range and reports violations as
// KindValidationRejected. Validate is available for callers that want to
// fail fast before sending.
package builder
