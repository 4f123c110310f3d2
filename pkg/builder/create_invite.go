package builder

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/hashicorp-forge/soundboard/pkg/models"
	"github.com/hashicorp-forge/soundboard/pkg/optional"
	"github.com/hashicorp-forge/soundboard/pkg/rest"
	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
)

type createInvitePayload struct {
	MaxAge              optional.Field[uint32]                  `json:"max_age,omitzero"`
	MaxUses             optional.Field[uint8]                   `json:"max_uses,omitzero"`
	Temporary           optional.Field[bool]                    `json:"temporary,omitzero"`
	Unique              optional.Field[bool]                    `json:"unique,omitzero"`
	TargetType          optional.Field[models.InviteTargetType] `json:"target_type,omitzero"`
	TargetUserID        optional.Field[snowflake.UserID]        `json:"target_user_id,omitzero"`
	TargetApplicationID optional.Field[snowflake.ApplicationID] `json:"target_application_id,omitzero"`
}

// CreateInvite builds a request that creates an invite for a channel. Every
// field is optional; the service applies its defaults to the ones left
// unset.
//
//	invite, err := builder.NewCreateInvite().MaxAge(3600).MaxUses(10).Execute(ctx, client, channelID)
//
// Requires the Create Instant Invite permission.
type CreateInvite struct {
	payload        createInvitePayload
	auditLogReason string
}

// NewCreateInvite starts an invite request with every field unset.
func NewCreateInvite() CreateInvite {
	return CreateInvite{}
}

// MaxAge sets how many seconds the invite stays valid. Zero never expires.
// The service default is 86400 (24 hours) and the maximum 604800 (7 days).
func (b CreateInvite) MaxAge(seconds uint32) CreateInvite {
	b.payload.MaxAge = optional.Some(seconds)
	return b
}

// MaxUses sets how many times the invite can be used. Zero is unlimited,
// which is the service default. The maximum is 100.
func (b CreateInvite) MaxUses(uses uint8) CreateInvite {
	b.payload.MaxUses = optional.Some(uses)
	return b
}

// Temporary makes the invite grant temporary membership. Defaults to false.
func (b CreateInvite) Temporary(temporary bool) CreateInvite {
	b.payload.Temporary = optional.Some(temporary)
	return b
}

// Unique disables reuse of a similar existing invite. Defaults to false.
func (b CreateInvite) Unique(unique bool) CreateInvite {
	b.payload.Unique = optional.Some(unique)
	return b
}

// TargetType sets what a voice channel invite opens.
func (b CreateInvite) TargetType(targetType models.InviteTargetType) CreateInvite {
	b.payload.TargetType = optional.Some(targetType)
	return b
}

// TargetUserID sets the user whose stream the invite displays. Required for
// InviteTargetStream; the user must be streaming in the channel.
func (b CreateInvite) TargetUserID(id snowflake.UserID) CreateInvite {
	b.payload.TargetUserID = optional.Some(id)
	return b
}

// TargetApplicationID sets the embedded application the invite opens.
// Required for InviteTargetEmbeddedApplication; the application must have
// the EMBEDDED flag.
func (b CreateInvite) TargetApplicationID(id snowflake.ApplicationID) CreateInvite {
	b.payload.TargetApplicationID = optional.Some(id)
	return b
}

// AuditLogReason sets the audit log reason sent with the request.
func (b CreateInvite) AuditLogReason(reason string) CreateInvite {
	b.auditLogReason = reason
	return b
}

// MarshalJSON encodes the request body.
func (b CreateInvite) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.payload)
}

// Validate checks the documented bounds and target consistency locally.
// Execute does not call it.
func (b CreateInvite) Validate() error {
	errs := validation.Errors{}
	if age, ok := b.payload.MaxAge.Get(); ok {
		errs["max_age"] = validation.Validate(age, validation.Max(uint32(maxInviteAge)))
	}
	if uses, ok := b.payload.MaxUses.Get(); ok {
		errs["max_uses"] = validation.Validate(uses, validation.Max(uint8(maxInviteUses)))
	}

	targetType, hasType := b.payload.TargetType.Get()
	_, hasUser := b.payload.TargetUserID.Get()
	_, hasApp := b.payload.TargetApplicationID.Get()

	switch {
	case !hasType:
		if hasUser {
			errs["target_user_id"] = errors.New("requires target_type")
		}
		if hasApp {
			errs["target_application_id"] = errors.New("requires target_type")
		}
	case targetType == models.InviteTargetStream:
		if !hasUser {
			errs["target_user_id"] = errors.New("is required for stream invites")
		}
	case targetType == models.InviteTargetEmbeddedApplication:
		if !hasApp {
			errs["target_application_id"] = errors.New("is required for embedded application invites")
		}
	default:
		errs["target_type"] = errors.New("must be stream or embedded_application")
	}

	return errs.Filter()
}

// Execute creates the invite for channelID.
func (b CreateInvite) Execute(ctx context.Context, s rest.Submitter, channelID snowflake.ChannelID) (*models.Invite, error) {
	return execute[models.Invite](ctx, "create invite", s, &rest.Request{
		Method:         http.MethodPost,
		Path:           rest.ChannelInvites(channelID),
		Body:           b,
		AuditLogReason: b.auditLogReason,
	})
}
