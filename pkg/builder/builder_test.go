package builder

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/soundboard/pkg/attachment"
	"github.com/hashicorp-forge/soundboard/pkg/models"
	"github.com/hashicorp-forge/soundboard/pkg/rest"
	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
)

// MockSubmitter mocks the rest.Submitter interface.
type MockSubmitter struct {
	mock.Mock
}

func (m *MockSubmitter) Submit(ctx context.Context, req *rest.Request) ([]byte, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// submitted returns the request of the only Submit call.
func (m *MockSubmitter) submitted(t *testing.T) *rest.Request {
	t.Helper()
	m.AssertNumberOfCalls(t, "Submit", 1)
	return m.Calls[0].Arguments.Get(1).(*rest.Request)
}

func encode(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

var horn = attachment.New("horn.ogg", []byte("abc"))

const hornData = "data:audio/ogg;base64,YWJj"

const soundResponse = `{"sound_id":"42","name":"siren","volume":0.5,"emoji_id":null,"emoji_name":null,"guild_id":"7","available":true}`

func TestPayload_UnsetFieldsAreOmitted(t *testing.T) {
	tests := []struct {
		name    string
		builder any
		want    string
	}{
		{
			name:    "edit sound without setters",
			builder: NewEditSoundboardSound(),
			want:    `{}`,
		},
		{
			name:    "create invite without setters",
			builder: NewCreateInvite(),
			want:    `{}`,
		},
		{
			name:    "create sound carries only mandatory fields",
			builder: NewCreateSoundboardSound("horn", horn),
			want:    `{"name":"horn","sound":"` + hornData + `"}`,
		},
		{
			name:    "send sound carries only the sound id",
			builder: NewSendSoundboardSound(42),
			want:    `{"sound_id":"42"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encode(t, tt.builder))
		})
	}
}

func TestPayload_AllFields(t *testing.T) {
	tests := []struct {
		name    string
		builder any
		want    string
	}{
		{
			name: "create sound",
			builder: NewCreateSoundboardSound("horn", horn).
				Volume(0.25).
				EmojiID(11).
				EmojiName("📯"),
			want: `{"name":"horn","sound":"` + hornData + `","volume":0.25,"emoji_id":"11","emoji_name":"📯"}`,
		},
		{
			name: "edit sound",
			builder: NewEditSoundboardSound().
				Name("siren").
				Volume(1).
				EmojiID(11).
				EmojiName("🚨"),
			want: `{"name":"siren","volume":1,"emoji_id":"11","emoji_name":"🚨"}`,
		},
		{
			name: "create invite",
			builder: NewCreateInvite().
				MaxAge(3600).
				MaxUses(10).
				Temporary(true).
				Unique(false).
				TargetType(models.InviteTargetEmbeddedApplication).
				TargetUserID(5).
				TargetApplicationID(880218394199220334),
			want: `{"max_age":3600,"max_uses":10,"temporary":true,"unique":false,"target_type":2,"target_user_id":"5","target_application_id":"880218394199220334"}`,
		},
		{
			name:    "send sound",
			builder: NewSendSoundboardSound(42).SourceGuildID(7),
			want:    `{"sound_id":"42","source_guild_id":"7"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encode(t, tt.builder))
		})
	}
}

func TestPayload_LastWriteWins(t *testing.T) {
	t.Run("edit name", func(t *testing.T) {
		b := NewEditSoundboardSound().Name("first").Name("second")
		assert.Equal(t, `{"name":"second"}`, encode(t, b))
	})

	t.Run("create mandatory fields", func(t *testing.T) {
		b := NewCreateSoundboardSound("first", attachment.New("a.mp3", []byte("x"))).
			Name("second").
			Sound(horn)
		assert.Equal(t, `{"name":"second","sound":"`+hornData+`"}`, encode(t, b))
	})

	t.Run("invite max uses", func(t *testing.T) {
		b := NewCreateInvite().MaxUses(1).MaxUses(10)
		assert.Equal(t, `{"max_uses":10}`, encode(t, b))
	})

	t.Run("clear then set emoji", func(t *testing.T) {
		b := NewEditSoundboardSound().ClearEmojiID().EmojiID(3)
		assert.Equal(t, `{"emoji_id":"3"}`, encode(t, b))
	})

	t.Run("send sound id", func(t *testing.T) {
		b := NewSendSoundboardSound(1).SoundID(2)
		assert.Equal(t, `{"sound_id":"2"}`, encode(t, b))
	})
}

func TestPayload_ExplicitAbsentIsDistinctFromUnset(t *testing.T) {
	assert.Equal(t, `{}`, encode(t, NewEditSoundboardSound()))
	assert.Equal(t, `{"emoji_id":null}`, encode(t, NewEditSoundboardSound().ClearEmojiID()))
	assert.Equal(t, `{"emoji_name":null}`, encode(t, NewEditSoundboardSound().ClearEmojiName()))
	assert.Equal(t, `{"emoji_name":""}`, encode(t, NewEditSoundboardSound().EmojiName("")))
	assert.Equal(t, `{"volume":0}`, encode(t, NewEditSoundboardSound().Volume(0)))
	assert.Equal(t, `{"max_age":0}`, encode(t, NewCreateInvite().MaxAge(0)))
}

func TestCreateSoundboardSound_NilSound(t *testing.T) {
	var b CreateSoundboardSound
	require.NotPanics(t, func() {
		b = NewCreateSoundboardSound("horn", nil).Sound(nil)
	})
	assert.Equal(t, `{"name":"horn","sound":""}`, encode(t, b))

	err := b.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sound")
}

func TestPayload_Deterministic(t *testing.T) {
	b := NewCreateInvite().Unique(true).MaxAge(60).TargetUserID(9).TargetType(models.InviteTargetStream)
	first := encode(t, b)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, encode(t, b))
	}
}

func TestSetters_DoNotAlias(t *testing.T) {
	base := NewEditSoundboardSound().Name("base")
	renamed := base.Name("renamed")
	withReason := base.AuditLogReason("why")

	assert.Equal(t, `{"name":"base"}`, encode(t, base))
	assert.Equal(t, `{"name":"renamed"}`, encode(t, renamed))
	assert.Empty(t, base.auditLogReason)
	assert.Equal(t, "why", withReason.auditLogReason)
}

func TestAuditLogReason_NeverInPayload(t *testing.T) {
	const reason = "cleanup requested by moderators"

	tests := []struct {
		name string
		run  func(ctx context.Context, s rest.Submitter) error
	}{
		{
			name: "create sound",
			run: func(ctx context.Context, s rest.Submitter) error {
				_, err := NewCreateSoundboardSound("horn", horn).Volume(0.1).AuditLogReason(reason).Execute(ctx, s, 7)
				return err
			},
		},
		{
			name: "edit sound with no fields",
			run: func(ctx context.Context, s rest.Submitter) error {
				_, err := NewEditSoundboardSound().AuditLogReason(reason).Execute(ctx, s, 7, 42)
				return err
			},
		},
		{
			name: "edit sound with every field",
			run: func(ctx context.Context, s rest.Submitter) error {
				_, err := NewEditSoundboardSound().
					AuditLogReason(reason).
					Name("siren").
					Volume(0.3).
					EmojiID(1).
					ClearEmojiName().
					Execute(ctx, s, 7, 42)
				return err
			},
		},
		{
			name: "create invite",
			run: func(ctx context.Context, s rest.Submitter) error {
				_, err := NewCreateInvite().AuditLogReason("first").MaxUses(3).AuditLogReason(reason).Execute(ctx, s, 9)
				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockSubmitter)
			m.On("Submit", mock.Anything, mock.Anything).Return([]byte(`{}`), nil)

			require.NoError(t, tt.run(context.Background(), m))

			req := m.submitted(t)
			assert.Equal(t, reason, req.AuditLogReason)

			body := encode(t, req.Body)
			assert.NotContains(t, body, reason)
			assert.NotContains(t, body, "audit")
		})
	}
}

func TestExecute_Requests(t *testing.T) {
	t.Run("create sound", func(t *testing.T) {
		m := new(MockSubmitter)
		m.On("Submit", mock.Anything, mock.Anything).Return([]byte(soundResponse), nil)

		sound, err := NewCreateSoundboardSound("siren", horn).Execute(context.Background(), m, 7)
		require.NoError(t, err)
		assert.Equal(t, snowflake.SoundID(42), sound.ID)

		req := m.submitted(t)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/guilds/7/soundboard-sounds", req.Path)
		assert.Empty(t, req.AuditLogReason)
	})

	t.Run("create invite", func(t *testing.T) {
		m := new(MockSubmitter)
		m.On("Submit", mock.Anything, mock.Anything).Return([]byte(`{"code":"abc","max_uses":10,"channel":{"id":"9","name":"general","type":2}}`), nil)

		invite, err := NewCreateInvite().MaxUses(10).Execute(context.Background(), m, 9)
		require.NoError(t, err)
		assert.Equal(t, "abc", invite.Code)
		assert.Equal(t, 10, invite.MaxUses)

		req := m.submitted(t)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/channels/9/invites", req.Path)
		assert.Equal(t, `{"max_uses":10}`, encode(t, req.Body))
	})

	t.Run("send sound returns no value", func(t *testing.T) {
		m := new(MockSubmitter)
		m.On("Submit", mock.Anything, mock.Anything).Return([]byte{}, nil)

		err := NewSendSoundboardSound(42).SourceGuildID(7).Execute(context.Background(), m, 9)
		require.NoError(t, err)

		req := m.submitted(t)
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/channels/9/send-soundboard-sound", req.Path)
		assert.Empty(t, req.AuditLogReason)
		assert.Equal(t, `{"sound_id":"42","source_guild_id":"7"}`, encode(t, req.Body))
	})

	t.Run("context is passed to the transport", func(t *testing.T) {
		type key struct{}
		ctx := context.WithValue(context.Background(), key{}, "marker")

		m := new(MockSubmitter)
		m.On("Submit", ctx, mock.Anything).Return([]byte(soundResponse), nil)

		_, err := NewEditSoundboardSound().Execute(ctx, m, 7, 42)
		require.NoError(t, err)
		m.AssertExpectations(t)
	})
}

func TestExecute_Failures(t *testing.T) {
	rejected := &rest.APIError{StatusCode: http.StatusForbidden, Code: rest.ErrCodeMissingPermissions, Message: "Missing Permissions"}
	serverErr := &rest.APIError{StatusCode: http.StatusBadGateway, Body: "bad gateway"}
	rateLimited := &rest.APIError{StatusCode: http.StatusTooManyRequests, Message: "You are being rate limited."}
	unknownSound := &rest.APIError{StatusCode: http.StatusNotFound, Code: 10097, Message: "Unknown Sound"}
	networkErr := errors.New("dial tcp: connection refused")

	tests := []struct {
		name     string
		response []byte
		err      error
		wantKind Kind
		wantIs   error
	}{
		{name: "service rejection", err: rejected, wantKind: KindValidationRejected, wantIs: rejected},
		{name: "unknown reference", err: unknownSound, wantKind: KindValidationRejected, wantIs: unknownSound},
		{name: "server error", err: serverErr, wantKind: KindTransportFailure, wantIs: serverErr},
		{name: "rate limited", err: rateLimited, wantKind: KindTransportFailure, wantIs: rateLimited},
		{name: "network error", err: networkErr, wantKind: KindTransportFailure, wantIs: networkErr},
		{name: "cancelled", err: context.Canceled, wantKind: KindTransportFailure, wantIs: context.Canceled},
		{name: "malformed response", response: []byte(`{"sound_id":`), wantKind: KindTransportFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := new(MockSubmitter)
			if tt.err != nil {
				m.On("Submit", mock.Anything, mock.Anything).Return(nil, tt.err)
			} else {
				m.On("Submit", mock.Anything, mock.Anything).Return(tt.response, nil)
			}

			sound, err := NewEditSoundboardSound().Name("siren").Execute(context.Background(), m, 7, 42)
			require.Error(t, err)
			assert.Nil(t, sound)

			m.AssertNumberOfCalls(t, "Submit", 1)

			var buildErr *Error
			require.ErrorAs(t, err, &buildErr)
			assert.Equal(t, "edit soundboard sound", buildErr.Op)
			assert.Equal(t, tt.wantKind, buildErr.Kind)
			if tt.wantIs != nil {
				assert.ErrorIs(t, err, tt.wantIs)
			}
			assert.Equal(t, tt.wantKind == KindValidationRejected, IsValidationRejected(err))
			assert.Equal(t, tt.wantKind == KindTransportFailure, IsTransportFailure(err))
		})
	}

	t.Run("send sound failure is wrapped", func(t *testing.T) {
		m := new(MockSubmitter)
		m.On("Submit", mock.Anything, mock.Anything).Return(nil, &rest.APIError{StatusCode: http.StatusBadRequest, Code: rest.ErrCodeUserNotInVoice, Message: "not in voice"})

		err := NewSendSoundboardSound(42).Execute(context.Background(), m, 9)
		require.Error(t, err)
		m.AssertNumberOfCalls(t, "Submit", 1)
		assert.True(t, IsValidationRejected(err))
		assert.True(t, rest.IsAPIError(err, rest.ErrCodeUserNotInVoice))
		assert.Contains(t, err.Error(), "send soundboard sound: rejected by service")
	})
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "transport failure", KindTransportFailure.String())
	assert.Equal(t, "rejected by service", KindValidationRejected.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}

func TestEditSoundboardSound_EndToEnd(t *testing.T) {
	var calls int
	var gotMethod, gotPath, gotReason, gotBody string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotReason = r.Header.Get(rest.AuditLogReasonHeader)
		raw, _ := io.ReadAll(r.Body)
		gotBody = string(raw)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(soundResponse))
	}))
	defer server.Close()

	client, err := rest.NewClient(&rest.Config{
		BaseURL:    server.URL,
		Token:      "token",
		RetryDelay: time.Millisecond,
		Logger:     hclog.NewNullLogger(),
	})
	require.NoError(t, err)

	sound, err := NewEditSoundboardSound().
		Name("siren").
		Volume(0.5).
		Execute(context.Background(), client, snowflake.GuildID(7), snowflake.SoundID(42))
	require.NoError(t, err)

	assert.Equal(t, 1, calls)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/guilds/7/soundboard-sounds/42", gotPath)
	assert.Empty(t, gotReason)
	assert.Equal(t, `{"name":"siren","volume":0.5}`, gotBody)

	assert.Equal(t, "siren", sound.Name)
	assert.Equal(t, 0.5, sound.Volume)
	assert.Equal(t, snowflake.SoundID(42), sound.ID)
}

func TestCreateInvite_EndToEndRejection(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code":50035,"message":"Invalid Form Body","errors":{"max_uses":{"_errors":[{"code":"NUMBER_TYPE_MAX","message":"int value should be less than or equal to 100."}]}}}`))
	}))
	defer server.Close()

	client, err := rest.NewClient(&rest.Config{
		BaseURL:    server.URL,
		Token:      "token",
		MaxRetries: 3,
		RetryDelay: time.Millisecond,
	})
	require.NoError(t, err)

	_, err = NewCreateInvite().MaxUses(200).Execute(context.Background(), client, 9)
	require.Error(t, err)

	assert.Equal(t, 1, calls)
	assert.True(t, IsValidationRejected(err))
	assert.True(t, rest.IsAPIError(err, rest.ErrCodeInvalidFormBody))
	assert.Contains(t, err.Error(), "max_uses: int value should be less than or equal to 100.")
}
