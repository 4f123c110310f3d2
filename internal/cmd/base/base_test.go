package base

import (
	"context"
	"flag"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hashicorp-forge/soundboard/internal/config"
	"github.com/hashicorp-forge/soundboard/pkg/rest"
	"github.com/hashicorp-forge/soundboard/pkg/snowflake"
)

func TestFlagName(t *testing.T) {
	tests := map[string]string{
		"name":                  "name",
		"max_uses":              "max-uses",
		"target_application_id": "target-application-id",
		"source_guild_id":       "source-guild-id",
	}
	for field, want := range tests {
		t.Run(field, func(t *testing.T) {
			assert.Equal(t, want, FlagName(field))
		})
	}
}

func TestFlagSet_IsSet(t *testing.T) {
	var volume float64
	var guild snowflake.GuildID

	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	f.Float64Var(&volume, "volume", 1, "")
	IDVar(f, &guild, "guild", "")

	require.NoError(t, f.Parse([]string{"-volume=1", "-guild", "81384788765712384"}))

	assert.True(t, f.IsSet("volume"), "explicit default still counts as set")
	assert.True(t, f.IsSet("guild"))
	assert.False(t, f.IsSet("name"))
	assert.Equal(t, snowflake.GuildID(81384788765712384), guild)
}

func TestIDVar_RejectsBadInput(t *testing.T) {
	var sound snowflake.SoundID

	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	IDVar(f, &sound, "sound", "")

	err := f.Parse([]string{"-sound=abc"})
	assert.ErrorContains(t, err, "invalid snowflake")
}

func TestFlagSet_Help(t *testing.T) {
	var name string
	var sound snowflake.SoundID

	f := NewFlagSet(flag.NewFlagSet("test", flag.ContinueOnError))
	f.StringVar(&name, "format", "json", "Output format.")
	IDVar(f, &sound, "sound", "(Required) Sound.")

	help := f.Help()
	assert.Contains(t, help, "-format=json")
	assert.Contains(t, help, "Output format.")
	assert.Contains(t, help, "-sound\n")
}

func TestOutput(t *testing.T) {
	payload := map[string]any{"sound_id": "42", "volume": 0.5}

	t.Run("json", func(t *testing.T) {
		ui := cli.NewMockUi()
		c := New(hclog.NewNullLogger(), ui)

		require.Equal(t, 0, c.Output(payload))
		assert.JSONEq(t, `{"sound_id":"42","volume":0.5}`, ui.OutputWriter.String())
	})

	t.Run("yaml", func(t *testing.T) {
		ui := cli.NewMockUi()
		c := New(hclog.NewNullLogger(), ui)
		c.flagFormat = "yaml"

		require.Equal(t, 0, c.Output(payload))
		assert.Contains(t, ui.OutputWriter.String(), `sound_id: "42"`)
		assert.Contains(t, ui.OutputWriter.String(), "volume: 0.5")
	})

	t.Run("unknown", func(t *testing.T) {
		ui := cli.NewMockUi()
		c := New(hclog.NewNullLogger(), ui)
		c.flagFormat = "xml"

		assert.Equal(t, 1, c.Output(payload))
		assert.Contains(t, ui.ErrorWriter.String(), `unknown output format "xml"`)
	})
}

func TestClient(t *testing.T) {
	t.Run("override", func(t *testing.T) {
		c := New(hclog.NewNullLogger(), cli.NewMockUi())
		c.Submitter = rest.SubmitterFunc(func(context.Context, *rest.Request) ([]byte, error) {
			return nil, nil
		})
		c.flagConfig = "/does/not/exist.hcl"

		s, err := c.Client()
		require.NoError(t, err)
		assert.NotNil(t, s)
	})

	t.Run("missing config file", func(t *testing.T) {
		c := New(hclog.NewNullLogger(), cli.NewMockUi())
		c.flagConfig = "/does/not/exist.hcl"

		_, err := c.Client()
		assert.ErrorContains(t, err, "configuration file not found")
	})

	t.Run("missing token", func(t *testing.T) {
		t.Setenv(config.DefaultTokenEnv, "")
		c := New(hclog.NewNullLogger(), cli.NewMockUi())

		_, err := c.Client()
		assert.ErrorContains(t, err, "error creating API client")
	})

	t.Run("token from environment", func(t *testing.T) {
		t.Setenv(config.DefaultTokenEnv, "secret")
		c := New(hclog.NewNullLogger(), cli.NewMockUi())

		s, err := c.Client()
		require.NoError(t, err)
		defer c.Close()
		assert.IsType(t, &rest.Client{}, s)
	})
}
