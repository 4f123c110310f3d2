// Package base holds the state and helpers shared by every soundctl command.
package base

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/cli"
	"github.com/pkg/browser"
	"github.com/spf13/afero"
	"gopkg.in/DataDog/dd-trace-go.v1/ddtrace/tracer"
	"gopkg.in/yaml.v3"

	"github.com/hashicorp-forge/soundboard/internal/config"
	"github.com/hashicorp-forge/soundboard/pkg/rest"
)

// Command is embedded by every command.
type Command struct {
	Log hclog.Logger
	UI  cli.Ui

	// FS is where sound files are read from.
	FS afero.Fs

	// Submitter replaces the HTTP client built from the config file. Tests
	// point it at a recorder or an httptest server.
	Submitter rest.Submitter

	// OpenURL opens a link in the user's browser.
	OpenURL func(url string) error

	flagConfig string
	flagFormat string

	closers []func()
}

// New returns a Command writing to ui and reading files from the OS.
func New(log hclog.Logger, ui cli.Ui) *Command {
	return &Command{
		Log:     log,
		UI:      ui,
		FS:      afero.NewOsFs(),
		OpenURL: browser.OpenURL,
	}
}

// AddClientFlags registers the flags used by commands that talk to the API.
func (c *Command) AddClientFlags(f *FlagSet) {
	f.StringVar(
		&c.flagConfig, "config", "",
		"Path to a soundctl HCL config file. Without one the token is read from $"+
			config.DefaultTokenEnv+".",
	)
	c.AddFormatFlag(f)
}

// AddFormatFlag registers -format.
func (c *Command) AddFormatFlag(f *FlagSet) {
	f.StringVar(
		&c.flagFormat, "format", "json",
		"Output format, either \"json\" or \"yaml\".",
	)
}

// Context returns a context cancelled on interrupt.
func (c *Command) Context() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// Client returns the transport used to reach the API.
func (c *Command) Client() (rest.Submitter, error) {
	if c.Submitter != nil {
		return c.Submitter, nil
	}

	cfg := config.Default()
	if c.flagConfig != "" {
		var err error
		cfg, err = config.LoadFile(c.flagConfig)
		if err != nil {
			return nil, err
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if level := cfg.LogLevel(); level != hclog.NoLevel {
		c.Log.SetLevel(level)
	}

	if cfg.Tracing.Enabled {
		tracer.Start(tracer.WithService(cfg.Tracing.Service))
		c.closers = append(c.closers, tracer.Stop)
	}

	restCfg, err := cfg.RESTConfig(c.Log)
	if err != nil {
		return nil, err
	}
	client, err := rest.NewClient(restCfg)
	if err != nil {
		return nil, fmt.Errorf("error creating API client: %w", err)
	}
	c.closers = append(c.closers, client.CloseIdleConnections)

	return client, nil
}

// Close releases whatever Client started.
func (c *Command) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	c.closers = nil
}

// Output prints v in the format chosen with -format. YAML output carries the
// same keys as the JSON wire form.
func (c *Command) Output(v any) int {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		c.UI.Error(fmt.Sprintf("error encoding output: %v", err))
		return 1
	}

	switch c.flagFormat {
	case "", "json":
	case "yaml":
		var doc any
		if err := json.Unmarshal(out, &doc); err != nil {
			c.UI.Error(fmt.Sprintf("error encoding output: %v", err))
			return 1
		}
		if out, err = yaml.Marshal(doc); err != nil {
			c.UI.Error(fmt.Sprintf("error encoding output: %v", err))
			return 1
		}
	default:
		c.UI.Error(fmt.Sprintf("unknown output format %q", c.flagFormat))
		return 1
	}

	c.UI.Output(string(out))
	return 0
}
