package main

import (
	"bytes"
	"context"
	"flag"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mpu/internal/config"
)

func TestPromptConfirmer(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    bool
		prompts int
	}{
		{name: "confirm", input: "confirm\n", want: true, prompts: 1},
		{name: "quit", input: "quit\n", want: false, prompts: 1},
		{name: "asks again until a known answer", input: "yes\n\n  Confirm \n", want: true, prompts: 3},
		{name: "end of input", input: "maybe\n", want: false, prompts: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			c := newPromptConfirmer(strings.NewReader(tt.input), &out)

			got, err := c.Confirm(context.Background(), "About to update 2 price(s).")

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, strings.HasPrefix(out.String(), "About to update 2 price(s).\n"))
			assert.Equal(t, tt.prompts, strings.Count(out.String(), `Type "confirm"`))
		})
	}
}

func TestPromptConfirmer_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newPromptConfirmer(strings.NewReader("confirm\n"), &bytes.Buffer{})
	got, err := c.Confirm(ctx, "prompt")

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, got)
}

func TestStrategyConfigs(t *testing.T) {
	configured := config.StrategiesConfig{
		CurrentPrice: config.StrategyConfig{Name: "median"},
		PriceUpdate:  config.StrategyConfig{Name: "bounded"},
	}

	current, update, err := strategyConfigs(configured, nil)
	require.NoError(t, err)
	assert.Equal(t, "median", current.Name)
	assert.Equal(t, "bounded", update.Name)

	current, update, err = strategyConfigs(configured, []string{"market_and_lower"})
	require.NoError(t, err)
	assert.Equal(t, "market_and_lower", current.Name)
	assert.Equal(t, "bounded", update.Name)

	current, update, err = strategyConfigs(configured, []string{"median", "initial"})
	require.NoError(t, err)
	assert.Equal(t, "median", current.Name)
	assert.Equal(t, "initial", update.Name)

	_, _, err = strategyConfigs(configured, []string{"median", "initial", "extra"})
	assert.Error(t, err)
}

func TestOptionsApply(t *testing.T) {
	var stderr bytes.Buffer
	fs, opts := newFlagSet("getstock", &stderr)
	require.NoError(t, fs.Parse([]string{"-minimum-price", "0.5", "-parallel=false", "-workers", "2", "median"}))
	opts.set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	cfg, err := config.Parse([]byte("cache:\n  path: /var/cache/mpu\n"))
	require.NoError(t, err)
	opts.apply(cfg)

	assert.Equal(t, 0.5, cfg.Pricing.MinimumPrice)
	assert.False(t, cfg.Pricing.ParallelEnabled())
	assert.Equal(t, 2, cfg.Pricing.Workers)
	assert.Equal(t, "/var/cache/mpu", cfg.Cache.Path)
	assert.Equal(t, []string{"median"}, fs.Args())
}

func TestRun_UsageErrors(t *testing.T) {
	var stderr bytes.Buffer

	assert.Equal(t, 2, run("unknown", nil, strings.NewReader(""), &stderr))
	assert.Contains(t, stderr.String(), `unknown command "unknown"`)

	assert.Equal(t, 2, run("getstock", []string{"-no-such-flag"}, strings.NewReader(""), &stderr))
	assert.Equal(t, 0, run("help", nil, strings.NewReader(""), &stderr))
}

func TestRun_MissingConfig(t *testing.T) {
	var stderr bytes.Buffer

	code := run("stats", []string{"-config", t.TempDir() + "/missing.yaml"}, strings.NewReader(""), &stderr)

	assert.Equal(t, 1, code)
}
