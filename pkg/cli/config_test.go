package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toyinlola/fmtai/pkg/ai"
	"github.com/toyinlola/fmtai/pkg/interfaces"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	t.Setenv(EndpointEnv, "")

	cfg := DefaultConfig()
	assert.Equal(t, ai.DefaultEndpoint, cfg.AI.Endpoint)
	assert.Equal(t, ai.DefaultModel, cfg.AI.Model)
	assert.Equal(t, "DEEPSEEK_API_KEY", cfg.AI.APIKeyEnv)
	assert.Equal(t, 60*time.Second, cfg.AI.Timeout)
	assert.Equal(t, ai.DefaultMaxTokens, cfg.AI.MaxTokens)
	assert.Equal(t, interfaces.DefaultFormatConfig(), cfg.Format)
	assert.Equal(t, "positional", cfg.Diff.Mode)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Zero(t, cfg.Cache.Size)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_MissingDefaultFile(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yml"))
	assert.Error(t, err)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	t.Setenv(EndpointEnv, "")
	path := writeFile(t, t.TempDir(), "fmtai.yml", `
version: "1"
ai:
  model: deepseek-coder
  timeout: 90s
format:
  indent_size: 4
  style_guide: airbnb
  refactor_options:
    simplify_conditions: true
diff:
  mode: aligned
cache:
  size: 64
log:
  file: fmtai.log
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "deepseek-coder", cfg.AI.Model)
	assert.Equal(t, 90*time.Second, cfg.AI.Timeout)
	assert.Equal(t, ai.DefaultEndpoint, cfg.AI.Endpoint)
	assert.Equal(t, 4, cfg.Format.IndentSize)
	assert.Equal(t, 80, cfg.Format.MaxLineWidth)
	assert.True(t, cfg.Format.PreserveComments, "unset bool keeps its default")
	assert.Equal(t, interfaces.StyleAirbnb, cfg.Format.StyleGuide)
	assert.True(t, cfg.Format.RefactorOptions.SimplifyConditions)
	assert.False(t, cfg.Format.RefactorOptions.ExtractFunctions)
	assert.Equal(t, "aligned", cfg.Diff.Mode)
	assert.Equal(t, 64, cfg.Cache.Size)
	assert.Equal(t, 15, cfg.Log.MaxSizeMB)
}

func TestLoadConfig_Invalid(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"bad yaml":        "ai: [unterminated",
		"bad indent":      "format:\n  indent_size: 3\n",
		"bad diff mode":   "diff:\n  mode: lcs\n",
		"bad provider":    "ai:\n  provider: carrier-pigeon\n",
		"bad style guide": "format:\n  style_guide: google\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, dir, name+".yml", content)
			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestApplyDefaults_EndpointEnvOverride(t *testing.T) {
	t.Setenv(EndpointEnv, "https://proxy.internal/v1")
	cfg := DefaultConfig()
	assert.Equal(t, "https://proxy.internal/v1", cfg.AI.Endpoint)
}

func TestAIConfig_ProviderConfig(t *testing.T) {
	t.Setenv("CUSTOM_KEY", "  sk-123 ")
	a := AIConfig{Provider: "openai-compatible", Endpoint: "http://x", Model: "m", APIKeyEnv: "CUSTOM_KEY"}

	pc := a.ProviderConfig()
	assert.Equal(t, "sk-123", pc.APIKey)
	assert.Equal(t, "http://x", pc.Endpoint)
	assert.Equal(t, ai.ProviderOpenAICompatible, pc.Type)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))

	t.Setenv("FMTAI_TEST_PRESET", "keep")
	path := writeFile(t, dir, ".env", "FMTAI_TEST_FROM_FILE=loaded\nFMTAI_TEST_PRESET=overwritten\n")
	t.Cleanup(func() { _ = os.Unsetenv("FMTAI_TEST_FROM_FILE") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("FMTAI_TEST_FROM_FILE"))
	assert.Equal(t, "keep", os.Getenv("FMTAI_TEST_PRESET"))
}
