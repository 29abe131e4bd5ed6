package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/linkage/cluster"
	"github.com/katalvlaran/linkage/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, config.PolicyBoth, cfg.Policy)
	assert.Equal(t, 1000, cfg.K)
	assert.Equal(t, 3, cfg.TopGroups)
	assert.Equal(t, []cluster.Method{cluster.MethodLargestGroups, cluster.MethodConnectAll}, cfg.Methods())
}

func TestParse_OverridesDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("policy: connect-all\nk: 10\nworkers: 4\nstrict: true\n"))
	require.NoError(t, err)

	assert.Equal(t, "connect-all", cfg.Policy)
	assert.Equal(t, 10, cfg.K)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, 3, cfg.TopGroups, "unset keys keep defaults")
	assert.Equal(t, []cluster.Method{cluster.MethodConnectAll}, cfg.Methods())

	opts := cfg.ClusterOptions(cluster.MethodConnectAll)
	assert.Equal(t, cluster.Options{
		Method:    cluster.MethodConnectAll,
		K:         10,
		TopGroups: 3,
		Strict:    true,
		Workers:   4,
	}, opts)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown policy": "policy: fastest\n",
		"negative k":     "k: -5\n",
		"zero top":       "top_groups: 0\n",
		"bad level":      "log_level: loud\n",
		"unknown key":    "colour: blue\n",
		"not yaml":       "k: [1, 2\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(doc))
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestLoad(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	path := filepath.Join(t.TempDir(), "linkage.yaml")
	require.NoError(t, os.WriteFile(path, []byte("input: boxes.txt\nlog_level: debug\n"), 0o600))
	cfg, err = config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "boxes.txt", cfg.Input)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
