package options

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type config struct {
	level int
	name  string
}

func withLevel(level int) Option[*config] {
	return New(func(c *config) error {
		if level < 0 {
			return errors.New("negative level")
		}
		c.level = level

		return nil
	})
}

func withName(name string) Option[*config] {
	return New(func(c *config) error {
		c.name = name
		return nil
	})
}

func TestApply(t *testing.T) {
	cfg := &config{}
	err := Apply(cfg, withLevel(3), withName("zstd"))

	require.NoError(t, err)
	require.Equal(t, 3, cfg.level)
	require.Equal(t, "zstd", cfg.name)
}

func TestApplyNoOptions(t *testing.T) {
	cfg := &config{level: 7}
	require.NoError(t, Apply(cfg))
	require.Equal(t, 7, cfg.level)
}

func TestApplyStopsOnError(t *testing.T) {
	cfg := &config{}
	err := Apply(cfg, withLevel(-1), withName("never"))

	require.Error(t, err)
	require.Empty(t, cfg.name, "options after a failure must not be applied")
}

func TestApplyOrder(t *testing.T) {
	cfg := &config{}
	require.NoError(t, Apply(cfg, withLevel(1), withLevel(2)))
	require.Equal(t, 2, cfg.level, "later options override earlier ones")
}
