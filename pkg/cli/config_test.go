package cli_test

import (
	"errors"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/m-mizutani/issuefork/pkg/cli"
	"github.com/m-mizutani/issuefork/pkg/domain"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
)

func TestConfig(t *testing.T) {
	t.Run("defaults without file or flags", func(t *testing.T) {
		rc, err := (&cli.Config{}).ToReplicateConfig(nil)
		gt.NoError(t, err)
		gt.Equal(t, rc.Repositories, model.DefaultRepositories)
		gt.Equal(t, rc.Host, "github.com")
		gt.Equal(t, rc.Delay, time.Second)
		gt.Equal(t, rc.ForkWait, 3*time.Second)
		gt.Equal(t, rc.FallbackColor, "ededed")
		gt.False(t, rc.LinkSource)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		file := &model.Config{
			Repositories: []string{"octo/one"},
			Host:         "ghe.example.com",
			Delay:        "250ms",
			LinkSource:   true,
		}
		rc, err := (&cli.Config{}).ToReplicateConfig(file)
		gt.NoError(t, err)
		gt.Equal(t, rc.Repositories, []string{"octo/one"})
		gt.Equal(t, rc.Host, "ghe.example.com")
		gt.Equal(t, rc.Delay, 250*time.Millisecond)
		gt.True(t, rc.LinkSource)
	})

	t.Run("flags override file", func(t *testing.T) {
		host := "github.com"
		delay := time.Duration(0)
		link := false
		config := &cli.Config{Host: &host, Delay: &delay, LinkSource: &link}

		rc, err := config.ToReplicateConfig(&model.Config{Host: "ghe.example.com", Delay: "5s", LinkSource: true})
		gt.NoError(t, err)
		gt.Equal(t, rc.Host, "github.com")
		gt.Equal(t, rc.Delay, time.Duration(0))
		gt.False(t, rc.LinkSource)
	})

	t.Run("invalid file values are configuration errors", func(t *testing.T) {
		_, err := (&cli.Config{}).ToReplicateConfig(&model.Config{ForkWait: "soon"})
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrConfiguration))
	})

	t.Run("negative delay is rejected", func(t *testing.T) {
		delay := -time.Second
		_, err := (&cli.Config{Delay: &delay}).ToReplicateConfig(nil)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, domain.ErrConfiguration))
	})
}
