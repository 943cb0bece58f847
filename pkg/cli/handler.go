package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/issuefork/pkg/domain"
	"github.com/m-mizutani/issuefork/pkg/domain/interfaces"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
	"github.com/m-mizutani/issuefork/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func RunReplicate(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return fmt.Errorf("unexpected argument %q\nRun 'issuefork --help' for usage", cmd.Args().First())
	}

	logLevel := slog.LevelWarn
	if cmd.Bool("debug") {
		logLevel = slog.LevelDebug
	} else if cmd.Bool("verbose") {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	ctx = ctxlog.With(ctx, logger)

	config := NewConfigFromCommand(cmd)
	fileConfig, configPath, err := loadConfigFile(usecase.NewConfigService(), config.ConfigPath)
	if err != nil {
		return err
	}
	if configPath != "" {
		logger.Info("loaded config file", slog.String("path", configPath))
	}

	replicateConfig, err := config.ToReplicateConfig(fileConfig)
	if err != nil {
		return err
	}

	out := outputOf(cmd)

	authService := usecase.NewAuthService(usecase.NewGhCLI(), replicateConfig.Host, usecase.WithAuthOutput(out))
	client, err := authService.GetAuthenticatedClient(ctx)
	if err != nil {
		return err
	}

	replicate := usecase.NewReplicateUseCase(usecase.ReplicateUseCaseOptions{
		GitHub:    usecase.NewGitHubService(client),
		Display:   NewConsoleDisplay(out),
		Hooks:     usecase.NewHookExecutor(fileConfig),
		Snapshots: usecase.NewSnapshotStorage(replicateConfig.SnapshotDir),
		Config:    replicateConfig,
	})

	fmt.Fprintf(out, "\n🚀 Starting issuefork\n")
	fmt.Fprintf(out, "Host: %s\n", replicateConfig.Host)
	fmt.Fprintf(out, "Repositories: %d\n", len(replicateConfig.Repositories))
	fmt.Fprintf(out, "Delay: %s\n", replicateConfig.Delay)

	// Per-repository failures are reported in the summary and do not change the exit code.
	if _, err := replicate.Execute(ctx); err != nil {
		return err
	}
	return nil
}

// loadConfigFile resolves the config file: an explicit path, then a file in the
// working directory, then the per-user default. No file at all is fine.
func loadConfigFile(svc interfaces.ConfigService, explicit string) (*model.Config, string, error) {
	if explicit != "" {
		config, err := svc.Load(explicit)
		if err != nil {
			return nil, explicit, err
		}
		return config, explicit, nil
	}

	currentDir, err := os.Getwd()
	if err != nil {
		return nil, "", domain.ErrConfiguration.Wrap(err)
	}

	config, path, err := svc.LoadFromDirectory(currentDir)
	if err != nil {
		return nil, path, err
	}
	if path != "" {
		return config, path, nil
	}

	defaultPath := svc.GetDefaultPath()
	config, err = svc.LoadDefault()
	if err != nil {
		return nil, defaultPath, err
	}
	if defaultPath == "" {
		return config, "", nil
	}
	if _, err := os.Stat(defaultPath); err != nil {
		return config, "", nil
	}
	return config, defaultPath, nil
}

func outputOf(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
