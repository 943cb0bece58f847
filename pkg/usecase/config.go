package usecase

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/issuefork/pkg/domain"
	"github.com/m-mizutani/issuefork/pkg/domain/interfaces"
	"github.com/m-mizutani/issuefork/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

// Directory-local config file names in lookup order.
var localConfigNames = []string{".issuefork.yml", ".issuefork.yaml"}

type configService struct {
	homeDir func() (string, error)
}

func NewConfigService() interfaces.ConfigService {
	return &configService{
		homeDir: os.UserHomeDir,
	}
}

// Load reads and parses the YAML file at path.
func (c *configService) Load(path string) (*model.Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, domain.ErrConfiguration.Wrap(goerr.Wrap(err, "failed to read config file: "+path))
	}

	var config model.Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, domain.ErrConfiguration.Wrap(goerr.Wrap(err, "failed to parse config file: "+path))
	}

	return &config, nil
}

// LoadDefault reads the file at GetDefaultPath. A missing file yields an empty config.
func (c *configService) LoadDefault() (*model.Config, error) {
	path := c.GetDefaultPath()
	if path == "" {
		return &model.Config{}, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return &model.Config{}, nil
	}

	return c.Load(path)
}

// LoadFromDirectory loads the first local config file found in dir and returns
// its path. The path is returned even when parsing fails; an empty path means
// no file was found.
func (c *configService) LoadFromDirectory(dir string) (*model.Config, string, error) {
	path := c.findConfigInDirectory(dir)
	if path == "" {
		return &model.Config{}, "", nil
	}

	config, err := c.Load(path)
	if err != nil {
		return nil, path, err
	}
	return config, path, nil
}

func (c *configService) findConfigInDirectory(dir string) string {
	for _, name := range localConfigNames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

func (c *configService) GetDefaultPath() string {
	home, err := c.homeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "issuefork", "config.yml")
}
