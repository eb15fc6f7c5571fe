package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ConfigTestSuite tests configuration loading.
type ConfigTestSuite struct {
	suite.Suite
	tempDir string
}

func (s *ConfigTestSuite) SetupSuite() {
	var err error
	s.tempDir, err = os.MkdirTemp("", "config-test-*")
	s.Require().NoError(err)
}

func (s *ConfigTestSuite) TearDownSuite() {
	if s.tempDir != "" {
		os.RemoveAll(s.tempDir)
	}
}

func (s *ConfigTestSuite) writeConfig(content string) string {
	path := filepath.Join(s.tempDir, "config.yaml")
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := Load("")
	s.Require().NoError(err)

	s.Equal(":8080", cfg.Server.Addr)
	s.Equal(20.0, cfg.Server.RateLimit)
	s.Equal("inventory.db", cfg.Database.Path)
	s.False(cfg.Database.GuardSupplierDeletes)
	s.False(cfg.Database.DestructiveMigration)
	s.False(cfg.Log.Debug)
}

func (s *ConfigTestSuite) TestFileOverridesDefaults() {
	path := s.writeConfig(`
server:
  addr: ":9090"
  rate_limit: 5
database:
  path: "/var/lib/bookstock/inventory.db"
  guard_supplier_deletes: true
log:
  debug: true
`)

	cfg, err := Load(path)
	s.Require().NoError(err)

	s.Equal(":9090", cfg.Server.Addr)
	s.Equal(5.0, cfg.Server.RateLimit)
	s.Equal("/var/lib/bookstock/inventory.db", cfg.Database.Path)
	s.True(cfg.Database.GuardSupplierDeletes)
	s.True(cfg.Log.Debug)
	// Unset keys keep their defaults.
	s.False(cfg.Database.DestructiveMigration)
}

func (s *ConfigTestSuite) TestMissingFileFails() {
	_, err := Load(filepath.Join(s.tempDir, "does-not-exist.yaml"))
	s.Error(err)
}

func (s *ConfigTestSuite) TestEmptyDatabasePathRejected() {
	path := s.writeConfig(`
database:
  path: ""
`)

	_, err := Load(path)
	s.Error(err)
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
