package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dan13ram/multichain-tx/models"
)

func TestReadConfigFromENV(t *testing.T) {
	t.Run("Overrides From Environment", func(t *testing.T) {
		Config = models.Config{Logger: models.LoggerConfig{Level: "debug"}}
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("MNEMONIC", "abandon abandon")
		t.Setenv("MONGODB_URI", "mongodb://localhost:27017")
		t.Setenv("MONGODB_DATABASE", "journal")
		t.Setenv("MONGODB_TIMEOUT_MS", "1500")
		t.Setenv("GOOGLE_SECRET_MANAGER_ENABLED", "true")
		t.Setenv("GOOGLE_PROJECT_ID", "project")
		t.Setenv("GOOGLE_MNEMONIC_SECRET_NAME", "mnemonic")

		readConfigFromENV("")

		assert.Equal(t, "warn", Config.Logger.Level)
		assert.Equal(t, "abandon abandon", Config.Mnemonic)
		assert.Equal(t, "mongodb://localhost:27017", Config.MongoDB.URI)
		assert.Equal(t, "journal", Config.MongoDB.Database)
		assert.Equal(t, int64(1500), Config.MongoDB.TimeoutMillis)
		assert.True(t, Config.GoogleSecretManager.Enabled)
		assert.Equal(t, "project", Config.GoogleSecretManager.ProjectID)
		assert.Equal(t, "mnemonic", Config.GoogleSecretManager.MnemonicSecretName)
	})

	t.Run("Invalid Values Ignored", func(t *testing.T) {
		Config = models.Config{MongoDB: models.MongoConfig{TimeoutMillis: 2000}}
		t.Setenv("MONGODB_TIMEOUT_MS", "soon")
		t.Setenv("GOOGLE_SECRET_MANAGER_ENABLED", "maybe")

		readConfigFromENV("")

		assert.Equal(t, int64(2000), Config.MongoDB.TimeoutMillis)
		assert.False(t, Config.GoogleSecretManager.Enabled)
	})

	t.Run("Missing Env File", func(t *testing.T) {
		Config = models.Config{}

		assert.NotPanics(t, func() { readConfigFromENV("../missing.env") })
	})
}
