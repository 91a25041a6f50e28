package app

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dan13ram/multichain-tx/app/mocks"
	"github.com/dan13ram/multichain-tx/models"
)

func withMockDatabase(t *testing.T, mockDB Database) {
	t.Helper()
	original := newDatabase
	newDatabase = func(models.MongoConfig) Database {
		return mockDB
	}
	t.Cleanup(func() {
		newDatabase = original
		DB = nil
	})
}

func TestInitDB(t *testing.T) {
	t.Run("Not Configured", func(t *testing.T) {
		Config = models.Config{}
		withMockDatabase(t, nil)

		InitDB()

		assert.Nil(t, DB)
	})

	t.Run("Success", func(t *testing.T) {
		Config = models.Config{MongoDB: models.MongoConfig{URI: "mongodb://localhost:27017", Database: "db", TimeoutMillis: 1000}}
		mockDB := mocks.NewMockDatabase(t)
		withMockDatabase(t, mockDB)

		mockDB.EXPECT().Connect().Return(nil)
		mockDB.EXPECT().SetupIndexes().Return(nil)
		mockDB.EXPECT().SetupLockers().Return(nil)

		InitDB()

		assert.Equal(t, mockDB, DB)
	})

	t.Run("Connect Error", func(t *testing.T) {
		Config = models.Config{MongoDB: models.MongoConfig{URI: "mongodb://localhost:27017", Database: "db", TimeoutMillis: 1000}}
		mockDB := mocks.NewMockDatabase(t)
		withMockDatabase(t, mockDB)

		mockDB.EXPECT().Connect().Return(errors.New("connection refused"))

		expectFatal(t, InitDB)
	})

	t.Run("Indexes Error", func(t *testing.T) {
		Config = models.Config{MongoDB: models.MongoConfig{URI: "mongodb://localhost:27017", Database: "db", TimeoutMillis: 1000}}
		mockDB := mocks.NewMockDatabase(t)
		withMockDatabase(t, mockDB)

		mockDB.EXPECT().Connect().Return(nil)
		mockDB.EXPECT().SetupIndexes().Return(errors.New("index error"))

		expectFatal(t, InitDB)
	})
}

func TestCloseDB(t *testing.T) {
	t.Run("Not Configured", func(t *testing.T) {
		DB = nil
		assert.NotPanics(t, CloseDB)
	})

	t.Run("Disconnect", func(t *testing.T) {
		mockDB := mocks.NewMockDatabase(t)
		DB = mockDB
		defer func() { DB = nil }()

		mockDB.EXPECT().Disconnect().Return(errors.New("already closed"))

		CloseDB()
	})
}

func TestRandomString(t *testing.T) {
	first := randomString(32)
	second := randomString(32)

	assert.Equal(t, 32, len(first))
	assert.NotEqual(t, first, second)
}
