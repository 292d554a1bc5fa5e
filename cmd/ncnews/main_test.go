package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tbourn/nc-news/internal/config"
	"github.com/tbourn/nc-news/internal/domain"
	"github.com/tbourn/nc-news/internal/repo"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "ncnews "), out)
}

func TestSeed_TestDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.db")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", path)

	_, err := execute(t, "seed", "--dataset", "test", "--env-file", "")
	require.NoError(t, err)

	db, err := repo.Open(repo.Options{Driver: repo.DriverSQLite, Path: path})
	require.NoError(t, err)
	defer closeDB(db)

	var articles, comments int64
	require.NoError(t, db.Model(&domain.Article{}).Count(&articles).Error)
	require.NoError(t, db.Model(&domain.Comment{}).Count(&comments).Error)
	assert.EqualValues(t, 13, articles)
	assert.EqualValues(t, 18, comments)
}

func TestSeed_UnknownDataset(t *testing.T) {
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "x.db"))
	_, err := execute(t, "seed", "--dataset", "production", "--env-file", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown dataset")
}

func TestLoadConfig_InvalidEnvFails(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	_, err := execute(t, "seed", "--env-file", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "DB_DRIVER")
}

func TestStoreOptions(t *testing.T) {
	c := config.Config{
		DB:   config.DBConfig{Driver: "postgres", URL: "postgres://x", Path: "ignored", MaxOpenConns: 7, LogSQL: true},
		OTEL: config.OTELConfig{Enabled: true},
	}
	got := storeOptions(c)
	assert.Equal(t, repo.Options{
		Driver: "postgres", DSN: "postgres://x", Path: "ignored", MaxOpenConns: 7, Tracing: true, LogSQL: true,
	}, got)
}

func TestServe_StopsOnCancel(t *testing.T) {
	t.Setenv("PORT", "0")
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "serve.db"))
	c, err := config.Load()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, c) }()

	time.Sleep(200 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + 5*time.Second):
		t.Fatal("serve did not return after cancel")
	}
}
