package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Ledger.File = "books/2024.csv"
	cfg.Git.AutoCommit = true

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Ledger.File, got.Ledger.File)
	assert.Equal(t, cfg.Git.AutoCommit, got.Git.AutoCommit)
	assert.Equal(t, cfg.Git.AuthorName, got.Git.AuthorName)
	assert.Equal(t, cfg.Git.AuthorEmail, got.Git.AuthorEmail)
}

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Equal(t, DefaultLedgerFile, cfg.Ledger.File)
	assert.False(t, cfg.Git.AutoCommit)
	assert.Equal(t, "Tally", cfg.Git.AuthorName)
	assert.Equal(t, "tally@localhost", cfg.Git.AuthorEmail)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "ledger:")
	assert.Contains(t, contents, "file: transactions.csv")
	assert.Contains(t, contents, "auto_commit: false")
}
