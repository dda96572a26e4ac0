package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talkincode/storefront/config"
	"github.com/talkincode/storefront/internal/domain"
	"github.com/talkincode/storefront/internal/kvstore"
)

func boltConfig(t *testing.T) (*config.AppConfig, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yml")
	yml := "system:\n  workdir: " + dir + "\n  location: UTC\nstorage:\n  type: bolt\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))
	cfg, err := config.LoadConfig(path)
	require.NoError(t, err)
	return cfg, path
}

func TestExportWritesPersistedCatalog(t *testing.T) {
	cfg, path := boltConfig(t)
	kv, err := kvstore.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, kvstore.Save(kv, kvstore.KeyProducts, []domain.Product{
		{ID: 7, TitleFr: "Tapis", TitleAr: "سجادة", Price: 4500, Stock: 1, StockAlert: 2},
	}))
	require.NoError(t, kv.Close())

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetArgs([]string{"export", "-c", path, "--format", "csv"})
	require.NoError(t, root.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "id,title_fr,title_ar"))
	assert.Contains(t, lines[1], "Tapis")
	assert.Contains(t, lines[1], "low_stock")
}

func TestExportFallsBackToDefaultCatalog(t *testing.T) {
	cfg, _ := boltConfig(t)
	var out bytes.Buffer
	require.NoError(t, runExport(&out, cfg, "xlsx"))
	// xlsx is a zip archive
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("PK")))
}

func TestExportCreatesNothing(t *testing.T) {
	cfg, _ := boltConfig(t)
	var out bytes.Buffer
	require.NoError(t, runExport(&out, cfg, "csv"))
	assert.Len(t, strings.Split(strings.TrimSpace(out.String()), "\n"), len(domain.DefaultCatalog())+1)

	_, err := os.Stat(cfg.GetDataDir())
	assert.True(t, os.IsNotExist(err), "data dir must not be created")
}

func TestExportLeavesExistingFileUntouched(t *testing.T) {
	cfg, _ := boltConfig(t)
	kv, err := kvstore.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, kv.Close())
	path := kvstore.BoltPath(cfg)
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, runExport(&bytes.Buffer{}, cfg, "csv"))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "no boot write on export")
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	cfg, _ := boltConfig(t)
	assert.Error(t, runExport(&bytes.Buffer{}, cfg, "pdf"))
}
