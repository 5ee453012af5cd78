package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/handiism/gamevault/internal/config"
	"github.com/handiism/gamevault/internal/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command against a settings file in a temp dir
// with a fixed seed so generated IDs are stable between calls.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cfg := filepath.Join(t.TempDir(), "settings.json")
	base := []string{"--config", cfg, "--seed", "42", "--count", "30", "--log-level", "error"}

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append(args, base...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func listJSON(t *testing.T, args ...string) pageDoc {
	t.Helper()

	out, _, err := execute(t, append([]string{"list", "-o", "json"}, args...)...)
	require.NoError(t, err)

	var doc pageDoc
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	return doc
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "30 games · page 1 of 3")
	assert.Contains(t, out, "Más recientes")

	doc := listJSON(t)
	assert.Equal(t, 1, doc.Page)
	assert.Equal(t, 3, doc.TotalPages)
	assert.Equal(t, 30, doc.TotalItems)
	assert.Len(t, doc.Items, 12)
}

func TestListClampsPage(t *testing.T) {
	doc := listJSON(t, "--page", "99")
	assert.Equal(t, 3, doc.Page)
	assert.Len(t, doc.Items, 6)
}

func TestListPageSize(t *testing.T) {
	doc := listJSON(t, "--page-size", "25")
	assert.Equal(t, 2, doc.TotalPages)
	assert.Len(t, doc.Items, 25)
}

func TestListFilters(t *testing.T) {
	doc := listJSON(t, "--category", "RPG", "--min-rating", "4", "--page-size", "50")
	for _, item := range doc.Items {
		assert.Equal(t, "RPG", item.Category)
		assert.GreaterOrEqual(t, item.Rating, 4.0)
	}
	assert.Equal(t, len(doc.Items), doc.TotalItems)
}

func TestListRejectsBadFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"sort", []string{"--sort", "price"}, "unknown sort key"},
		{"category", []string{"--category", "Puzzle"}, "unknown category"},
		{"genre", []string{"--genre", "Racing"}, "unknown genre"},
		{"popularity", []string{"--popularity", "hot"}, "unknown popularity"},
		{"size", []string{"--size", "huge"}, "unknown size"},
		{"output", []string{"-o", "csv"}, "unknown output format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, append([]string{"list"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestShow(t *testing.T) {
	doc := listJSON(t)
	require.NotEmpty(t, doc.Items)
	item := doc.Items[0]

	out, _, err := execute(t, "show", item.ID)
	require.NoError(t, err)
	assert.Contains(t, out, item.Title)
	assert.Contains(t, out, "Requirements")
	assert.Contains(t, out, "Reviews (5)")
}

func TestShowUnknownItem(t *testing.T) {
	_, _, err := execute(t, "show", "missing")
	assert.ErrorIs(t, err, state.ErrUnknownItem)
}

func TestLogin(t *testing.T) {
	out, _, err := execute(t, "login", "--email", "ana@example.com", "--password", "secret1")
	require.NoError(t, err)
	assert.Contains(t, out, "Signed in as ana <ana@example.com>")

	_, stderr, err := execute(t, "login", "--email", "ana", "--password", "123")
	assert.ErrorIs(t, err, errInvalidForm)
	assert.Contains(t, stderr, "email: Email inválido")
	assert.Contains(t, stderr, "password: La contraseña debe tener al menos 6 caracteres")
}

func TestRegister(t *testing.T) {
	out, _, err := execute(t, "register",
		"--username", "ana", "--email", "ana@example.com",
		"--password", "secret1", "--confirm-password", "secret1", "--accept-terms")
	require.NoError(t, err)
	assert.Contains(t, out, "Registered as ana <ana@example.com>")

	_, stderr, err := execute(t, "register",
		"--username", "an", "--email", "ana@example.com",
		"--password", "secret1", "--confirm-password", "secret2")
	assert.ErrorIs(t, err, errInvalidForm)
	assert.Contains(t, stderr, "username:")
	assert.Contains(t, stderr, "confirmPassword:")
	assert.Contains(t, stderr, "acceptTerms:")
}

func TestContact(t *testing.T) {
	t.Setenv(config.EnvSendDelay, "0")

	out, _, err := execute(t, "contact",
		"--name", "Ana", "--email", "ana@example.com",
		"--subject", "Problema de descarga", "--message", "La descarga se detiene al 50%.")
	require.NoError(t, err)
	assert.Contains(t, out, "Mensaje enviado")

	_, stderr, err := execute(t, "contact", "--name", "A", "--email", "ana@example.com",
		"--subject", "Hola", "--message", "corto")
	assert.ErrorIs(t, err, errInvalidForm)
	assert.Contains(t, stderr, "name:")
	assert.Contains(t, stderr, "subject:")
	assert.Contains(t, stderr, "message:")
}

func TestDownload(t *testing.T) {
	t.Setenv(config.EnvDownloadSpeed, "100000")

	doc := listJSON(t)
	require.NotEmpty(t, doc.Items)
	id := doc.Items[0].ID

	_, _, err := execute(t, "download", id)
	assert.ErrorIs(t, err, errLoginRequired)

	out, _, err := execute(t, "download", id, "--email", "ana@example.com", "--password", "secret1")
	require.NoError(t, err)
	assert.Contains(t, out, "Downloaded: ")
	assert.Contains(t, out, "1 of 1 downloads complete")

	_, _, err = execute(t, "download", "missing", "--email", "ana@example.com", "--password", "secret1")
	assert.ErrorIs(t, err, state.ErrUnknownItem)
}

func TestDownloadSeveral(t *testing.T) {
	t.Setenv(config.EnvDownloadSpeed, "100000")

	doc := listJSON(t)
	require.GreaterOrEqual(t, len(doc.Items), 4)

	args := []string{"download", "--email", "ana@example.com", "--password", "secret1"}
	for _, item := range doc.Items[:4] {
		args = append(args, item.ID)
	}

	out, _, err := execute(t, args...)
	require.NoError(t, err)
	assert.Equal(t, 4, strings.Count(out, "Downloaded: "))
	assert.Contains(t, out, "4 of 4 downloads complete")
}

func TestExportRoundTrip(t *testing.T) {
	for _, ext := range []string{"yaml", "json"} {
		t.Run(ext, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog."+ext)

			out, _, err := execute(t, "export", "--out", path, "--reviews", "2")
			require.NoError(t, err)
			assert.Contains(t, out, "Wrote 30 items and 60 reviews")

			want := listJSON(t)
			got := listJSON(t, "--catalog", path)
			assert.Equal(t, want.TotalItems, got.TotalItems)
			assert.Equal(t, want.Items, got.Items)

			show, _, err := execute(t, "show", "--catalog", path, got.Items[0].ID)
			require.NoError(t, err)
			assert.Contains(t, show, "Reviews (2)")
		})
	}
}

func TestExportRejectsUnknownExtension(t *testing.T) {
	_, _, err := execute(t, "export", "--out", filepath.Join(t.TempDir(), "catalog.csv"))
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "gamevault dev")
}
