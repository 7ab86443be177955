package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vaultkeeper/internal/domain/docindex"
	"vaultkeeper/internal/domain/document"
	"vaultkeeper/internal/domain/record"
)

func setupVault(t *testing.T) {
	t.Helper()
	color.NoColor = true
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "vault.db"))
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestCLI_RecordDocumentFlow(t *testing.T) {
	setupVault(t)

	out, err := run(t, "document", "add", "file:///scans/passport.pdf", "--id", "doc_1", "--json")
	require.NoError(t, err)
	var doc document.Document
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "passport.pdf", doc.Name)
	assert.Equal(t, "application/pdf", doc.MimeType)

	out, err = run(t, "record", "upsert", "e_1",
		"--type", "passport",
		"--data", `{"firstName":" Ann ","dateOfBirth":"1990-02-03"}`,
		"--attach", "doc_1",
		"--json",
	)
	require.NoError(t, err)
	var rec record.Record
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "Passport", rec.Title)
	assert.Equal(t, "Ann", rec.Data["firstName"])

	out, err = run(t, "document", "links", "doc_1", "--json")
	require.NoError(t, err)
	var refs []docindex.Ref
	require.NoError(t, json.Unmarshal([]byte(out), &refs))
	assert.Equal(t, []docindex.Ref{{EntityID: "e_1", RecordID: rec.ID, RecordType: "PASSPORT", Title: "Passport"}}, refs)

	out, err = run(t, "record", "show", "e_1", rec.ID)
	require.NoError(t, err)
	assert.Contains(t, out, "First name: Ann")
	assert.Contains(t, out, "Date of birth: Feb 3, 1990")

	out, err = run(t, "record", "list", "e_1")
	require.NoError(t, err)
	assert.Contains(t, out, rec.ID)
	assert.Contains(t, out, "1 record(s)")

	_, err = run(t, "record", "delete", "e_1", rec.ID)
	require.NoError(t, err)

	out, err = run(t, "document", "links", "doc_1")
	require.NoError(t, err)
	assert.Contains(t, out, "no records attach doc_1")

	_, err = run(t, "record", "get", "e_1", rec.ID)
	assert.ErrorContains(t, err, "not found")
}

func TestCLI_EntityCascade(t *testing.T) {
	setupVault(t)

	out, err := run(t, "entity", "add", "Rex", "--kind", "pet", "--json")
	require.NoError(t, err)
	var e struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &e))

	_, err = run(t, "record", "upsert", e.ID, "--type", "PET_PROFILE", "--attach", "doc_vet")
	require.NoError(t, err)

	_, err = run(t, "entity", "delete", e.ID)
	require.NoError(t, err)

	out, err = run(t, "document", "links", "doc_vet", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)

	_, err = run(t, "entity", "add", "Car", "--kind", "vehicle")
	assert.Error(t, err)
}

func TestCLI_Types(t *testing.T) {
	setupVault(t)

	out, err := run(t, "types", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "PASSPORT")
	assert.Contains(t, out, "Identification")

	out, err = run(t, "types", "fields", "birth_certificate")
	require.NoError(t, err)
	assert.Contains(t, out, "parents.parent1Name")
	assert.Contains(t, out, "parents.includeParents = true")
}

func TestCLI_Errors(t *testing.T) {
	setupVault(t)

	_, err := run(t, "record", "upsert", "e_1")
	assert.Error(t, err, "missing --type")

	_, err = run(t, "record", "upsert", "e_1", "--type", "PASSPORT", "--data", "[1,2]")
	assert.ErrorContains(t, err, "JSON object")

	t.Setenv("STORAGE_DRIVER", "floppy")
	_, err = run(t, "types", "list")
	assert.ErrorContains(t, err, "load config")
}

func TestCLI_IndexRebuild(t *testing.T) {
	setupVault(t)

	out, err := run(t, "index", "rebuild")
	require.NoError(t, err)
	assert.Contains(t, out, "document index rebuilt")
}
