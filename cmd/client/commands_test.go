package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-file-share/internal/adapter"
	"github.com/MKhiriev/go-file-share/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdapter records calls; unset behaviours return zero values.
type fakeAdapter struct {
	adapter.ServerAdapter

	token     string
	uploaded  adapter.UploadFile
	retrieved models.RetrieveFileRequest
	file      adapter.RetrievedFile
	sent      models.SentFilesResponse
	revoked   uuid.UUID
}

func (f *fakeAdapter) SetToken(token string) { f.token = token }
func (f *fakeAdapter) Token() string         { return f.token }

func (f *fakeAdapter) Register(_ context.Context, req models.RegisterUserRequest) (string, error) {
	f.token = "token-for-" + req.Email
	return f.token, nil
}

func (f *fakeAdapter) Upload(_ context.Context, file adapter.UploadFile) (models.UploadResponse, error) {
	f.uploaded = file
	return models.UploadResponse{
		File: models.FileResponse{ID: uuid.New()},
		Link: &models.ShareLinkResponse{LinkID: uuid.New(), SharedID: "shared-token"},
	}, nil
}

func (f *fakeAdapter) Retrieve(_ context.Context, req models.RetrieveFileRequest) (adapter.RetrievedFile, error) {
	f.retrieved = req
	return f.file, nil
}

func (f *fakeAdapter) RevokeLink(_ context.Context, linkID uuid.UUID) error {
	f.revoked = linkID
	return nil
}

func (f *fakeAdapter) ListSent(context.Context, models.Page) (models.SentFilesResponse, error) {
	return f.sent, nil
}

func newTestCommandLine(t *testing.T, fake *fakeAdapter) (*commandLine, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &commandLine{
		adapter:   fake,
		tokenFile: filepath.Join(t.TempDir(), "token"),
		out:       &out,
	}, &out
}

func TestRun_UnknownCommand(t *testing.T) {
	cli, _ := newTestCommandLine(t, &fakeAdapter{})

	assert.ErrorIs(t, cli.run(context.Background(), nil), errUsage)
	assert.ErrorIs(t, cli.run(context.Background(), []string{"frobnicate"}), errUsage)
}

func TestVersion_WithoutBuildFlags(t *testing.T) {
	cli, out := newTestCommandLine(t, &fakeAdapter{})

	require.NoError(t, cli.run(context.Background(), []string{"version"}))
	assert.Equal(t, "version N/A, date N/A, commit N/A\n", out.String())
}

func TestRegister_SavesToken(t *testing.T) {
	fake := &fakeAdapter{}
	cli, out := newTestCommandLine(t, fake)

	err := cli.run(context.Background(), []string{"register", "-name", "alice", "-email", "alice@example.com", "-password", "12345678"})
	require.NoError(t, err)

	saved, err := os.ReadFile(cli.tokenFile)
	require.NoError(t, err)
	assert.Equal(t, "token-for-alice@example.com", string(saved))
	assert.Contains(t, out.String(), "registered alice@example.com")
}

func TestUpload_RequiresLogin(t *testing.T) {
	cli, _ := newTestCommandLine(t, &fakeAdapter{})
	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4.."), 0o600))

	err := cli.run(context.Background(), []string{"upload", "-file", path})
	assert.ErrorContains(t, err, "not logged in")
}

func TestUpload_SharesWithOptions(t *testing.T) {
	fake := &fakeAdapter{}
	cli, out := newTestCommandLine(t, fake)
	require.NoError(t, os.WriteFile(cli.tokenFile, []byte("tok"), 0o600))

	path := filepath.Join(t.TempDir(), "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4.."), 0o600))

	before := time.Now()
	err := cli.run(context.Background(), []string{"upload", "-file", path, "-to", "bob@example.com", "-password", "s3cr3t-pass", "-expires", "2h"})
	require.NoError(t, err)

	assert.Equal(t, "tok", fake.token)
	assert.Equal(t, "report.pdf", fake.uploaded.Filename)
	assert.Equal(t, []byte("%PDF-1.4.."), fake.uploaded.Content)
	assert.True(t, fake.uploaded.Share)
	assert.Equal(t, "bob@example.com", fake.uploaded.Link.RecipientEmail)
	assert.Equal(t, "s3cr3t-pass", fake.uploaded.Link.Password)
	require.NotNil(t, fake.uploaded.Link.ExpirationDate)
	assert.WithinDuration(t, before.Add(2*time.Hour), *fake.uploaded.Link.ExpirationDate, 5*time.Second)
	assert.Contains(t, out.String(), "shared id: shared-token")
}

func TestUpload_PermanentLink(t *testing.T) {
	fake := &fakeAdapter{}
	cli, _ := newTestCommandLine(t, fake)
	require.NoError(t, os.WriteFile(cli.tokenFile, []byte("tok"), 0o600))
	path := filepath.Join(t.TempDir(), "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))

	require.NoError(t, cli.run(context.Background(), []string{"upload", "-file", path, "-expires", "0"}))
	assert.Nil(t, fake.uploaded.Link.ExpirationDate)
}

func TestRetrieve_SavesUnderBaseName(t *testing.T) {
	fake := &fakeAdapter{file: adapter.RetrievedFile{Filename: "../../etc/evil", Content: []byte("payload")}}
	cli, _ := newTestCommandLine(t, fake)
	dir := t.TempDir()

	err := cli.run(context.Background(), []string{"retrieve", "-id", "shared-token", "-password", "s3cr3t-pass", "-out", dir})
	require.NoError(t, err)

	assert.Equal(t, models.RetrieveFileRequest{SharedID: "shared-token", Password: "s3cr3t-pass"}, fake.retrieved)
	content, err := os.ReadFile(filepath.Join(dir, "evil"))
	require.NoError(t, err)
	assert.Equal(t, "payload", string(content))
}

func TestRevoke(t *testing.T) {
	fake := &fakeAdapter{}
	cli, _ := newTestCommandLine(t, fake)
	require.NoError(t, os.WriteFile(cli.tokenFile, []byte("tok"), 0o600))

	linkID := uuid.New()
	require.NoError(t, cli.run(context.Background(), []string{"revoke", "-link-id", linkID.String()}))
	assert.Equal(t, linkID, fake.revoked)

	assert.Error(t, cli.run(context.Background(), []string{"revoke", "-link-id", "nope"}))
}

func TestSent_PrintsTable(t *testing.T) {
	email := "bob@example.com"
	fake := &fakeAdapter{sent: models.SentFilesResponse{
		Files: []models.SendFileDetails{
			{Filename: "report.pdf", RecipientEmail: &email, State: models.LinkStateActive},
			{Filename: "notes.txt", State: models.LinkStateRevoked},
		},
		Results: 2,
	}}
	cli, out := newTestCommandLine(t, fake)
	require.NoError(t, os.WriteFile(cli.tokenFile, []byte("tok"), 0o600))

	require.NoError(t, cli.run(context.Background(), []string{"sent", "-page", "1"}))

	assert.Contains(t, out.String(), "report.pdf")
	assert.Contains(t, out.String(), "bob@example.com")
	assert.Contains(t, out.String(), "revoked")
	assert.Contains(t, out.String(), "never")
	assert.Contains(t, out.String(), "total: 2")
}
