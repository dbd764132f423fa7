package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/voy/internal/adapter"
	"github.com/MKhiriev/voy/internal/logger"
	"github.com/MKhiriev/voy/internal/mock"
	"github.com/MKhiriev/voy/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	testToken  = "token-123"
	testUserID = "0190b6f4-7c1e-7b4a-9a57-3f1c2d4e5f60"
)

func newTestCLI(t *testing.T, env map[string]string) (*cli, *mock.MockServerAdapter, *bytes.Buffer) {
	t.Helper()
	serverAdapter := mock.NewMockServerAdapter(gomock.NewController(t))
	var out bytes.Buffer

	c := newCLI(serverAdapter, &out, logger.Nop())
	c.getenv = func(key string) string { return env[key] }
	return c, serverAdapter, &out
}

func TestRun_UnknownCommand(t *testing.T) {
	c, _, out := newTestCLI(t, nil)

	err := c.run(context.Background(), []string{"sync"})

	assert.ErrorIs(t, err, errUnknownCommand)
	assert.Contains(t, out.String(), "Usage: voy")
}

func TestRun_NoCommand(t *testing.T) {
	c, _, _ := newTestCLI(t, nil)

	assert.ErrorIs(t, c.run(context.Background(), nil), errUnknownCommand)
}

func TestRun_Help(t *testing.T) {
	c, _, out := newTestCLI(t, nil)

	require.NoError(t, c.run(context.Background(), []string{"help"}))
	assert.Contains(t, out.String(), "set-number")
}

func TestRegister_PrintsToken(t *testing.T) {
	c, a, out := newTestCLI(t, nil)

	a.EXPECT().Register(gomock.Any(), models.User{Email: "maria@example.com", Password: "Lisboa2026!", DisplayName: "Maria"}).
		Return(models.User{UserID: testUserID}, nil)
	a.EXPECT().Token().Return(testToken)

	err := c.run(context.Background(), []string{"register", "-email", "maria@example.com", "-password", "Lisboa2026!", "-name", "Maria"})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "export VOY_TOKEN="+testToken)
	assert.Contains(t, out.String(), testUserID)
}

func TestLogin_MissingPassword(t *testing.T) {
	c, _, _ := newTestCLI(t, nil)

	err := c.run(context.Background(), []string{"login", "-email", "maria@example.com"})

	assert.ErrorIs(t, err, errMissingFlag)
	assert.Contains(t, err.Error(), "-password")
}

func TestLogin_ServerError(t *testing.T) {
	c, a, _ := newTestCLI(t, nil)

	a.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, adapter.ErrTooManyRequests)

	err := c.run(context.Background(), []string{"login", "-email", "maria@example.com", "-password", "x"})

	assert.ErrorIs(t, err, adapter.ErrTooManyRequests)
}

func TestProfile_TokenFromEnv(t *testing.T) {
	c, a, out := newTestCLI(t, map[string]string{tokenEnv: testToken})
	nif := "123456789"

	gomock.InOrder(
		a.EXPECT().SetToken(testToken),
		a.EXPECT().GetProfile(gomock.Any()).Return(models.Profile{UserID: testUserID, NIF: &nif}, nil),
	)

	require.NoError(t, c.run(context.Background(), []string{"profile"}))
	assert.Contains(t, out.String(), `"nif": "123456789"`)
}

func TestProfile_FlagOverridesEnv(t *testing.T) {
	c, a, _ := newTestCLI(t, map[string]string{tokenEnv: "stale"})

	a.EXPECT().SetToken(testToken)
	a.EXPECT().GetProfile(gomock.Any()).Return(models.Profile{}, nil)

	require.NoError(t, c.run(context.Background(), []string{"profile", "-token", testToken}))
}

func TestProfile_NoToken(t *testing.T) {
	c, _, _ := newTestCLI(t, nil)

	err := c.run(context.Background(), []string{"profile"})

	assert.ErrorIs(t, err, errMissingFlag)
}

func TestSetNumber(t *testing.T) {
	c, a, _ := newTestCLI(t, map[string]string{tokenEnv: testToken})

	a.EXPECT().SetToken(testToken)
	a.EXPECT().UpdateNumber(gomock.Any(), models.NumberUpdate{Field: models.NumberNIF, Value: "123456789"}).
		Return(models.Profile{}, nil)

	require.NoError(t, c.run(context.Background(), []string{"set-number", "-field", "nif", "-value", "123456789"}))
}

func TestDocuments_PrintsOneLinePerDocument(t *testing.T) {
	c, a, out := newTestCLI(t, map[string]string{tokenEnv: testToken})
	pdf := "application/pdf"

	a.EXPECT().SetToken(testToken)
	a.EXPECT().ListDocuments(gomock.Any()).Return([]models.Document{
		{ID: "d1", Name: "Passaporte", Category: "identidade", FileType: &pdf},
		{ID: "d2", Name: "Contrato", Category: "trabalho"},
	}, nil)

	require.NoError(t, c.run(context.Background(), []string{"documents"}))
	assert.Equal(t, "d1\tidentidade\tPassaporte\tapplication/pdf\nd2\ttrabalho\tContrato\t-\n", out.String())
}

func TestUpload_WithFile(t *testing.T) {
	c, a, _ := newTestCLI(t, map[string]string{tokenEnv: testToken})
	path := filepath.Join(t.TempDir(), "passaporte.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.7"), 0o600))

	a.EXPECT().SetToken(testToken)
	a.EXPECT().UploadDocument(gomock.Any(), "Passaporte", "identidade", gomock.Any()).DoAndReturn(
		func(_ context.Context, _, _ string, file *models.DocumentFile) (models.Document, error) {
			require.NotNil(t, file)
			assert.Equal(t, "passaporte.pdf", file.FileName)
			assert.Equal(t, "application/pdf", file.ContentType)
			assert.Equal(t, int64(8), file.Size)
			content, err := io.ReadAll(file.Content)
			require.NoError(t, err)
			assert.Equal(t, "%PDF-1.7", string(content))
			return models.Document{ID: "d1"}, nil
		})

	require.NoError(t, c.run(context.Background(), []string{"upload", "-name", "Passaporte", "-category", "identidade", "-file", path}))
}

func TestUpload_WithoutFile(t *testing.T) {
	c, a, _ := newTestCLI(t, map[string]string{tokenEnv: testToken})

	a.EXPECT().SetToken(testToken)
	a.EXPECT().UploadDocument(gomock.Any(), "Contrato", "trabalho", (*models.DocumentFile)(nil)).Return(models.Document{ID: "d2"}, nil)

	require.NoError(t, c.run(context.Background(), []string{"upload", "-name", "Contrato", "-category", "trabalho"}))
}

func TestUpload_MissingFile(t *testing.T) {
	c, a, _ := newTestCLI(t, map[string]string{tokenEnv: testToken})

	a.EXPECT().SetToken(testToken)

	err := c.run(context.Background(), []string{"upload", "-name", "x", "-category", "y", "-file", filepath.Join(t.TempDir(), "absent.pdf")})

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestDownload_ToFile(t *testing.T) {
	c, a, out := newTestCLI(t, map[string]string{tokenEnv: testToken})
	path := filepath.Join(t.TempDir(), "out.pdf")

	a.EXPECT().SetToken(testToken)
	a.EXPECT().DownloadDocument(gomock.Any(), "d1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, w io.Writer) (int64, error) {
			n, err := io.WriteString(w, "%PDF-1.7")
			return int64(n), err
		})

	require.NoError(t, c.run(context.Background(), []string{"download", "-id", "d1", "-out", path}))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.7", string(content))
	assert.Contains(t, out.String(), "saved 8 bytes")
}

func TestDownload_FailureRemovesFile(t *testing.T) {
	c, a, _ := newTestCLI(t, map[string]string{tokenEnv: testToken})
	path := filepath.Join(t.TempDir(), "out.pdf")

	a.EXPECT().SetToken(testToken)
	a.EXPECT().DownloadDocument(gomock.Any(), "d1", gomock.Any()).Return(int64(0), adapter.ErrNotFound)

	err := c.run(context.Background(), []string{"download", "-id", "d1", "-out", path})

	assert.ErrorIs(t, err, adapter.ErrNotFound)
	_, statErr := os.Stat(path)
	assert.True(t, errors.Is(statErr, os.ErrNotExist))
}

func TestNotes_MarksImportant(t *testing.T) {
	c, a, out := newTestCLI(t, map[string]string{tokenEnv: testToken})

	a.EXPECT().SetToken(testToken)
	a.EXPECT().ListNotes(gomock.Any()).Return([]models.Note{
		{ID: "n1", Title: "Renovar passaporte", IsImportant: true},
		{ID: "n2", Title: "Marcar AIMA"},
	}, nil)

	require.NoError(t, c.run(context.Background(), []string{"notes"}))
	assert.Equal(t, "* n1\tRenovar passaporte\n  n2\tMarcar AIMA\n", out.String())
}

func TestVersion(t *testing.T) {
	c, a, out := newTestCLI(t, nil)

	a.EXPECT().GetServerVersion(gomock.Any()).Return("1.4.0", nil)

	require.NoError(t, c.run(context.Background(), []string{"version"}))
	assert.Contains(t, out.String(), "client: N/A")
	assert.Contains(t, out.String(), "server: 1.4.0")
}

func TestSubcommand_HelpFlag(t *testing.T) {
	c, _, _ := newTestCLI(t, nil)

	err := c.run(context.Background(), []string{"login", "-h"})

	assert.ErrorIs(t, err, flag.ErrHelp)
}
