package filestorage

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("certificate", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["certificate"][0]
}

func TestIsAllowedExtension(t *testing.T) {
	cases := map[string]bool{
		"cert.pdf":         true,
		"CERT.PDF":         true,
		"photo.Jpeg":       true,
		"scan.png":         true,
		"archive.tar.jpg":  true,
		"evil.exe":         false,
		"pdf":              false,
		"cert.pdf.exe":     false,
		"noextension.":     false,
		"":                 false,
		"report.pdf ":      false,
		"image.jpg.backup": false,
	}

	for name, want := range cases {
		assert.Equal(t, want, IsAllowedExtension(name), name)
	}
}

func TestSecureFilename(t *testing.T) {
	cases := map[string]string{
		"My Cert (final).pdf": "My_Cert_final.pdf",
		"../../etc/passwd":    "etc_passwd",
		"résumé.png":          "resume.png",
		"  spaced   out.jpg ": "spaced_out.jpg",
		"CON.pdf":             "_CON.pdf",
		"...":                 "",
		"a\\b.pdf":            "ab.pdf",
		"証明書.pdf":             "certificate.pdf",
		"сертификат.PNG":      "certificate.png",
		"Award.JPEG":          "Award.jpeg",
		"..pdf":               "certificate.pdf",
	}

	for in, want := range cases {
		assert.Equal(t, want, SecureFilename(in), in)
	}
}

func TestSecureFilenameCapsLength(t *testing.T) {
	long := strings.Repeat("a", 290) + ".pdf"

	name := SecureFilename(long)
	assert.LessOrEqual(t, len(name), MaxNameBytes)
	assert.True(t, strings.HasSuffix(name, ".pdf"), name)
	assert.True(t, IsAllowedExtension(name), name)
}

func TestSaveCertificate(t *testing.T) {
	base := filepath.Join(t.TempDir(), "static", "uploads")
	storage, err := NewLocalStorage(base, "uploads")
	require.NoError(t, err)

	at := time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local)
	relPath, err := storage.SaveCertificate(newFileHeader(t, "cert.pdf", []byte("%PDF-1.4")), at)
	require.NoError(t, err)

	assert.Equal(t, "uploads/20240305140709_cert.pdf", relPath)
	assert.Regexp(t, regexp.MustCompile(`^uploads/\d{14}_cert\.pdf$`), relPath)

	data, err := os.ReadFile(storage.GetFullPath(relPath))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4", string(data))
}

func TestSaveCertificateKeepsExtension(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "uploads")
	require.NoError(t, err)
	at := time.Date(2024, 3, 5, 14, 7, 9, 0, time.Local)

	cases := map[string]string{
		"証明書.pdf":        "uploads/20240305140709_certificate.pdf",
		"сертификат.PNG": "uploads/20240305140709_certificate.png",
	}
	for in, want := range cases {
		relPath, err := storage.SaveCertificate(newFileHeader(t, in, []byte("data")), at)
		require.NoError(t, err, in)
		assert.Equal(t, want, relPath, in)
	}

	relPath, err := storage.SaveCertificate(newFileHeader(t, strings.Repeat("a", 290)+".pdf", []byte("data")), at)
	require.NoError(t, err)
	assert.Less(t, len(filepath.Base(relPath)), 255)
	assert.True(t, strings.HasSuffix(relPath, ".pdf"), relPath)

	data, err := os.ReadFile(storage.GetFullPath(relPath))
	require.NoError(t, err)
	assert.Equal(t, "data", string(data))
}

func TestSaveCertificateNilHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "uploads")
	require.NoError(t, err)

	relPath, err := storage.SaveCertificate(nil, time.Now())
	assert.NoError(t, err)
	assert.Empty(t, relPath)
}

func TestDeleteFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir(), "uploads")
	require.NoError(t, err)

	relPath, err := storage.SaveCertificate(newFileHeader(t, "scan.png", []byte("png")), time.Now())
	require.NoError(t, err)

	require.NoError(t, storage.DeleteFile(relPath))
	_, statErr := os.Stat(storage.GetFullPath(relPath))
	assert.True(t, os.IsNotExist(statErr))

	// second delete is a no-op
	assert.NoError(t, storage.DeleteFile(relPath))
	assert.NoError(t, storage.DeleteFile(""))
	assert.Error(t, storage.DeleteFile("uploads"))
}

func TestGetFullPathStaysInBase(t *testing.T) {
	base := t.TempDir()
	storage, err := NewLocalStorage(base, "uploads")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(base, "passwd"), storage.GetFullPath("uploads/../../etc/passwd"))
}
