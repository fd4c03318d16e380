package media

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// upload builds a FileHeader the way a handler receives it.
func upload(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	return req.MultipartForm.File["image"][0]
}

func TestSaveImage(t *testing.T) {
	s := NewStorage(t.TempDir())

	ref, err := s.SaveImage(upload(t, "Pizza.JPG", []byte("jpeg")))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ref, "food_images/"), ref)
	assert.Equal(t, ".jpg", filepath.Ext(ref))

	got, err := os.ReadFile(filepath.Join(s.Dir, filepath.FromSlash(ref)))
	require.NoError(t, err)
	assert.Equal(t, "jpeg", string(got))

	other, err := s.SaveImage(upload(t, "Pizza.JPG", []byte("jpeg")))
	require.NoError(t, err)
	assert.NotEqual(t, ref, other)
}

func TestSaveImageRejectsOtherTypes(t *testing.T) {
	s := NewStorage(t.TempDir())
	for _, name := range []string{"notes.txt", "script.svg", "noext"} {
		_, err := s.SaveImage(upload(t, name, []byte("x")))
		assert.ErrorIs(t, err, ErrUnsupportedType, name)
	}
	_, err := os.Stat(filepath.Join(s.Dir, s.Prefix))
	assert.True(t, os.IsNotExist(err))
}

func TestRemove(t *testing.T) {
	s := NewStorage(t.TempDir())
	ref, err := s.SaveImage(upload(t, "a.png", []byte("png")))
	require.NoError(t, err)

	require.NoError(t, s.Remove(ref))
	_, err = os.Stat(filepath.Join(s.Dir, filepath.FromSlash(ref)))
	assert.True(t, os.IsNotExist(err))

	assert.NoError(t, s.Remove(ref))
	assert.NoError(t, s.Remove(""))
}
