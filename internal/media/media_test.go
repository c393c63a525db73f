package media

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bnbhub/internal/errors"
)

var (
	pngBytes  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x00, 0x00, 0x00, 0x0D, 0x49, 0x48, 0x44, 0x52}
	jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 0x4A, 0x46, 0x49, 0x46, 0x00}
)

type testFile struct {
	name string
	data []byte
}

func buildFileHeaders(t *testing.T, files []testFile) []*multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for _, f := range files {
		part, err := w.CreateFormFile("images", f.name)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&body, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })
	return form.File["images"]
}

func TestValidateFiles(t *testing.T) {
	tests := []struct {
		name          string
		files         []testFile
		expectedError error
	}{
		{
			name:  "png and jpeg pass",
			files: []testFile{{"front.png", pngBytes}, {"back.jpg", jpegBytes}, {"side.jpeg", jpegBytes}},
		},
		{
			name: "more than five images rejected",
			files: []testFile{
				{"1.png", pngBytes}, {"2.png", pngBytes}, {"3.png", pngBytes},
				{"4.png", pngBytes}, {"5.png", pngBytes}, {"6.png", pngBytes},
			},
			expectedError: errors.ErrTooManyImages,
		},
		{
			name:          "disallowed extension rejected",
			files:         []testFile{{"notes.txt", []byte("not an image")}},
			expectedError: errors.ErrUnsupportedImage,
		},
		{
			name:          "image extension with non-image content rejected",
			files:         []testFile{{"fake.png", []byte("plain text pretending")}},
			expectedError: errors.ErrUnsupportedImage,
		},
		{
			name:  "no files is fine",
			files: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFiles(buildFileHeaders(t, tt.files))
			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
