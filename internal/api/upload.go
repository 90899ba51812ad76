package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
)

// profilePicFile returns the uploaded profile picture, or nil when the
// request carries none (non-multipart requests included).
func profilePicFile(c echo.Context) *multipart.FileHeader {
	file, err := c.FormFile("profile_pic")
	if err != nil {
		return nil
	}
	return file
}

// saveProfilePic stores the upload under <staticDir>/profile_pics keyed by
// user id plus the sanitized original filename, and returns the relative
// path recorded on the user row.
func saveProfilePic(file *multipart.FileHeader, staticDir string, userID int) (string, error) {
	filename := fmt.Sprintf("%d_%s", userID, sanitizeFilename(file.Filename))
	dir := filepath.Join(staticDir, "profile_pics")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return "profile_pics/" + filename, nil
}

// sanitizeFilename strips path components and anything outside a safe
// character set.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9',
			r == '.', r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	return b.String()
}
