package utils

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// UploadDir is where multipart uploads are written. Files are served back
// under the /uploads static route.
const UploadDir = "./uploads"

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// SaveUpload stores one uploaded image under a random name and returns the
// path reference persisted on the owning record.
func SaveUpload(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("unsupported file type %q", ext)
	}

	name := uuid.NewString() + ext
	dest := filepath.Join(UploadDir, name)
	if err := c.SaveFile(file, dest); err != nil {
		return "", err
	}
	return "uploads/" + name, nil
}

// SaveUploads stores a batch of uploaded images.
func SaveUploads(c *fiber.Ctx, files []*multipart.FileHeader) ([]string, error) {
	paths := make([]string, 0, len(files))
	for _, f := range files {
		p, err := SaveUpload(c, f)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}
