package utils

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"online-store/config"

	"github.com/gin-gonic/gin"
)

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadFile stores an uploaded image under the configured upload dir and
// returns the public path to serve it from.
func UploadFile(c *gin.Context, fileHeader *multipart.FileHeader, subDir string) (string, error) {
	if fileHeader.Size > config.AppConfig.MaxUploadSize {
		return "", errors.New("file size exceeds maximum allowed size")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return "", errors.New("invalid file type. Only images are allowed")
	}

	uploadPath := filepath.Join(config.AppConfig.UploadDir, subDir)
	if err := os.MkdirAll(uploadPath, os.ModePerm); err != nil {
		return "", err
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	fullPath := filepath.Join(uploadPath, filename)

	if err := c.SaveUploadedFile(fileHeader, fullPath); err != nil {
		return "", err
	}

	return "/uploads/" + subDir + "/" + filename, nil
}

// DeleteFile removes a previously uploaded file by its public path.
func DeleteFile(publicPath string) {
	if publicPath == "" || !strings.HasPrefix(publicPath, "/uploads/") {
		return
	}
	local := filepath.Join(config.AppConfig.UploadDir, strings.TrimPrefix(publicPath, "/uploads/"))
	os.Remove(local)
}
