package filesapimodels

import (
	"fmt"
	"io"
	"strings"
)

type FileView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ApplicantID string `json:"applicant_id"`
	ContentType string `json:"content_type"`
	Url         string `json:"url"` // public download link
}

func DownloadUrl(publicUrl, fileID string) string {
	if fileID == "" {
		return ""
	}
	return fmt.Sprintf("%s/api/v1/files/%s", strings.TrimRight(publicUrl, "/"), fileID)
}

// UploadFile - multipart file accepted by the api
type UploadFile struct {
	FileName    string
	ContentType string
	Size        int64
	Body        io.Reader
}
