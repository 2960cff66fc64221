package dto

// UploadResponse carries the public URLs of freshly stored files, in the
// order they appeared in the multipart form.
type UploadResponse struct {
	Links []string `json:"links"`
}
