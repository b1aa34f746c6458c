package models

// AudioUpload is the handle for a stored upload. It lives for a single
// request; the storage service removes the file before the response is sent.
type AudioUpload struct {
	Filename     string `json:"filename"`
	OriginalName string `json:"original_name"`
	FilePath     string `json:"file_path"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`
}

type TranscribeResponse struct {
	JobPost string `json:"jobPost"`
}
