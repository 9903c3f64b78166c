package dto

// UploadFileDTO carries a file as base64 for upload.file
type UploadFileDTO struct {
	FileName    string `json:"fileName" binding:"required,max=255"`
	FileData    string `json:"fileData" binding:"required,base64"`
	ContentType string `json:"contentType" binding:"required,max=255"`
}

type UploadFileResponse struct {
	URL string `json:"url"`
	Key string `json:"key"`
}
