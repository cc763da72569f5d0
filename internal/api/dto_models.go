package api

// ErrorResponse is a generic structure for returning errors via API.
type ErrorResponse struct {
	Error   string `json:"error"`             // A high-level error message or code
	Details string `json:"details,omitempty"` // More specific details about the error, if available
}

// SuccessResponse is a generic structure for simple success messages.
type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// UploadResponse reports the outcome of a batch image upload. Uploads are
// best effort per file, so both lists can be non-empty.
type UploadResponse struct {
	URLs   []string `json:"urls"`
	Failed []string `json:"failed,omitempty"`
}
