package apperr

// 错误码，随错误响应的 code 字段返回
const (
	CodeValidation = "VALIDATION_ERROR"
	CodeNotFound   = "NOT_FOUND"
	CodeStore      = "STORE_ERROR"
	CodeInternal   = "INTERNAL_ERROR"

	// 上传
	CodeNoFiles         = "NO_FILES"
	CodeInvalidFileType = "INVALID_FILE_TYPE"
	CodeLimitFileSize   = "LIMIT_FILE_SIZE"
	CodeLimitFileCount  = "LIMIT_FILE_COUNT"
	CodeUploadFailed    = "UPLOAD_FAILED"

	CodeUnauthorized    = "UNAUTHORIZED"
	CodeTooManyRequests = "TOO_MANY_REQUESTS"
	CodeRouteNotFound   = "ROUTE_NOT_FOUND"
)
