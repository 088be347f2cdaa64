package loggers

// Shared structured-log field names. Handlers and services reuse these so
// log lines stay queryable across packages.
const (
	FieldApp       = "app"
	FieldComponent = "component"

	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"
	FieldHttpBytes  = "http_bytes"
	FieldRequestID  = "request_id"

	FieldDuration   = "duration"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldRunID       = "run_id"
	FieldInterval    = "interval"
	FieldRecordCount = "record_count"
	FieldArtifact    = "artifact"
)
