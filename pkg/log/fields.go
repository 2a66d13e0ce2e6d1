package log

const (
	// Request
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldLatency   = "latency_ms"
	FieldClientIP  = "client_ip"

	// Caller identity (set by the auth middleware)
	FieldClient = "client"

	// Service
	FieldService = "service"

	// Domain
	FieldNamespace = "namespace"
	FieldBlockID   = "block_id"
)
