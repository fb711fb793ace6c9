package errors

// Messages carried in the "message" field of error envelopes.
const (
	MsgBadRequest         = "bad request"
	MsgNotFound           = "resource not found"
	MsgMethodNotAllowed   = "method not allowed"
	MsgUnprocessable      = "unprocessable"
	MsgInternalError      = "internal server error"
	MsgServiceUnavailable = "service unavailable"
)
