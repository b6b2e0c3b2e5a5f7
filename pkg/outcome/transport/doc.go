// Package transport projects outcome statuses onto transport status codes.
//
// It does not write responses. It resolves what an HTTP handler or a gRPC
// service should report for a given outcome.Status, and encodes a failed
// outcome as a gRPC status with rich details (ErrorInfo, BadRequest,
// RequestInfo) that FromGRPCError can decode on the client side.
//
// Status table:
//
//	Ok            200  OK
//	Error         500  Unknown
//	Forbidden     403  PermissionDenied
//	Unauthorized  401  Unauthenticated
//	Invalid       400  InvalidArgument
//	NotFound      404  NotFound
//	Conflict      409  Aborted
//	CriticalError 500  Internal
//	Unavailable   503  Unavailable
package transport
