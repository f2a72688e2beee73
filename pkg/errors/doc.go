// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeDecodeFailed,
//	    "share token is not valid base64",
//	    decodeErr,
//	    map[string]interface{}{
//	        "token": token,
//	    },
//	)
package errors
