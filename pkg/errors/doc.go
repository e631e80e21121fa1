// Package errors provides structured error types for better observability
// and programmatic error handling across the application.
//
// Example usage:
//
//	err := errors.WrapWithContext(
//	    errors.ErrCodeUpstream,
//	    "failed to resolve latest release",
//	    cause,
//	    map[string]interface{}{
//	        "repo": "nvidia/cuda",
//	        "component": componentName,
//	    },
//	)
package errors
