// Package errors provides typed error handling for webfetch operations.
//
// Request-level codes (UNKNOWN_TOOL, MISSING_ARGUMENT, INVALID_URL,
// UPSTREAM_HTTP_ERROR, FETCH_FAILED, LIMIT_EXCEEDED) are returned to the
// peer as structured tool results and never terminate the session.
//
// Example usage:
//
//	// Creating errors
//	err := errors.MissingArgument("url")
//	err := errors.UpstreamHTTP(404, "https://example.com/missing")
//
//	// Wrapping errors
//	err := errors.FetchFailed(url, netErr)
//
//	// Checking error codes
//	if errors.Is(err, errors.CodeUpstreamHTTPError) {
//	    status := errors.StatusCode(err)
//	    // handle upstream failure
//	}
//
//	// Extracting codes
//	code := errors.Code(err)
//	if code == errors.CodeMissingArgument {
//	    // handle missing argument
//	}
//
//	// Stdlib compatibility
//	var werr *errors.Error
//	if errors.As(err, &werr) {
//	    fmt.Println(werr.Code, werr.Message)
//	}
package errors
