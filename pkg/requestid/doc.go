// Package requestid assigns a correlation identifier to every HTTP request.
//
// Middleware keeps a client-supplied X-Request-ID when it is at most 128
// characters of letters, digits, '-' and '_'; anything else is replaced by a
// UUIDv7. The ID is stored in the request context (FromContext) and echoed in
// the response header. LoggerExtractor plugs it into pkg/logger:
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
