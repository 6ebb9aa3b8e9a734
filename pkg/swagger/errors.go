package swagger

import "errors"

// ErrUnsupportedVersion reports a document whose declared version is not
// Swagger 2.0. The whole generation pass aborts; OpenAPI 3.x documents are out
// of scope by design.
var ErrUnsupportedVersion = errors.New("swagger: unsupported document version")

// ErrMalformedDocument reports a document missing structurally required
// top-level fields such as paths. There is no partial extraction mode; the
// pass aborts.
var ErrMalformedDocument = errors.New("swagger: malformed document")
