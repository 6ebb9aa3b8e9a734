// Package swagger exposes the public contracts for the loader and parser
// stages together with the Swagger 2.0 object model the extractor consumes.
// Implementations live under internal/swagger so the decoding machinery stays
// hidden from consumers.
package swagger
