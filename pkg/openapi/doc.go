// Package openapi seeds form documents from OpenAPI operations. The request
// body schema of an operation is mapped property by property onto field
// descriptors; kin-openapi handles parsing and reference resolution.
package openapi
