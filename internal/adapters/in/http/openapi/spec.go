// Package openapi holds the HTTP contract of the service: the embedded OpenAPI
// document, the request and response types, the ServerInterface the inbound
// adapter implements and the echo wiring that binds parameters for it.
package openapi

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

//go:embed openapi.json
var rawSpec []byte

var (
	loadOnce sync.Once
	loaded   *openapi3.T
	loadErr  error
)

// GetSwagger returns the parsed OpenAPI document. The document is parsed once.
func GetSwagger() (*openapi3.T, error) {
	loadOnce.Do(func() {
		loader := openapi3.NewLoader()
		loaded, loadErr = loader.LoadFromData(rawSpec)
		if loadErr != nil {
			loadErr = fmt.Errorf("error loading openapi document: %w", loadErr)
		}
	})
	return loaded, loadErr
}

// swaggerDoc serves the embedded document to echo-swagger under /swagger/doc.json.
type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string { return string(rawSpec) }

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}
