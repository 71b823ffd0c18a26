// Package paperless defines the typed surface of the client: resource
// records and their create requests, query and pagination primitives, the
// change-diff engine behind patch updates, the custom-field value codec, the
// cache used for field definitions, and the error taxonomy.
//
// The concrete implementation lives in internal/client; construct one through
// the pngx package.
package paperless
