// Package server implements the HTTP API of the Parkmanager service
//
// It serves CMS content in display order, the wizard session endpoints, the
// PDF documents, a WebSocket stream of session changes, and the Contentful
// webhook that invalidates cached content
package server
