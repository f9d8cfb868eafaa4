// Package api defines the core data types shared across the Parkmanager Tool
//
// This package contains CMS content types, the wizard session state with its
// pure transitions, session events, and HTTP messages
package api
