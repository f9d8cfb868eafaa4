// Package util provides common utility functions and data structures
//
// This package includes the ordered set used for wizard selections
package util
