// Package types holds the shared interfaces used across passbundle
// packages, most importantly the FS filesystem abstraction that lets
// bundle loading run against the OS or an in-memory filesystem.
package types
