// Package images tracks the image files of a pass bundle.
//
// A Collection records which recognized image variants exist in a bundle
// directory and where. It deliberately never decodes image data; signing
// and archiving collaborators consume the paths directly.
package images
