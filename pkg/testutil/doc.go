// Package testutil provides fixture helpers for passbundle tests,
// chiefly on-disk bundle directories with definition files and
// placeholder images.
package testutil
