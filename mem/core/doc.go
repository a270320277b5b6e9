// Package core holds the element constraint, numeric helpers and
// construction options shared by the mem packages.
package core
