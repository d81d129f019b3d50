// Package updatecenter declares the opaque update-center collaborator
// attached to a configuration at build time. Plugin compatibility resolution
// and artifact lookups live outside this module; the configuration only
// carries the reference through.
package updatecenter

// UpdateCenter references an update-center catalog by its properties URL.
type UpdateCenter struct {
	// URL is the location of the update-center properties document.
	URL string
}

// New returns an UpdateCenter for the given properties URL.
func New(url string) *UpdateCenter {
	return &UpdateCenter{URL: url}
}
