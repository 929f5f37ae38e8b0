// Package routepath stores canonical HTTP paths for the web service.
package routepath

const (
	Root         = "/"
	Health       = "/up"
	StaticPrefix = "/static/"
	Stylesheet   = StaticPrefix + "app.css"
)
