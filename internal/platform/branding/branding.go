// Package branding holds product naming shared by rendered surfaces.
package branding

// AppName is the product name shown in page titles and the header.
const AppName = "WelcomePath"
