// Package web serves the onboarding dashboard.
//
// It composes feature modules behind a shared middleware chain and renders
// the dashboard from a validated onboarding snapshot fixed at startup.
package web
