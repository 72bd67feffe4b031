// Package view renders the site with github.com/a-h/templ components.
//
// Components are plain templ.ComponentFunc values; they resolve their texts
// from an i18n.Table while rendering and fail on the first missing key.
// Render buffers the output, so a failing page produces no bytes at all.
package view
