// Package content derives the typed records the page renders from the flat
// translation table of one language.
//
// Projections are pure: the same table always yields the same records, in
// the same order. Classification never looks at localized text except for
// the description length, so a record keeps its category in every language.
//
//	records, err := content.ProjectServices(store.Table())
//
// Projector memoizes projections per language on top of an i18n.Dictionary.
package content
