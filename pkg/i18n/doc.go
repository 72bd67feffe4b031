// Package i18n holds the page languages, the translation dictionary and the
// store that tracks which language is active.
//
// The package allows you to:
//
//   - Load translations from a single file, a directory on disk, an embedded
//     file-system, or an in-memory map through the TranslationAdapter interface.
//   - Validate that every supported language defines exactly the same keys
//     before anything is rendered.
//   - Switch the active language atomically and subscribe to changes.
//   - Export the flat table of a language as JSON for client-side use.
//
// # Languages
//
// The set of languages is closed: Dutch (the default), English and German.
// ParseLanguage accepts any BCP 47 spelling of those and rejects the rest.
//
// # Usage
//
//	dict, err := i18n.NewDictionary(ctx, i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."))
//	if err != nil {
//		return err
//	}
//
//	store, err := i18n.NewStore(dict, i18n.WithLogger(log))
//	if err != nil {
//		return err
//	}
//
//	title, err := store.T("servicesTitle") // "Mijn Diensten"
//	_ = store.SetLanguage(ctx, i18n.English)
//	title, err = store.T("servicesTitle") // "My Services"
//
// Values may contain **emphasis** markup. The store returns it untouched;
// converting it to HTML is the job of the view layer.
//
// # Error Handling
//
// Every data or tag problem matches ErrConfiguration:
//
//	if errors.Is(err, i18n.ErrConfiguration) {
//	    // bad tag or bad dictionary, fix the data
//	}
//
// A missing key is a *MissingKeyError and is never masked by a value from
// another language.
package i18n
