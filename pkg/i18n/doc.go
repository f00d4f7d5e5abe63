// Package i18n defines the two display locales of the site and the localized
// copy shown around the contact form.
//
// A Locale is either EN (primary) or KR (secondary). Anything else read from
// storage or the network is treated as absent:
//
//	l, ok := i18n.ParseLocale(stored)
//	if !ok {
//		// no usable preference
//	}
//
// Copy is served by a Translator backed by YAML files compiled into the
// binary. Lookups that miss in the requested locale fall back to the default
// locale, then to the key itself:
//
//	tr, err := i18n.NewDefaultTranslator(ctx)
//	if err != nil {
//		return err
//	}
//	msg := tr.T(i18n.KR, "contact.modal.error")
//
// Custom sources implement TranslationAdapter; FSAdapter reads parsed files
// from any fs.FS.
package i18n
