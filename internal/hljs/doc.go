// Package hljs decides which highlight.js assets a page needs.
//
// Page-building code records its highlighting preferences
// on a [Preferences] value owned by the page being rendered:
// the languages its code blocks use,
// the theme to display them with,
// the library variant to load,
// or that highlighting should be disabled altogether.
// Once the page body is complete,
// a [Resolver] turns those preferences into a [Manifest]:
// the ordered script and stylesheet references
// and the inline configuration script to inject into the page.
//
// Languages and themes come from closed catalogs
// that mirror the files shipped with highlight.js [Version].
package hljs
