// Package highlight finds the highlight.js language for source code.
// It uses the Chroma library's lexer registry to do this work.
//
// Chroma knows about far more file names and language aliases
// than highlight.js does.
// A lexer found by Chroma is mapped to a highlight.js language
// by trying its name and aliases against the [hljs] catalog.
package highlight
