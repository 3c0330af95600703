// Package cssom provides CSS Syntax Level 3 tokenization and parsing.
// It follows the CSS Syntax Level 3 specification.
//
// Spec references:
// - CSS Syntax Level 3 §4.2-4.3 Tokenization: https://www.w3.org/TR/css-syntax-3/#tokenization
// - CSS Syntax Level 3 §5 Parsing: https://www.w3.org/TR/css-syntax-3/#parsing
//
// Implemented features:
// - Full code-point tokenization: idents, strings, numbers, dimensions,
//   percentages, hash tokens, url(), unicode-range, CDO/CDC, comments.
// - Escape handling in idents, strings, and hash names.
// - The component-value parser (functions and simple blocks).
// - The mode-driven rule/declaration parser (stylesheets, at-rules,
//   qualified rules, declarations).
//
// Not implemented (out of scope):
// - Cascading, specificity computation, computed values.
// - CSSOM construction, @import resolution, media-query evaluation.
package cssom
