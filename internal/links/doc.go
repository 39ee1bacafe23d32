// Package links rewrites resource references inside extracted markup so that
// fragments stay renderable once they leave their source document. Relative
// `src` and `href` values are resolved against the base URL of the document
// they came from, not against whoever ends up displaying them.
package links
