/*
Package taskid provides a structured representation of KSP task identifiers,
based on the canonical format `<year>-<Z?><series>-<problem>`, e.g. `29-Z1-2`
or `32-2-2`.

The optional `Z` marker selects the category of the task and with it one of
two parallel families of document paths on the contest site. This package
centralizes parsing of the identifier and the mapping from an identifier to
the location of the task inside a shared multi-task HTML document.
*/
package taskid
