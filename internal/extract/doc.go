/*
Package extract carves a single task out of a contest page that holds many
tasks one after another.

A task starts at the element carrying its anchor id (the title block) and
continues with the title's following siblings until the next task, the
solution heading or page chrome begins. Between the title and the content the
page may carry horizontal rules and, for some tasks only, a floated marker
image; both are dropped so that every task comes out the same way.

The sibling scan is an explicit state machine:

	skippingSeparators --(first content element)--> copying --(boundary)--> done

transition is a pure function of the current state and node; the caller
applies the resulting action to the output buffer.
*/
package extract
