// Package status reads the contestant's submission table ("cvičiště") into
// TaskStatus records.
//
// The table is marked with the `zs-tasklist` class. Its first row is a
// header; every other row describes one task with cells in fixed order: id,
// type, name, (unused), score. Row classes carry the submission state:
// `zs-unsubmitted` for tasks without a submission and `zs-submitted` for
// accepted ones.
package status
