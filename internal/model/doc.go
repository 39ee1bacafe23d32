// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model defines the records kspgrab produces from contest pages.
//
// # Core Concepts
//
//   - TaskAssignment: the statement or solution of a single task, carved out of
//     a shared multi-task document together with its parsed title.
//
//   - TaskStatus: one row of the submission table of a logged-in contestant.
//
// Records are created fresh by every fetch-and-parse call and carry no
// reference to the document they were extracted from, so callers own them
// outright and may keep them after the document is discarded.
package model
