// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines TaskAssignment, the result of extracting one task from an
// assignment or solution page.
package model

// TaskAssignment is the content of one task extracted from a contest page.
type TaskAssignment struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	// Points is nil when the title does not state a point value.
	Points *int `json:"points" yaml:"points"`
	// Description is the HTML fragment with the task body.
	Description string `json:"description" yaml:"description"`
	// TitleHTML is the raw markup of the title block.
	TitleHTML string `json:"titleHtml" yaml:"titleHtml"`
}
