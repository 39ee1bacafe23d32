// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines TaskStatus, one row of the contestant's submission table.
package model

// TaskStatus describes the submission state of a single task. Submitted and
// Solved are independent: a task can be submitted without being solved.
type TaskStatus struct {
	ID        string `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Type      string `json:"type" yaml:"type"`
	Submitted bool   `json:"submitted" yaml:"submitted"`
	Solved    bool   `json:"solved" yaml:"solved"`
	Points    int    `json:"points" yaml:"points"`
	MaxPoints int    `json:"maxPoints" yaml:"maxPoints"`
}
