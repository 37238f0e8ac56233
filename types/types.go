// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package types

// Outcome represents what happened to a candidate file during a run
type Outcome string

// FileOp is the file operation that failed
type FileOp string

const (
	// OutcomeStamped is a file which received the header
	OutcomeStamped Outcome = "stamped"
	// OutcomeAlreadyStamped is a file already containing the marker, left untouched
	OutcomeAlreadyStamped Outcome = "already-stamped"
	// OutcomePreviewed is a file which would have been stamped in dry-run mode
	OutcomePreviewed Outcome = "previewed"
	// OutcomeFailed is a file which could not be read, decoded or written
	OutcomeFailed Outcome = "failed"

	FileOpRead   FileOp = "read"
	FileOpDecode FileOp = "decode"
	FileOpWrite  FileOp = "write"
	FileOpWalk   FileOp = "walk"
)

// Modified returns true if the outcome means the file content was (or would be) changed
func (o Outcome) Modified() bool {
	return o == OutcomeStamped || o == OutcomePreviewed
}
