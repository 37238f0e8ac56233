// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package types

import "fmt"

// FileError is a failure scoped to a single file; it never aborts a run
type FileError struct {
	Path string
	Op   FileOp
	Err  error
}

func (f FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", f.Op, f.Path, f.Err)
}

func (f FileError) Unwrap() error {
	return f.Err
}
