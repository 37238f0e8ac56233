// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package header

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

// DefaultMarker identifies a file which already carries the default header
const DefaultMarker = "Copyright (C) 2024 Everett N. Christman"

// DefaultText is prepended verbatim to unstamped files
const DefaultText = `"""
Copyright (C) 2024 Everett N. Christman / The Christman AI Project
All Rights Reserved.

PROPRIETARY AND CONFIDENTIAL

This file is part of The Christman AI Project and contains proprietary
technology and trade secrets. Unauthorized copying, distribution, modification,
public display, or public performance of this file, via any medium, is strictly
prohibited.

No license is granted to any person or entity. All rights are reserved by
Everett N. Christman and The Christman AI Project.

For licensing inquiries: contact@christmanai.com
"""

`

var (
	ErrEmptyText   = errors.New("header text is empty")
	ErrEmptyMarker = errors.New("header marker is empty")
	// ErrMarkerNotInText is returned when stamping with the header would not be idempotent
	ErrMarkerNotInText = errors.New("header text does not contain the marker")
)

// Header is the immutable text prepended to files and the marker detecting it
type Header struct {
	Text   string
	Marker string
}

// Default returns the built-in header
func Default() Header {
	return Header{
		Text:   DefaultText,
		Marker: DefaultMarker,
	}
}

// Load reads the header text from the given file. An empty marker keeps the default one.
func Load(fs afero.Fs, path, marker string) (Header, error) {
	text, err := afero.ReadFile(fs, path)
	if err != nil {
		return Header{}, fmt.Errorf("unable to read header file: %w", err)
	}

	if marker == "" {
		marker = DefaultMarker
	}

	h := Header{
		Text:   string(text),
		Marker: marker,
	}

	if err := h.Validate(); err != nil {
		return Header{}, fmt.Errorf("invalid header file %s: %w", path, err)
	}

	return h, nil
}

// Validate ensures a stamped file is always recognized as stamped on the next run
func (h Header) Validate() error {
	switch {
	case h.Text == "":
		return ErrEmptyText
	case h.Marker == "":
		return ErrEmptyMarker
	case !bytes.Contains([]byte(h.Text), []byte(h.Marker)):
		return ErrMarkerNotInText
	}

	return nil
}

// IsStamped returns true if the marker appears anywhere in the content
func (h Header) IsStamped(content []byte) bool {
	return bytes.Contains(content, []byte(h.Marker))
}

// Stamp returns the header text followed by the untouched content
func (h Header) Stamp(content []byte) []byte {
	stamped := make([]byte, 0, len(h.Text)+len(content))
	stamped = append(stamped, h.Text...)

	return append(stamped, content...)
}
