// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

// Package profile reads per-subject DNA profiles stored as flat files.
//
// The profiles root contains one subdirectory per subject. Every file under
// a subject directory is optional, externally authored, and only ever read.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dna-mcp/dna-mcp/pkg/profile/dirnames"
	"github.com/dna-mcp/dna-mcp/pkg/profile/filenames"
)

// ErrSubjectNotFound indicates that the subject has no directory under the
// profiles root (or the name is not usable as a directory name).
var ErrSubjectNotFound = errors.New("subject not found")

// Subjects returns the names of the subject directories under root,
// sorted lexicographically by os.ReadDir. A missing root is not an error
// and yields an empty list.
func Subjects(root string) ([]string, error) {
	ents, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var names []string
	for _, ent := range ents {
		if ent.IsDir() {
			names = append(names, ent.Name())
		}
	}
	return names, nil
}

// TestInfo returns the trimmed content of the subject's test_info.txt.
// A missing file is reported as os.ErrNotExist; a missing subject as
// ErrSubjectNotFound.
func TestInfo(root, subject string) (string, error) {
	return readInfoFile(root, subject, filenames.TestInfo)
}

// SubjectInfo returns the trimmed content of the subject's subject_info.txt.
// Errors are reported as for TestInfo.
func SubjectInfo(root, subject string) (string, error) {
	return readInfoFile(root, subject, filenames.SubjectInfo)
}

// SNPDataPath returns the path of the subject's genotype file.
// The file itself is not required to exist, but the subject is.
func SNPDataPath(root, subject string) (string, error) {
	dir, err := subjectDir(root, subject)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, filenames.SNPData), nil
}

func subjectDir(root, subject string) (string, error) {
	dir, err := dirnames.SubjectDir(root, subject)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSubjectNotFound, err)
	}
	if _, err := os.Stat(dir); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %q", ErrSubjectNotFound, subject)
		}
		return "", err
	}
	return dir, nil
}

func readInfoFile(root, subject, name string) (string, error) {
	dir, err := subjectDir(root, subject)
	if err != nil {
		return "", err
	}
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(b)), nil
}
