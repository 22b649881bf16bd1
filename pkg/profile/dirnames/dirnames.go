// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

// Package dirnames resolves the on-disk layout of DNA profiles:
// one root directory containing one subdirectory per subject.
package dirnames

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

// DNAProfiles is a directory that appears under the home directory.
const DNAProfiles = "dna-profiles"

// subjectNameRe restricts subject names to alphanumerics with limited
// underscores, dashes and dots, so names are guaranteed to be safely
// usable as filesystem path components.
var subjectNameRe = regexp.MustCompile(`^[A-Za-z0-9]+(?:[._-][A-Za-z0-9]+)*$`)

const maxSubjectNameLength = 76

// ProfilesDir returns the absolute path of `~/dna-profiles`
// (or $DNA_PROFILES, if set).
func ProfilesDir() (string, error) {
	dir := os.Getenv("DNA_PROFILES")
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(homeDir, DNAProfiles)
	}
	if _, err := os.Stat(dir); errors.Is(err, os.ErrNotExist) {
		return dir, nil
	}
	realdir, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return "", fmt.Errorf("cannot evaluate symlinks in %q: %w", dir, err)
	}
	return realdir, nil
}

// SubjectDir returns the directory of the named subject under root.
// SubjectDir does not check whether the subject exists.
func SubjectDir(root, name string) (string, error) {
	if err := ValidateSubjectName(name); err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}

// ValidateSubjectName checks that name is usable as a directory name under
// the profiles root. The character set follows the identifier rules that
// containerd (and Lima) apply to instance names.
func ValidateSubjectName(name string) error {
	if name == "" {
		return errors.New("subject name must not be empty")
	}
	if len(name) > maxSubjectNameLength {
		return fmt.Errorf("subject name %q greater than maximum length (%d characters)", name, maxSubjectNameLength)
	}
	if !subjectNameRe.MatchString(name) {
		return fmt.Errorf("subject name %q must match %v", name, subjectNameRe)
	}
	return nil
}
