// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

package dirnames

import (
	"path/filepath"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestProfilesDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("DNA_PROFILES", dir)
	got, err := ProfilesDir()
	assert.NilError(t, err)
	// TempDir may contain symlinked components (e.g. /tmp on macOS),
	// so compare after resolving them.
	want, err := filepath.EvalSymlinks(dir)
	assert.NilError(t, err)
	assert.Equal(t, want, got)

	t.Setenv("DNA_PROFILES", filepath.Join(dir, "does-not-exist-yet"))
	got, err = ProfilesDir()
	assert.NilError(t, err)
	assert.Equal(t, filepath.Join(dir, "does-not-exist-yet"), got)
}

func TestSubjectDir(t *testing.T) {
	dir, err := SubjectDir("/root", "alice")
	assert.NilError(t, err)
	assert.Equal(t, filepath.Join("/root", "alice"), dir)

	_, err = SubjectDir("/root", "../etc")
	assert.Assert(t, err != nil)
}

func TestValidateSubjectName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"subject1", false},
		{"john", false},
		{"John.Doe-2_b", false},
		{"A", false},
		{"", true},
		{".", true},
		{"..", true},
		{"../escape", true},
		{"a/b", true},
		{"white space", true},
		{"-leading", true},
		{"trailing.", true},
		{strings.Repeat("a", maxSubjectNameLength+1), true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateSubjectName(test.name)
			if test.wantErr {
				assert.Assert(t, err != nil)
			} else {
				assert.NilError(t, err)
			}
		})
	}
}
