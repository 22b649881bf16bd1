// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

package profile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/dna-mcp/dna-mcp/pkg/profile/filenames"
)

func newRoot(t *testing.T, subjects ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, s := range subjects {
		assert.NilError(t, os.Mkdir(filepath.Join(root, s), 0o755))
	}
	return root
}

func TestSubjects(t *testing.T) {
	root := newRoot(t, "b", "A", "a1")
	// a plain file must not be listed as a subject
	assert.NilError(t, os.WriteFile(filepath.Join(root, "README"), []byte("x"), 0o644))

	names, err := Subjects(root)
	assert.NilError(t, err)
	assert.DeepEqual(t, []string{"A", "a1", "b"}, names)
}

func TestSubjectsMissingRoot(t *testing.T) {
	names, err := Subjects(filepath.Join(t.TempDir(), "nonexistent"))
	assert.NilError(t, err)
	assert.Assert(t, len(names) == 0)
}

func TestTestInfo(t *testing.T) {
	root := newRoot(t, "subject1")
	content := "#AncestryDNA raw data download\n#Array version: V2.0\n"
	assert.NilError(t, os.WriteFile(filepath.Join(root, "subject1", filenames.TestInfo), []byte(content), 0o644))

	got, err := TestInfo(root, "subject1")
	assert.NilError(t, err)
	assert.Equal(t, "#AncestryDNA raw data download\n#Array version: V2.0", got)

	_, err = TestInfo(root, "ghost")
	assert.Assert(t, errors.Is(err, ErrSubjectNotFound))

	_, err = SubjectInfo(root, "subject1")
	assert.Assert(t, errors.Is(err, os.ErrNotExist))
}

func TestSNPDataPath(t *testing.T) {
	root := newRoot(t, "subject1")
	p, err := SNPDataPath(root, "subject1")
	assert.NilError(t, err)
	assert.Equal(t, filepath.Join(root, "subject1", filenames.SNPData), p)

	_, err = SNPDataPath(root, "ghost")
	assert.Assert(t, errors.Is(err, ErrSubjectNotFound))

	// path traversal must be rejected as "not found", before any stat
	_, err = SNPDataPath(root, "../escape")
	assert.Assert(t, errors.Is(err, ErrSubjectNotFound))
}
