// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

package rsid

import (
	"strconv"
	"testing"

	"gotest.tools/v3/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		rsid    string
		wantErr bool
	}{
		{"rs3131972", false},
		{"rs1", false},
		{" rs123 ", false},
		{"rs123\n", false},
		{"", true},
		{"rs", true},
		{"rs12a", true},
		{"12345", true},
		{"RS123", true},
		{"rs 123", true},
	}
	for _, test := range tests {
		t.Run(strconv.Quote(test.rsid), func(t *testing.T) {
			err := Validate(test.rsid)
			if test.wantErr {
				assert.Assert(t, err != nil)
			} else {
				assert.NilError(t, err)
			}
		})
	}
}

func TestValidateAll(t *testing.T) {
	assert.NilError(t, ValidateAll([]string{"rs1", "rs22", "rs333"}))

	// every invalid token must be named, not just the first
	err := ValidateAll([]string{"rs1", "rs12a", "12345"})
	assert.ErrorContains(t, err, "rs12a")
	assert.ErrorContains(t, err, "12345")
}

func TestValidateQuery(t *testing.T) {
	assert.NilError(t, ValidateQuery([]string{"rs1"}))

	err := ValidateQuery(nil)
	assert.ErrorContains(t, err, "at least 1 RSID")

	oversized := make([]string, MaxPerQuery+1)
	for i := range oversized {
		oversized[i] = "rs" + strconv.Itoa(i)
	}
	err = ValidateQuery(oversized)
	assert.ErrorContains(t, err, "privacy protection")

	// the size bound is checked before the format of the elements
	err = ValidateQuery(make([]string, MaxPerQuery+1))
	assert.ErrorContains(t, err, "privacy protection")
}
