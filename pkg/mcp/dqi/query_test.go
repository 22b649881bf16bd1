// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

package dqi

import (
	"encoding/json"
	"testing"

	"gotest.tools/v3/assert"
)

func TestRSIDsUnmarshal(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    RSIDs
		wantErr bool
	}{
		{name: "single string", in: `"rs3131972"`, want: RSIDs{"rs3131972"}},
		{name: "list", in: `["rs3131972","rs1815739"]`, want: RSIDs{"rs3131972", "rs1815739"}},
		{name: "empty list", in: `[]`, want: RSIDs{}},
		{name: "number", in: `42`, wantErr: true},
		{name: "object", in: `{"rsid":"rs1"}`, wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var got RSIDs
			err := json.Unmarshal([]byte(test.in), &got)
			if test.wantErr {
				assert.Assert(t, err != nil)
				return
			}
			assert.NilError(t, err)
			assert.DeepEqual(t, test.want, got)
		})
	}
}

func TestQuerySNPDataParamsUnmarshal(t *testing.T) {
	var params QuerySNPDataParams
	err := json.Unmarshal([]byte(`{"subject_name":"subject1","rsids":"rs3131972"}`), &params)
	assert.NilError(t, err)
	assert.Equal(t, "subject1", params.SubjectName)
	assert.DeepEqual(t, RSIDs{"rs3131972"}, params.RSIDs)
}
