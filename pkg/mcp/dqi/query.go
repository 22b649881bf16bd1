// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

package dqi

import (
	"encoding/json"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var QuerySNPData = &mcp.Tool{
	Name: "query_snp_data",
	Description: `Queries SNP (Single Nucleotide Polymorphism) data for specific RSIDs from a
subject's genetic data. Each matching row contains the RSID, the chromosome, the base pair
position, and the two alleles (genotype). Check 'not_found_rsids' to see which RSIDs had no
matches in the genetic data.

Privacy protection: only rows matching the specified RSIDs are returned, with a maximum of
10 RSIDs per query.`,
	Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	// The input schema is spelled out because "rsids" accepts either a
	// single string or a list of strings, which cannot be inferred from
	// the Go type.
	InputSchema: &jsonschema.Schema{
		Type:     "object",
		Required: []string{"subject_name", "rsids"},
		Properties: map[string]*jsonschema.Schema{
			"subject_name": {
				Type:        "string",
				Description: "The name of the subject.",
			},
			"rsids": {
				Description: "A single RSID or a list of RSIDs (1-10 per query), e.g. \"rs3131972\" or [\"rs3131972\", \"rs1815739\"].",
				AnyOf: []*jsonschema.Schema{
					{Type: "string"},
					{Type: "array", Items: &jsonschema.Schema{Type: "string"}},
				},
			},
		},
	},
}

// RSIDs is the "single RSID or list of RSIDs" union. It unmarshals from
// either a JSON string or a JSON array of strings, normalizing to a slice
// at the interface boundary.
type RSIDs []string

func (r *RSIDs) UnmarshalJSON(b []byte) error {
	var single string
	if err := json.Unmarshal(b, &single); err == nil {
		*r = RSIDs{single}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*r = RSIDs(many)
	return nil
}

type QuerySNPDataParams struct {
	SubjectName string `json:"subject_name"`
	RSIDs       RSIDs  `json:"rsids"`
}

type QuerySNPDataResult struct {
	Subject       string   `json:"subject" jsonschema:"The subject the rows belong to."`
	Header        *string  `json:"header,omitempty" jsonschema:"The genotype file's column header, comma-delimited. Absent when the file has no header-eligible content."`
	MatchingRows  []string `json:"matching_rows" jsonschema:"Comma-delimited rows for found RSIDs, in file order."`
	QueriedRSIDs  []string `json:"queried_rsids" jsonschema:"The RSIDs that were searched for, as requested."`
	FoundCount    int      `json:"found_count" jsonschema:"Number of matching rows."`
	FoundRSIDs    []string `json:"found_rsids" jsonschema:"RSIDs that were found, deduplicated."`
	NotFoundRSIDs []string `json:"not_found_rsids" jsonschema:"Requested RSIDs with no match in the genetic data."`
}
