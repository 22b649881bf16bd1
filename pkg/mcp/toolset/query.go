// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

package toolset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dna-mcp/dna-mcp/pkg/mcp/dqi"
	"github.com/dna-mcp/dna-mcp/pkg/profile"
	"github.com/dna-mcp/dna-mcp/pkg/profile/filenames"
	"github.com/dna-mcp/dna-mcp/pkg/rsid"
	"github.com/dna-mcp/dna-mcp/pkg/snp"
)

func (ts *ToolSet) QuerySNPData(_ context.Context,
	_ *mcp.CallToolRequest, args dqi.QuerySNPDataParams,
) (*mcp.CallToolResult, *dqi.QuerySNPDataResult, error) {
	rsids := make([]string, len(args.RSIDs))
	for i, r := range args.RSIDs {
		rsids[i] = strings.TrimSpace(r)
	}
	// Size and format checks run before any filesystem access.
	if err := rsid.ValidateQuery(rsids); err != nil {
		return nil, nil, err
	}
	path, err := profile.SNPDataPath(ts.root, args.SubjectName)
	if err != nil {
		if errors.Is(err, profile.ErrSubjectNotFound) {
			return nil, nil, fmt.Errorf("subject %q not found", args.SubjectName)
		}
		return nil, nil, err
	}
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, fmt.Errorf("no %s file found for subject %q", filenames.SNPData, args.SubjectName)
		}
		return nil, nil, err
	}
	qr, err := snp.Query(path, rsids)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query SNP data for subject %q: %w", args.SubjectName, err)
	}
	res := &dqi.QuerySNPDataResult{
		Subject:       args.SubjectName,
		Header:        qr.Header,
		MatchingRows:  qr.MatchingRows,
		QueriedRSIDs:  rsids,
		FoundCount:    len(qr.MatchingRows),
		FoundRSIDs:    qr.Found,
		NotFoundRSIDs: qr.NotFound(rsids),
	}
	return &mcp.CallToolResult{StructuredContent: res}, res, nil
}
