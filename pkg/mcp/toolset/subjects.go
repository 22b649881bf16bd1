// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

package toolset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/dna-mcp/dna-mcp/pkg/mcp/dqi"
	"github.com/dna-mcp/dna-mcp/pkg/profile"
	"github.com/dna-mcp/dna-mcp/pkg/profile/filenames"
	"github.com/dna-mcp/dna-mcp/pkg/ptr"
)

func (ts *ToolSet) ListSubjects(_ context.Context,
	_ *mcp.CallToolRequest, args dqi.ListSubjectsParams,
) (*mcp.CallToolResult, *dqi.ListSubjectsResult, error) {
	names, err := profile.Subjects(ts.root)
	if err != nil {
		return nil, nil, err
	}
	if names == nil {
		names = []string{}
	}
	if args.Pattern != nil && *args.Pattern != "" {
		re, err := regexp.Compile(*args.Pattern)
		if err != nil {
			// An invalid filter pattern is reported in-band as a
			// single-element list, not as a tool error.
			res := &dqi.ListSubjectsResult{
				Subjects: []string{fmt.Sprintf("Error: Invalid regex pattern %q: %v", *args.Pattern, err)},
			}
			return &mcp.CallToolResult{StructuredContent: res}, res, nil
		}
		filtered := []string{}
		for _, name := range names {
			if re.MatchString(name) {
				filtered = append(filtered, name)
			}
		}
		names = filtered
	}
	res := &dqi.ListSubjectsResult{
		Subjects: names,
	}
	return &mcp.CallToolResult{StructuredContent: res}, res, nil
}

func (ts *ToolSet) GetTestInfo(_ context.Context,
	_ *mcp.CallToolRequest, args dqi.GetTestInfoParams,
) (*mcp.CallToolResult, *dqi.InfoResult, error) {
	return ts.infoResult(args.SubjectName, filenames.TestInfo, profile.TestInfo,
		"information about the DNA test itself (company, date, array version, etc.)")
}

func (ts *ToolSet) GetSubjectInfo(_ context.Context,
	_ *mcp.CallToolRequest, args dqi.GetSubjectInfoParams,
) (*mcp.CallToolResult, *dqi.InfoResult, error) {
	return ts.infoResult(args.SubjectName, filenames.SubjectInfo, profile.SubjectInfo,
		"personal information about the individual (demographics, background, etc.)")
}

func (ts *ToolSet) infoResult(subject, fileName string,
	read func(root, subject string) (string, error), hint string,
) (*mcp.CallToolResult, *dqi.InfoResult, error) {
	content, err := read(ts.root, subject)
	switch {
	case err == nil:
		res := &dqi.InfoResult{
			Subject: subject,
			Info:    ptr.Of(content),
		}
		return &mcp.CallToolResult{StructuredContent: res}, res, nil
	case errors.Is(err, profile.ErrSubjectNotFound):
		return nil, nil, fmt.Errorf("subject %q not found", subject)
	case errors.Is(err, os.ErrNotExist):
		// The info file is optional; its absence is a message, not an error.
		res := &dqi.InfoResult{
			Subject: subject,
			Message: fmt.Sprintf("No %s file found for subject %q. You can create this optional file to add %s.",
				fileName, subject, hint),
		}
		return &mcp.CallToolResult{StructuredContent: res}, res, nil
	default:
		return nil, nil, fmt.Errorf("failed to read %s for subject %q: %w", fileName, subject, err)
	}
}
