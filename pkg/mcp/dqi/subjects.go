// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

package dqi

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var ListSubjects = &mcp.Tool{
	Name: "list_subjects",
	Description: `Lists all available DNA test subjects. DNA samples are organized by subjects,
where each subject represents an individual with genetic test data available for analysis.`,
	Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
}

type ListSubjectsParams struct {
	Pattern *string `json:"pattern,omitempty" jsonschema:"Optional regular expression to filter subject names. Only names where the pattern matches somewhere in the name are returned."`
}

type ListSubjectsResult struct {
	Subjects []string `json:"subjects" jsonschema:"Subject names sorted lexicographically. On an invalid filter pattern this is a single-element list carrying the error message."`
}

var GetTestInfo = &mcp.Tool{
	Name: "get_test_info",
	Description: `Gets metadata about a specific DNA test (not the subject personally, but the test itself):
testing company, test date, array version, data format version, legal disclaimers.`,
	Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
}

type GetTestInfoParams struct {
	SubjectName string `json:"subject_name" jsonschema:"The name of the subject."`
}

var GetSubjectInfo = &mcp.Tool{
	Name: "get_subject_info",
	Description: `Gets information about a specific subject (person): demographics, background,
or other metadata about the person whose DNA was tested.`,
	Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
}

type GetSubjectInfoParams struct {
	SubjectName string `json:"subject_name" jsonschema:"The name of the subject."`
}

// InfoResult is the common result shape of [GetTestInfo] and [GetSubjectInfo].
type InfoResult struct {
	Subject string  `json:"subject" jsonschema:"The subject the info belongs to."`
	Info    *string `json:"info,omitempty" jsonschema:"The raw content of the info file. Absent when the optional file does not exist."`
	Message string  `json:"message,omitempty" jsonschema:"Explanation when info is absent."`
}
