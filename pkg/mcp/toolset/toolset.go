// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

// Package toolset implements the DNA Query Interface (dqi) tools over a
// profiles directory on the local filesystem.
package toolset

import (
	"errors"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/sirupsen/logrus"

	"github.com/dna-mcp/dna-mcp/pkg/mcp/dqi"
)

// New returns a ToolSet bound to the profiles root. The root is resolved
// once by the caller and stays read-only for the lifetime of the ToolSet;
// it does not have to exist yet.
func New(root string) (*ToolSet, error) {
	if root == "" {
		return nil, errors.New("profiles root must not be empty")
	}
	if _, err := os.Stat(root); errors.Is(err, os.ErrNotExist) {
		logrus.Warnf("profiles directory %q does not exist yet", root)
	}
	ts := &ToolSet{
		root: root,
	}
	return ts, nil
}

type ToolSet struct {
	root string
}

// Root returns the profiles root the ToolSet was constructed with.
func (ts *ToolSet) Root() string {
	return ts.root
}

func (ts *ToolSet) RegisterServer(server *mcp.Server) error {
	mcp.AddTool(server, dqi.ListSubjects, ts.ListSubjects)
	mcp.AddTool(server, dqi.GetTestInfo, ts.GetTestInfo)
	mcp.AddTool(server, dqi.GetSubjectInfo, ts.GetSubjectInfo)
	mcp.AddTool(server, dqi.QuerySNPData, ts.QuerySNPData)
	return nil
}
