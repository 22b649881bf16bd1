// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"sort"
	"testing"

	"gotest.tools/v3/assert"
)

func TestNewApp(t *testing.T) {
	cmd := newApp()
	assert.Equal(t, "dna-mcp", cmd.Use)
	subcommands := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		subcommands[sub.Name()] = true
	}
	for _, name := range []string{"serve", "info", "generate-doc"} {
		assert.Assert(t, subcommands[name], "missing subcommand %q", name)
	}
}

func TestInspectInfo(t *testing.T) {
	t.Setenv("DNA_PROFILES", t.TempDir())
	info, err := inspectInfo(context.Background())
	assert.NilError(t, err)

	names := make([]string, 0, len(info.Tools))
	for _, tool := range info.Tools {
		names = append(names, tool.Name)
	}
	sort.Strings(names)
	assert.DeepEqual(t, []string{"get_subject_info", "get_test_info", "list_subjects", "query_snp_data"}, names)
}
