// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

// Package dqi provides the "DNA Query Interface".
//
// DNA Query Interface defines MCP (Model Context Protocol) tools for
// read-only queries over per-subject genetic data stored as flat files.
// Subjects are directories under a common profiles root; each subject
// directory may carry free-text metadata files and a tab-delimited
// genotype file.
//
// The interface is deliberately narrow for privacy reasons:
//   - [QuerySNPData] returns only the rows matching explicitly requested
//     RSIDs, never the whole genotype file
//   - a single query is limited to 10 RSIDs
//   - every tool is read-only; nothing under the profiles root is ever
//     written by an implementation of this interface
package dqi
