// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

// Package snp scans per-subject genotype files.
//
// A genotype file is tab-delimited: an optional header line naming the
// columns (rsid, chromosome, position, allele1, allele2) followed by one
// row per known variant position. Files can be large (hundreds of
// thousands of rows), so the scan streams line by line and buffers only
// the matching rows.
package snp

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/dna-mcp/dna-mcp/pkg/ptr"
)

// maxLineBytes bounds a single line of the genotype file.
const maxLineBytes = 1024 * 1024

// Result holds the outcome of one pass over a genotype file.
type Result struct {
	// Header is the first non-blank line with the field separator
	// normalized from tab to comma, or nil if the file had no
	// header-eligible content.
	Header *string

	// MatchingRows are the comma-rejoined rows whose first column matched
	// a requested RSID, in order of first appearance in the file.
	MatchingRows []string

	// Found are the requested RSIDs that matched at least one row,
	// deduplicated, in order of first appearance in the file.
	Found []string
}

// NotFound partitions queried against the found set, preserving the order
// and the duplicates of queried.
func (r *Result) NotFound(queried []string) []string {
	found := make(map[string]bool, len(r.Found))
	for _, f := range r.Found {
		found[f] = true
	}
	notFound := []string{}
	for _, q := range queried {
		if !found[q] {
			notFound = append(notFound, q)
		}
	}
	return notFound
}

// Query scans the genotype file at path exactly once and collects the rows
// whose first column is equal to one of rsids. Lines that do not match are
// discarded immediately, so memory stays proportional to the number of
// matches. Callers are expected to have validated rsids beforehand.
func Query(path string, rsids []string) (*Result, error) {
	requested := make(map[string]bool, len(rsids))
	for _, r := range rsids {
		requested[r] = true
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res := &Result{MatchingRows: []string{}, Found: []string{}}
	foundSet := make(map[string]bool)

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		// The first non-blank line is the header, never a data row.
		if res.Header == nil {
			res.Header = ptr.Of(strings.ReplaceAll(line, "\t", ","))
			continue
		}
		fields := strings.Split(line, "\t")
		if !requested[fields[0]] {
			continue
		}
		res.MatchingRows = append(res.MatchingRows, strings.Join(fields, ","))
		if !foundSet[fields[0]] {
			foundSet[fields[0]] = true
			res.Found = append(res.Found, fields[0])
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %q: %w", path, err)
	}
	return res, nil
}
