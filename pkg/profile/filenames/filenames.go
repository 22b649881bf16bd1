// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

// Package filenames defines the names of the files that appear under a
// subject directory. All of them are optional and externally authored;
// this system only ever reads them.
package filenames

// Files under a subject directory:

const (
	// TestInfo describes the DNA test itself: testing company, collection
	// date, array version, format version.
	TestInfo = "test_info.txt"

	// SubjectInfo describes the person: demographics, background, notes.
	SubjectInfo = "subject_info.txt"

	// SNPData is the tab-delimited genotype file. An optional header line
	// names the columns: rsid, chromosome, position, allele1, allele2.
	SNPData = "snp.txt"
)
