// SPDX-FileCopyrightText: Copyright The Lima Authors
// SPDX-License-Identifier: Apache-2.0

// Package rsid provides validation for reference SNP cluster identifiers.
//
// An RSID names a specific genomic variant position and has the string form
// "rs" followed by one or more digits, e.g. "rs3131972". Identifiers that
// pass this validation are safe to compare against the first column of a
// genotype file with plain string equality.
package rsid

import (
	"fmt"
	"regexp"
	"strings"
)

// MaxPerQuery bounds how many RSIDs a single query may probe.
// This is a privacy control, not a performance control: it limits how much
// of a subject's genome can be read out per call.
const MaxPerQuery = 10

var rsidRe = regexp.MustCompile(`^rs[0-9]+$`)

// Validate returns nil if s is a valid RSID after trimming surrounding
// whitespace.
func Validate(s string) error {
	if !rsidRe.MatchString(strings.TrimSpace(s)) {
		return fmt.Errorf("rsid %q must match %v", s, rsidRe)
	}
	return nil
}

// ValidateAll validates every element of rsids and reports all invalid
// tokens in a single error. Validation is all-or-nothing: one invalid
// identifier fails the whole batch.
func ValidateAll(rsids []string) error {
	var invalid []string
	for _, r := range rsids {
		if err := Validate(r); err != nil {
			invalid = append(invalid, r)
		}
	}
	if len(invalid) > 0 {
		return fmt.Errorf("invalid RSID format(s): %q. RSIDs must match pattern: rs followed by digits (e.g., rs123456)", invalid)
	}
	return nil
}

// ValidateQuery checks the size bound first and then the format of every
// element. Both checks run before any file access.
func ValidateQuery(rsids []string) error {
	if len(rsids) == 0 {
		return fmt.Errorf("at least 1 RSID must be provided")
	}
	if len(rsids) > MaxPerQuery {
		return fmt.Errorf("maximum %d RSIDs allowed per query for privacy protection", MaxPerQuery)
	}
	return ValidateAll(rsids)
}
