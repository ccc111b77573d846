/*
Ashgen generates static site data for a self-hosted software catalog.

It ingests the awesome-selfhosted YAML dataset (software entries plus tag,
platform and license records), computes a related-applications ranking for
every entry, and writes the JSON data files, sitemap and robots directives a
static frontend serves as-is.

# Usage

Fetch and cache the processed catalog:

	ashgen fetch

Build all site data into the output directory:

	ashgen build

Query the related-apps engine for one entry:

	ashgen related nextcloud

Complete application names by prefix:

	ashgen search next

Rebuild automatically while editing dataset files:

	ashgen watch

# Configuration

Runtime configuration lives in a TOML file (./config.toml by default, or
--config PATH). Scoring knobs for the related-apps engine sit under the
[related] table:

	[related]
	min_score = 3
	max_results = 6
	tiebreakers = ["stars", "name"]

	[related.scoring.categories]
	enabled = true
	points_per_match = 4

Every signal can be toggled and weighted independently; missing keys keep
their defaults. Malformed values abort at startup before any scoring runs.

# Related-apps engine

Rankings combine phrase overlap between descriptions with shared
categories, alternative-to and fork relations, shared platforms, license
freedom parity, popularity tier parity and dependency parity. Phrase
extraction is memoized per catalog, so a full build extracts each
description once.
*/
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
