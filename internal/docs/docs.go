// Package docs embeds the user-facing documents shared by the web and terminal adapters.
package docs

import _ "embed"

// Explanation is the Markdown description of the diffusion model.
//
//go:embed explanation.md
var Explanation string
