package render

import _ "embed"

// entryTemplate is the .desktop descriptor layout. Key order follows
// the order the fields are set during installation.
//
//go:embed entry.tmpl.desktop
var entryTemplate string
