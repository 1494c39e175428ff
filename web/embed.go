// Package web holds the static single-page front-end, embedded into the
// binary so the service ships as one artifact.
package web

import "embed"

//go:embed index.html styles.css script.js
var Static embed.FS
