// Package schemas holds the JSON Schema documents shipped with the binary.
package schemas

import _ "embed"

// ResumeSchemaFile is the file name of the resume schema in this directory.
const ResumeSchemaFile = "resume.schema.json"

// Resume is the draft-07 JSON Schema every input document must satisfy.
//
//go:embed resume.schema.json
var Resume []byte
