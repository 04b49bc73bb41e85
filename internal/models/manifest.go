package models

// StagedFile describes a single file copied into a staging workspace.
type StagedFile struct {
	Name   string `yaml:"name"`
	Size   int64  `yaml:"size"`
	SHA256 string `yaml:"sha256"`
}

// Manifest is the YAML document describing the content of a staging workspace.
type Manifest struct {
	Workspace string       `yaml:"workspace"`
	CreatedAt string       `yaml:"createdAt"`
	Files     []StagedFile `yaml:"files"`
}
