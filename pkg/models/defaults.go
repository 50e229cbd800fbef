package models

// Default filenames used when the user does not override them via config
// or flags. The export name matches what the downstream import tool
// expects to be handed.
const (
	DefaultDocumentFile = "kepware_hierarchy.json"
	DefaultExportFile   = "kepware_tags.csv"
	DefaultRootName     = "Root"
)
