package models

import "fmt"

// DataType is the value type of an exported tag. The string values double
// as the "Data Type" column in the Kepware CSV and the "dataType" field in
// saved hierarchy documents.
type DataType string

const (
	TypeString  DataType = "string"
	TypeInteger DataType = "integer"
	TypeBoolean DataType = "boolean"
)

// Kind distinguishes container nodes from leaf tags.
type Kind string

const (
	KindFolder Kind = "folder"
	KindTag    Kind = "tag"
)

// TagRecord is one flattened tag ready for export: the dot-joined path of
// its ancestor folders (root excluded) plus its own name, and its type.
type TagRecord struct {
	FullName string
	DataType DataType
}

// IsValid reports whether d is one of the three supported tag types.
func (d DataType) IsValid() bool {
	switch d {
	case TypeString, TypeInteger, TypeBoolean:
		return true
	}
	return false
}

// ParseDataType converts a user-supplied type name into a DataType.
func ParseDataType(s string) (DataType, error) {
	dt := DataType(s)
	if !dt.IsValid() {
		return "", fmt.Errorf("unknown data type %q (expected string, integer or boolean)", s)
	}
	return dt, nil
}
