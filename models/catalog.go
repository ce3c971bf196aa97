package models

// CatalogRecord is implemented by every catalog row the API can serve as a
// favorite target. Handlers only need the record for serialization, so the
// interface stays minimal.
type CatalogRecord interface {
	RecordID() int64
	TableName() string
}
