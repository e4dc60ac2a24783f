package m_collection

// Field name constants for the collections table.
const (
	TableName = "collections"

	CollectionID = "collection_id"
	Title        = "title"
)

// Columns lists every column in read order.
var Columns = []string{
	CollectionID,
	Title,
}
