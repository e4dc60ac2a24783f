package m_collection

// Data represents the database model for the collections table.
type Data struct {
	CollectionID string `spanner:"collection_id"`
	Title        string `spanner:"title"`
}
