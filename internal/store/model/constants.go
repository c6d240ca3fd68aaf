package model

const (
	CollectionTypeVideo      = "video"
	CollectionTypeAudio      = "audio"
	CollectionTypeDoc        = "doc"
	CollectionTypeImage      = "image"
	CollectionTypeText       = "text"
	CollectionTypeCollection = "collection"
	CollectionTypeTable      = "table"
	CollectionTypeDocument   = "document"
	CollectionTypeWebpage    = "webpage"
	CollectionTypeEmail      = "email"
	CollectionTypeContact    = "contact"
	CollectionTypeEvals      = "evals"
)

var collectionTypes = map[string]bool{
	CollectionTypeVideo:      true,
	CollectionTypeAudio:      true,
	CollectionTypeDoc:        true,
	CollectionTypeImage:      true,
	CollectionTypeText:       true,
	CollectionTypeCollection: true,
	CollectionTypeTable:      true,
	CollectionTypeDocument:   true,
	CollectionTypeWebpage:    true,
	CollectionTypeEmail:      true,
	CollectionTypeContact:    true,
	CollectionTypeEvals:      true,
}

// Tabular types get a dedicated data collection per token; the rest share one
// data collection per type, filtered by token.
var tabularTypes = map[string]bool{
	CollectionTypeTable:      true,
	CollectionTypeCollection: true,
	CollectionTypeEmail:      true,
	CollectionTypeContact:    true,
	CollectionTypeEvals:      true,
}

func IsValidCollectionType(t string) bool {
	return collectionTypes[t]
}

func IsTabularType(t string) bool {
	return tabularTypes[t]
}

// DataCollectionName returns the Mongo collection holding a registered
// collection's documents.
func DataCollectionName(collectionType, token string) string {
	if IsTabularType(collectionType) {
		return "collection_data_" + token
	}
	return "collection_data_" + collectionType
}
