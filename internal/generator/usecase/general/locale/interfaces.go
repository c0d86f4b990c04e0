package locale

// DataLoader interface implementation should return parsed locale data for domain file.
type DataLoader interface {
	// Load should return document for file name and locale code
	Load(fileName, code string) (Document, error)
}
