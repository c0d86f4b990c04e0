package locale

const (
	// DefaultLocale is used when no locale is requested.
	DefaultLocale = "en"
	// Separator splits locale code into master and region parts.
	Separator = "-"
)

// Data files shipped for every registered locale.
const (
	AddressFile  = "address.json"
	PersonFile   = "person.json"
	FinanceFile  = "finance.json"
	DatetimeFile = "datetime.json"
	TextFile     = "text.json"
)

// DataFiles lists all domain files of the locale data store.
var DataFiles = []string{
	AddressFile,
	PersonFile,
	FinanceFile,
	DatetimeFile,
	TextFile,
}
