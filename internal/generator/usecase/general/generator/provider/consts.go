package provider

// Gender type is used to select gendered data.
type Gender string

const (
	Female Gender = "female"
	Male   Gender = "male"
)

// Provider names.
const (
	AddressName       = "address"
	PersonName        = "person"
	FinanceName       = "finance"
	DatetimeName      = "datetime"
	TextName          = "text"
	CodeName          = "code"
	PaymentName       = "payment"
	InternetName      = "internet"
	CryptographicName = "cryptographic"
	HardwareName      = "hardware"
	BrazilName        = "brazil"
	RussiaName        = "russia"
	PolandName        = "poland"
	NetherlandsName   = "netherlands"
	USAName           = "usa"
)

// MaxQuantity limits size params: number of words or sentences, password length and token entropy.
const MaxQuantity = 100_000

// KeySeparator splits method key into provider name and method name.
const KeySeparator = "."
