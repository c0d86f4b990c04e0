package provider

// Locale independent data of providers.
var (
	commonWords = []string{
		"able", "acid", "actor", "agent", "alpha", "amber", "angle", "apple", "arrow", "atlas",
		"autumn", "badge", "baker", "basin", "beacon", "berry", "blaze", "bloom", "board", "bolt",
		"brave", "breeze", "brick", "bridge", "brook", "cable", "canyon", "carbon", "cedar", "chalk",
		"cherry", "cider", "cliff", "cloud", "clover", "coast", "comet", "coral", "cosmic", "cotton",
		"crane", "crest", "crystal", "dawn", "delta", "desert", "dune", "eagle", "echo", "ember",
		"falcon", "fern", "field", "flame", "flint", "forest", "fox", "frost", "garden", "glacier",
		"granite", "harbor", "hazel", "hollow", "horizon", "indigo", "island", "ivory", "jade", "jungle",
		"lake", "lantern", "lemon", "lunar", "maple", "marble", "meadow", "mint", "moss", "nova",
		"oak", "ocean", "olive", "onyx", "orbit", "pebble", "pine", "planet", "prairie", "quartz",
		"raven", "reef", "river", "rocket", "sage", "shadow", "silver", "solar", "spark", "spruce",
		"stone", "storm", "summit", "thunder", "tiger", "timber", "valley", "velvet", "willow", "zephyr",
	}

	emailDomains = []string{
		"@example.com", "@example.org", "@example.net", "@mail.test", "@inbox.test",
		"@post.test", "@letters.test", "@mailbox.test",
	}

	usernameTemplates = []string{"U_d", "U.d", "U-d", "UU-d", "UU.d", "UU_d", "ld", "l-d", "Ud", "l.d", "l_d", "default"}

	passwordCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

	stockTickers = []string{
		"AAPL", "ABNB", "ADBE", "AMD", "AMZN", "BA", "BAC", "CRM", "CSCO", "DIS",
		"GOOG", "IBM", "INTC", "JPM", "KO", "MA", "META", "MSFT", "NFLX", "NVDA",
		"ORCL", "PEP", "PFE", "PYPL", "QCOM", "SBUX", "T", "TSLA", "UBER", "V",
		"VZ", "WMT", "XOM",
	}

	countryCodes = []countryCode{
		{a2: "AT", a3: "AUT", numeric: "040"}, {a2: "BR", a3: "BRA", numeric: "076"},
		{a2: "CA", a3: "CAN", numeric: "124"}, {a2: "CH", a3: "CHE", numeric: "756"},
		{a2: "CN", a3: "CHN", numeric: "156"}, {a2: "DE", a3: "DEU", numeric: "276"},
		{a2: "DK", a3: "DNK", numeric: "208"}, {a2: "ES", a3: "ESP", numeric: "724"},
		{a2: "FI", a3: "FIN", numeric: "246"}, {a2: "FR", a3: "FRA", numeric: "250"},
		{a2: "GB", a3: "GBR", numeric: "826"}, {a2: "IN", a3: "IND", numeric: "356"},
		{a2: "IS", a3: "ISL", numeric: "352"}, {a2: "IT", a3: "ITA", numeric: "380"},
		{a2: "JP", a3: "JPN", numeric: "392"}, {a2: "MX", a3: "MEX", numeric: "484"},
		{a2: "NL", a3: "NLD", numeric: "528"}, {a2: "NO", a3: "NOR", numeric: "578"},
		{a2: "PL", a3: "POL", numeric: "616"}, {a2: "PT", a3: "PRT", numeric: "620"},
		{a2: "RU", a3: "RUS", numeric: "643"}, {a2: "SE", a3: "SWE", numeric: "752"},
		{a2: "US", a3: "USA", numeric: "840"}, {a2: "ZA", a3: "ZAF", numeric: "710"},
	}

	romanNumerals = []string{
		"I", "II", "III", "IV", "V", "VI", "VII", "VIII", "IX", "X",
		"XI", "XII", "XIII", "XIV", "XV", "XVI", "XVII", "XVIII", "XIX", "XX", "XXI",
	}

	cardNetworks = []string{"Visa", "MasterCard", "Chase", "American Express", "Discover"}

	issuingNetworks = []string{
		"American Express", "Bankcard", "China UnionPay", "Diners Club International",
		"Discover Card", "InstaPayment", "InterPayment", "JCB", "Maestro", "MasterCard",
		"Mir", "Troy", "UATP", "Verve", "Visa", "Visa Electron",
	}

	imeiTACs = []string{
		"01124500", "01161200", "01194800", "01233600", "35150900", "35332706",
		"35391805", "35875505", "35925406", "49015420", "86014203", "99000862",
	}

	cpus = []string{
		"AMD Ryzen 7 5800X", "AMD Ryzen 9 7950X", "AMD Ryzen 5 5600", "AMD EPYC 7763",
		"Intel Core i3", "Intel Core i5", "Intel Core i7", "Intel Core i9", "Intel Xeon",
		"Apple M1", "Apple M2", "Apple M3", "Qualcomm Snapdragon 8 Gen 2",
	}

	cpuGenerations = []string{
		"2nd Generation", "3rd Generation", "4th Generation", "5th Generation", "6th Generation",
		"7th Generation", "8th Generation", "9th Generation", "10th Generation", "11th Generation",
		"12th Generation", "13th Generation",
	}

	resolutions = []string{
		"1152x768", "1280x800", "1366x768", "1440x900", "1600x900", "1680x1050",
		"1920x1080", "1920x1200", "2560x1440", "2560x1600", "2880x1800", "3840x2160",
	}

	screenSizes = []string{
		`11.6″`, `12.1″`, `13.3″`, `14″`, `15.4″`, `15.6″`, `16″`, `17″`, `17.3″`, `24″`, `27″`, `32″`,
	}

	ramTypes = []string{"DDR", "DDR2", "DDR3", "DDR4", "DDR5", "LPDDR4", "LPDDR5", "SDRAM"}

	ramSizes = []string{"4GB", "8GB", "12GB", "16GB", "32GB", "64GB", "128GB"}

	storageDevices = []string{
		"256GB SSD", "512GB SSD", "1TB SSD", "2TB SSD", "500GB HDD", "1TB HDD", "2TB HDD", "4TB HDD",
	}

	graphicsCards = []string{
		"AMD Radeon RX 6700 XT", "AMD Radeon RX 7900 XTX", "Intel Arc A770", "Intel Iris Xe Graphics",
		"Nvidia GeForce GTX 1660", "Nvidia GeForce RTX 3060", "Nvidia GeForce RTX 3080",
		"Nvidia GeForce RTX 4070", "Nvidia GeForce RTX 4090", "Apple M2 GPU",
	}

	manufacturers = []string{
		"Acer", "Apple", "Asus", "Dell", "Fujitsu", "HP", "Huawei", "Lenovo",
		"LG", "Microsoft", "MSI", "Razer", "Samsung", "Sony", "Toshiba", "Xiaomi",
	}

	phoneModels = []string{
		"Google Pixel 7", "Google Pixel 8 Pro", "iPhone 13", "iPhone 14 Pro", "iPhone 15",
		"Motorola Edge 40", "Nokia G42", "OnePlus 11", "Samsung Galaxy A54", "Samsung Galaxy S23",
		"Sony Xperia 1 V", "Xiaomi 13T",
	}

	hashAlgorithms = []string{"md5", "sha1", "sha224", "sha256", "sha384", "sha512"}

	trackingMasks = map[string][]string{
		"usps":  {"#### #### #### #### ####", "@@ ### ### ### US"},
		"fedex": {"#### #### ####", "#### #### #### ###"},
		"ups":   {"1Z@####@##########"},
	}

	mbtiTypes = []string{
		"ISFJ", "ISTJ", "INFJ", "INTJ", "ISTP", "ISFP", "INFP", "INTP",
		"ESTP", "ESFP", "ENFP", "ENTP", "ESTJ", "ESFJ", "ENFJ", "ENTJ",
	}

	kppTaxCodes = []string{
		"7700", "7701", "7702", "7703", "7704", "7705", "7706", "7707", "7708", "7709",
		"7710", "7711", "7712", "7713", "7714", "7715", "7716", "7717", "7718", "7719",
		"7720", "7721", "7722", "7723", "7724", "7725", "7726", "7727", "7728", "7729",
		"7730", "7731", "7732", "7733", "7734", "7735", "7736", "7740", "7741", "7742",
		"7743", "7745", "7746", "7747", "7748", "7749", "7750", "7751",
	}
)

type countryCode struct {
	a2      string
	a3      string
	numeric string
}
