package tz

// countryZones maps lower-cased country names, as the schedule provider spells
// them, to the zone of the country's capital or most populous region.
var countryZones = map[string]string{
	"afghanistan":            "Asia/Kabul",
	"albania":                "Europe/Tirane",
	"algeria":                "Africa/Algiers",
	"andorra":                "Europe/Andorra",
	"angola":                 "Africa/Luanda",
	"argentina":              "America/Argentina/Buenos_Aires",
	"armenia":                "Asia/Yerevan",
	"australia":              "Australia/Sydney",
	"austria":                "Europe/Vienna",
	"azerbaijan":             "Asia/Baku",
	"bahrain":                "Asia/Bahrain",
	"bangladesh":             "Asia/Dhaka",
	"belarus":                "Europe/Minsk",
	"belgium":                "Europe/Brussels",
	"bolivia":                "America/La_Paz",
	"bosnia and herzegovina": "Europe/Sarajevo",
	"bosnia-herzegovina":     "Europe/Sarajevo",
	"botswana":               "Africa/Gaborone",
	"brazil":                 "America/Sao_Paulo",
	"bulgaria":               "Europe/Sofia",
	"burkina faso":           "Africa/Ouagadougou",
	"cameroon":               "Africa/Douala",
	"canada":                 "America/Toronto",
	"chile":                  "America/Santiago",
	"china":                  "Asia/Shanghai",
	"colombia":               "America/Bogota",
	"costa rica":             "America/Costa_Rica",
	"croatia":                "Europe/Zagreb",
	"cuba":                   "America/Havana",
	"cyprus":                 "Asia/Nicosia",
	"czech republic":         "Europe/Prague",
	"czechia":                "Europe/Prague",
	"denmark":                "Europe/Copenhagen",
	"dominican republic":     "America/Santo_Domingo",
	"ecuador":                "America/Guayaquil",
	"egypt":                  "Africa/Cairo",
	"el salvador":            "America/El_Salvador",
	"england":                "Europe/London",
	"estonia":                "Europe/Tallinn",
	"ethiopia":               "Africa/Addis_Ababa",
	"faroe islands":          "Atlantic/Faroe",
	"fiji":                   "Pacific/Fiji",
	"finland":                "Europe/Helsinki",
	"france":                 "Europe/Paris",
	"georgia":                "Asia/Tbilisi",
	"germany":                "Europe/Berlin",
	"ghana":                  "Africa/Accra",
	"gibraltar":              "Europe/Gibraltar",
	"greece":                 "Europe/Athens",
	"guatemala":              "America/Guatemala",
	"honduras":               "America/Tegucigalpa",
	"hong kong":              "Asia/Hong_Kong",
	"hungary":                "Europe/Budapest",
	"iceland":                "Atlantic/Reykjavik",
	"india":                  "Asia/Kolkata",
	"indonesia":              "Asia/Jakarta",
	"iran":                   "Asia/Tehran",
	"iraq":                   "Asia/Baghdad",
	"ireland":                "Europe/Dublin",
	"israel":                 "Asia/Jerusalem",
	"italy":                  "Europe/Rome",
	"ivory coast":            "Africa/Abidjan",
	"jamaica":                "America/Jamaica",
	"japan":                  "Asia/Tokyo",
	"jordan":                 "Asia/Amman",
	"kazakhstan":             "Asia/Almaty",
	"kenya":                  "Africa/Nairobi",
	"kosovo":                 "Europe/Belgrade",
	"kuwait":                 "Asia/Kuwait",
	"latvia":                 "Europe/Riga",
	"lebanon":                "Asia/Beirut",
	"libya":                  "Africa/Tripoli",
	"liechtenstein":          "Europe/Vaduz",
	"lithuania":              "Europe/Vilnius",
	"luxembourg":             "Europe/Luxembourg",
	"malaysia":               "Asia/Kuala_Lumpur",
	"mali":                   "Africa/Bamako",
	"malta":                  "Europe/Malta",
	"mexico":                 "America/Mexico_City",
	"moldova":                "Europe/Chisinau",
	"monaco":                 "Europe/Monaco",
	"mongolia":               "Asia/Ulaanbaatar",
	"montenegro":             "Europe/Podgorica",
	"morocco":                "Africa/Casablanca",
	"netherlands":            "Europe/Amsterdam",
	"new zealand":            "Pacific/Auckland",
	"nicaragua":              "America/Managua",
	"nigeria":                "Africa/Lagos",
	"north macedonia":        "Europe/Skopje",
	"northern ireland":       "Europe/London",
	"norway":                 "Europe/Oslo",
	"oman":                   "Asia/Muscat",
	"pakistan":               "Asia/Karachi",
	"panama":                 "America/Panama",
	"paraguay":               "America/Asuncion",
	"peru":                   "America/Lima",
	"philippines":            "Asia/Manila",
	"poland":                 "Europe/Warsaw",
	"portugal":               "Europe/Lisbon",
	"puerto rico":            "America/Puerto_Rico",
	"qatar":                  "Asia/Qatar",
	"romania":                "Europe/Bucharest",
	"russia":                 "Europe/Moscow",
	"rwanda":                 "Africa/Kigali",
	"san marino":             "Europe/San_Marino",
	"saudi arabia":           "Asia/Riyadh",
	"scotland":               "Europe/London",
	"senegal":                "Africa/Dakar",
	"serbia":                 "Europe/Belgrade",
	"singapore":              "Asia/Singapore",
	"slovakia":               "Europe/Bratislava",
	"slovenia":               "Europe/Ljubljana",
	"south africa":           "Africa/Johannesburg",
	"south korea":            "Asia/Seoul",
	"korea republic":         "Asia/Seoul",
	"spain":                  "Europe/Madrid",
	"sri lanka":              "Asia/Colombo",
	"sweden":                 "Europe/Stockholm",
	"switzerland":            "Europe/Zurich",
	"syria":                  "Asia/Damascus",
	"taiwan":                 "Asia/Taipei",
	"tanzania":               "Africa/Dar_es_Salaam",
	"thailand":               "Asia/Bangkok",
	"trinidad and tobago":    "America/Port_of_Spain",
	"tunisia":                "Africa/Tunis",
	"turkey":                 "Europe/Istanbul",
	"uganda":                 "Africa/Kampala",
	"ukraine":                "Europe/Kyiv",
	"united arab emirates":   "Asia/Dubai",
	"united kingdom":         "Europe/London",
	"united states":          "America/New_York",
	"usa":                    "America/New_York",
	"uruguay":                "America/Montevideo",
	"uzbekistan":             "Asia/Tashkent",
	"venezuela":              "America/Caracas",
	"vietnam":                "Asia/Ho_Chi_Minh",
	"wales":                  "Europe/London",
	"zambia":                 "Africa/Lusaka",
	"zimbabwe":               "Africa/Harare",
}
