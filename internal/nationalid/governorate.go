package nationalid

import "sort"

// governorates maps the 2-digit birth governorate code to its name.
// The set is closed: codes 01-04, 11-19, 21-29, 31-35 and 88, nothing
// else. Code 88 marks a birth outside Egypt.
var governorates = map[string]string{
	"01": "Cairo",
	"02": "Alexandria",
	"03": "Port Said",
	"04": "Suez",
	"11": "Damietta",
	"12": "Dakahlia",
	"13": "Ash Sharqia",
	"14": "Kaliobeya",
	"15": "Kafr El - Sheikh",
	"16": "Gharbia",
	"17": "Monoufia",
	"18": "El Beheira",
	"19": "Ismailia",
	"21": "Giza",
	"22": "Beni Suef",
	"23": "Fayoum",
	"24": "El Menia",
	"25": "Assiut",
	"26": "Sohag",
	"27": "Qena",
	"28": "Aswan",
	"29": "Luxor",
	"31": "Red Sea",
	"32": "New Valley",
	"33": "Matrouh",
	"34": "North Sinai",
	"35": "South Sinai",
	"88": "Foreign",
}

// GovernorateName looks up the name for a 2-digit governorate code.
func GovernorateName(code string) (string, bool) {
	name, ok := governorates[code]
	return name, ok
}

// GovernorateEntry pairs a governorate code with its name.
type GovernorateEntry struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Governorates returns every known code/name pair sorted by code.
func Governorates() []GovernorateEntry {
	entries := make([]GovernorateEntry, 0, len(governorates))
	for code, name := range governorates {
		entries = append(entries, GovernorateEntry{Code: code, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Code < entries[j].Code
	})
	return entries
}
