package config

// Categories is the fixed set of article categories, in display order.
var Categories = []string{
	"O'zbekiston yangiliklar",
	"Texnologiya",
	"Iqtisodiyot",
	"Sport",
	"Madaniyat",
	"Ta'lim",
	"Sog'liqni saqlash",
	"Markaziy Osiyodagi yangiliklar",
	"Jahon yangiliklar",
}

// Regions is the fixed set of regions an article may be tied to.
var Regions = []string{
	"Toshkent",
	"Samarqand",
	"Buxoro",
	"Andijon",
	"Farg'ona",
	"Namangan",
	"Qashqadaryo",
	"Surxondaryo",
	"Xorazm",
	"Navoiy",
	"Jizzax",
	"Sirdaryo",
	"Qoraqalpog'iston",
}

// ValidCategory reports whether name is one of the fixed categories.
func ValidCategory(name string) bool {
	for _, c := range Categories {
		if c == name {
			return true
		}
	}
	return false
}

// ValidRegion reports whether name is one of the fixed regions.
// The empty string is allowed: region is optional.
func ValidRegion(name string) bool {
	if name == "" {
		return true
	}
	for _, r := range Regions {
		if r == name {
			return true
		}
	}
	return false
}
