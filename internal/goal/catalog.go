// Package goal holds the savings-goal domain: the category and icon
// catalogs, the goal form session, and the backend request shape.
package goal

// Category and icon codes are fixed by the backend. Both tables are
// one-to-one and never change at runtime; the reverse maps are derived
// once at init.

var categoryCodes = map[string]int{
	"예금":    1,
	"적금":    2,
	"펀드":    3,
	"단순 저축": 4,
	"여행":    5,
	"소비":    6,
}

var iconCodes = map[string]int{
	"travel":        23,
	"anniversary":   8,
	"shopping":      21,
	"money":         17,
	"beer":          10,
	"coffee":        14,
	"car":           12,
	"ticket":        22,
	"cake":          11,
	"lobstar":       16,
	"beach":         9,
	"pet":           19,
	"party":         18,
	"cruise":        15,
	"amusementpark": 7,
	"christmas":     13,
	"phone":         20,
}

// categoryList preserves the display order of the category picker.
var categoryList = []string{"예금", "적금", "펀드", "단순 저축", "여행", "소비"}

// iconList preserves the display order of the icon grid.
var iconList = []string{
	"travel", "anniversary", "shopping", "money", "beer", "coffee",
	"car", "ticket", "cake", "lobstar", "beach", "pet",
	"party", "cruise", "amusementpark", "christmas", "phone",
}

var (
	categoryNames = make(map[int]string, len(categoryCodes))
	iconNames     = make(map[int]string, len(iconCodes))
)

func init() {
	for name, code := range categoryCodes {
		categoryNames[code] = name
	}
	for name, code := range iconCodes {
		iconNames[code] = name
	}
}

// CategoryCode returns the backend code for a category name.
func CategoryCode(name string) (int, bool) {
	code, ok := categoryCodes[name]
	return code, ok
}

// CategoryName returns the category name for a backend code.
// Unknown codes map to "" (no selection) so that records carrying
// codes this client does not know about still load.
func CategoryName(code int) string {
	return categoryNames[code]
}

// IconCode returns the backend code for an icon name.
func IconCode(name string) (int, bool) {
	code, ok := iconCodes[name]
	return code, ok
}

// IconName returns the icon name for a backend code, or "" when the
// code is not in the catalog.
func IconName(code int) string {
	return iconNames[code]
}

// Categories returns the category names in display order.
func Categories() []string {
	out := make([]string, len(categoryList))
	copy(out, categoryList)
	return out
}

// Icons returns the icon names in display order.
func Icons() []string {
	out := make([]string, len(iconList))
	copy(out, iconList)
	return out
}
