package models

// PackageType separates subscription-style packages from one-time purchases.
type PackageType string

const (
	PackageMonthly PackageType = "monthly"
	PackageOnetime PackageType = "onetime"
)

// TopUpPackage is a purchasable bundle of points. Price is in THB.
type TopUpPackage struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Price  int         `json:"price"`
	Points int         `json:"points"`
	Badge  string      `json:"badge,omitempty"`
	Type   PackageType `json:"type"`
}

// TopUpPackages is the fixed storefront package catalog.
var TopUpPackages = []TopUpPackage{
	// Monthly
	{ID: "m1", Name: "Reader Plan", Price: 99, Points: 900, Type: PackageMonthly},
	{ID: "m2", Name: "Fan Plan", Price: 199, Points: 2000, Badge: "Best Seller", Type: PackageMonthly},
	{ID: "m3", Name: "Super Fan", Price: 299, Points: 3300, Badge: "Premium", Type: PackageMonthly},
	// One-time
	{ID: "o1", Name: "Starter", Price: 50, Points: 400, Type: PackageOnetime},
	{ID: "o2", Name: "Regular", Price: 100, Points: 820, Badge: "Recommended", Type: PackageOnetime},
	{ID: "o3", Name: "Pro", Price: 150, Points: 1260, Type: PackageOnetime},
}

// FindPackage looks a package up by id.
func FindPackage(id string) (TopUpPackage, bool) {
	for _, p := range TopUpPackages {
		if p.ID == id {
			return p, true
		}
	}
	return TopUpPackage{}, false
}
