package enrich

// BrandPrefix builds the text prepended to a branded food's description.
func BrandPrefix(owner, name string) string {
	switch {
	case name != "" && name != owner:
		return owner + " - " + name + ": "
	case owner != "":
		return owner + ": "
	default:
		return ""
	}
}
