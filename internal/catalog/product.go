package catalog

// Category is the production technique of a batik piece.
type Category string

const (
	CategoryTulis    Category = "Batik Tulis"    // hand-drawn with canting
	CategoryCap      Category = "Batik Cap"      // stamped with copper blocks
	CategoryPrinting Category = "Batik Printing" // machine printed
)

// Pattern is the named traditional motif.
type Pattern string

const (
	PatternParang      Pattern = "Parang"
	PatternKawung      Pattern = "Kawung"
	PatternMegaMendung Pattern = "Mega Mendung"
	PatternSekarJagad  Pattern = "Sekar Jagad"
	PatternTruntum     Pattern = "Truntum"
	PatternSidomukti   Pattern = "Sidomukti"
	PatternSogan       Pattern = "Sogan"
	PatternLereng      Pattern = "Lereng"
)

// Product prices are whole rupiah.
type Product struct {
	ID          int      `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Price       int      `json:"price"`
	Category    Category `json:"category"`
	Pattern     Pattern  `json:"pattern"`
	Images      []string `json:"images"`
	Description string   `json:"description"`
	Heritage    string   `json:"heritage,omitempty"`
	Details     string   `json:"details,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	Colors      []string `json:"colors,omitempty"`
	Stock       int      `json:"stock"`
	Featured    bool     `json:"featured"`
	Bestseller  bool     `json:"bestseller"`
}

// DefaultSize returns the first declared size or "".
func (p Product) DefaultSize() string {
	if len(p.Sizes) == 0 {
		return ""
	}
	return p.Sizes[0]
}

// DefaultColor returns the first declared color or "".
func (p Product) DefaultColor() string {
	if len(p.Colors) == 0 {
		return ""
	}
	return p.Colors[0]
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool { return p.Stock > 0 }
