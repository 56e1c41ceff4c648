package catalog

const (
	imgParang      = "/assets/images/motif-parang.jpg"
	imgKawung      = "/assets/images/motif-kawung.jpg"
	imgMegaMendung = "/assets/images/batik-motif-mega-mendung.jpg"
	imgSekarJagad  = "/assets/images/motif-sekar-jagad.jpg"
	imgSidomukti   = "/assets/images/batik-sidomukti.jpg"
	imgSogan       = "/assets/images/motif-sogan.jpg"
	imgKontemporer = "/assets/images/motif-kontemporer.jpg"
	imgModel1      = "/assets/images/model-1.png"
	imgModel2      = "/assets/images/model-2.png"
	imgModel3      = "/assets/images/model-3.png"
)

// products is the catalog in display order. Ids are 1..14 and never reused.
var products = []Product{
	{
		ID:          1,
		Name:        "Batik Tulis Parang Rusak Barong",
		Slug:        "batik-tulis-parang-rusak-barong",
		Price:       1850000,
		Category:    CategoryTulis,
		Pattern:     PatternParang,
		Images:      []string{imgParang, imgModel1, imgModel2},
		Description: "Batik tulis klasik dengan motif Parang Rusak Barong yang megah. Dibuat dengan teknik canting tradisional oleh pengrajin Solo, setiap garis menunjukkan keahlian tinggi dan kesabaran luar biasa.",
		Heritage:    "Motif Parang melambangkan kekuatan, keberanian, dan kepemimpinan. Dulunya hanya boleh dikenakan oleh keluarga kerajaan Jawa sebagai simbol status bangsawan.",
		Details:     "Proses pembuatan 3-4 bulan, pewarnaan alami menggunakan indigo dan soga.",
		Sizes:       []string{"M", "L", "XL", "XXL"},
		Colors:      []string{"Navy Blue", "Dark Brown"},
		Stock:       8,
		Featured:    true,
		Bestseller:  true,
	},
	{
		ID:          2,
		Name:        "Batik Tulis Kawung Klasik",
		Slug:        "batik-tulis-kawung-klasik",
		Price:       1650000,
		Category:    CategoryTulis,
		Pattern:     PatternKawung,
		Images:      []string{imgKawung, imgModel2, imgModel3},
		Description: "Motif Kawung geometris yang sempurna, menampilkan lingkaran simetris yang menghipnotis. Batik tulis premium dari Yogyakarta dengan pewarnaan soga alami.",
		Heritage:    "Kawung terinspirasi dari buah aren atau kolang-kaling. Motif ini melambangkan kesucian, keadilan, dan umur panjang. Motif tertua dalam sejarah batik Indonesia.",
		Details:     "Kain katun prima, warna coklat soga khas Jawa, proses 2-3 bulan.",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Soga Brown", "Black"},
		Stock:       12,
		Bestseller:  true,
	},
	{
		ID:          3,
		Name:        "Batik Tulis Mega Mendung Cirebon",
		Slug:        "batik-tulis-mega-mendung-cirebon",
		Price:       1950000,
		Category:    CategoryTulis,
		Pattern:     PatternMegaMendung,
		Images:      []string{imgMegaMendung, imgModel1, imgModel3},
		Description: "Batik Cirebon dengan motif awan berlapis yang ikonik. Gradasi warna biru yang memukau mencerminkan pengaruh Tiongkok pada batik pesisir Indonesia.",
		Heritage:    "Mega Mendung melambangkan pemberi kehidupan dan kesejukan. Motif ini memadukan estetika Jawa dan Tiongkok, menciptakan identitas batik pesisir yang unik.",
		Details:     "Pewarnaan gradasi manual 7-9 warna, kain sutra premium, proses 4 bulan.",
		Sizes:       []string{"M", "L", "XL"},
		Colors:      []string{"Indigo Blue", "Red Maroon"},
		Stock:       5,
		Featured:    true,
	},
	{
		ID:          4,
		Name:        "Batik Tulis Truntum Kasih Sayang",
		Slug:        "batik-tulis-truntum-kasih-sayang",
		Price:       1550000,
		Category:    CategoryTulis,
		Pattern:     PatternTruntum,
		Images:      []string{imgSogan, imgModel2, imgModel1},
		Description: "Motif bunga kecil yang tumbuh kembali dengan indah, melambangkan cinta yang bersemi. Batik tulis halus dengan detail mikroskopis dari Surakarta.",
		Heritage:    "Truntum diciptakan oleh Kanjeng Ratu Kencana untuk Raja Paku Buwono III sebagai simbol cinta yang tumbuh kembali. Sering dikenakan dalam upacara pernikahan.",
		Details:     "Detail ultra-halus, pewarnaan natural soga, waktu pengerjaan 3 bulan.",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Cream Gold", "Soft Purple"},
		Stock:       15,
	},
	{
		ID:          5,
		Name:        "Batik Cap Parang Centong Modern",
		Slug:        "batik-cap-parang-centong-modern",
		Price:       850000,
		Category:    CategoryCap,
		Pattern:     PatternParang,
		Images:      []string{imgParang, imgModel3, imgModel1},
		Description: "Motif Parang dengan interpretasi kontemporer, dibuat menggunakan cap tembaga berkualitas tinggi. Presisi sempurna dengan karakter handmade.",
		Heritage:    "Parang Centong adalah varian Parang yang lebih bebas digunakan masyarakat umum. Motif ini melambangkan kekuatan yang terkendali dan kebijaksanaan.",
		Details:     "Pewarnaan reaktif modern, kain katun Primisima, hasil konsisten.",
		Sizes:       []string{"M", "L", "XL", "XXL"},
		Colors:      []string{"Navy", "Brown", "Black"},
		Stock:       25,
		Bestseller:  true,
	},
	{
		ID:          6,
		Name:        "Batik Cap Kawung Beton",
		Slug:        "batik-cap-kawung-beton",
		Price:       780000,
		Category:    CategoryCap,
		Pattern:     PatternKawung,
		Images:      []string{imgKawung, imgModel1, imgModel2},
		Description: "Kawung geometris presisi tinggi dengan cap tembaga warisan. Perpaduan sempurna antara tradisi dan efisiensi produksi modern.",
		Heritage:    "Kawung Beton adalah variasi dengan garis tegas dan kuat, melambangkan ketahanan dan fondasi yang kokoh dalam kehidupan.",
		Details:     "Cap tembaga antik 50+ tahun, pewarnaan soga kombinasi, kain katun premium.",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Dark Soga", "Maroon"},
		Stock:       30,
	},
	{
		ID:          7,
		Name:        "Batik Cap Sekar Jagad Nusantara",
		Slug:        "batik-cap-sekar-jagad-nusantara",
		Price:       920000,
		Category:    CategoryCap,
		Pattern:     PatternSekarJagad,
		Images:      []string{imgSekarJagad, imgModel2, imgModel3},
		Description: "Motif \"Bunga Dunia\" yang menggabungkan berbagai ornamen dalam satu kain. Kompleksitas visual yang memukau dengan warna-warna cerah khas batik pesisir.",
		Heritage:    "Sekar Jagad berarti \"Bunga Dunia\", melambangkan keberagaman dan keindahan dunia. Motif ini mencerminkan toleransi dan apresiasi terhadap perbedaan.",
		Details:     "Multi-color stamping, 5-7 warna, kain katun lembut, detail rumit.",
		Sizes:       []string{"M", "L", "XL"},
		Colors:      []string{"Multi Red", "Multi Blue"},
		Stock:       18,
		Featured:    true,
	},
	{
		ID:          8,
		Name:        "Batik Cap Sidomukti Pengantin",
		Slug:        "batik-cap-sidomukti-pengantin",
		Price:       950000,
		Category:    CategoryCap,
		Pattern:     PatternSidomukti,
		Images:      []string{imgSidomukti, imgModel1, imgModel3},
		Description: "Batik penuh makna untuk momen sakral. Motif Sidomukti dengan ornamen rumit melambangkan harapan kemakmuran dan kehidupan yang sempurna.",
		Heritage:    "Sidomukti (sido = jadi, mukti = makmur) adalah motif wajib dalam pernikahan Jawa. Dipercaya membawa berkah kemakmuran bagi pengantin baru.",
		Details:     "Pewarnaan premium multi-tahap, detail isen-isen tradisional, kain eksklusif.",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Gold Cream", "Red Gold"},
		Stock:       20,
		Bestseller:  true,
	},
	{
		ID:          9,
		Name:        "Batik Printing Parang Modern Slim",
		Slug:        "batik-printing-parang-modern-slim",
		Price:       485000,
		Category:    CategoryPrinting,
		Pattern:     PatternParang,
		Images:      []string{imgKontemporer, imgModel1, imgModel2},
		Description: "Batik printing modern dengan motif Parang yang disederhanakan untuk gaya kasual kontemporer. Nyaman untuk penggunaan sehari-hari dengan sentuhan heritage.",
		Heritage:    "Adaptasi modern dari motif klasik Parang, mempertahankan esensi filosofis sambil menghadirkan kenyamanan dan aksesibilitas untuk generasi muda.",
		Details:     "Digital printing HD, kain katun stretch, warna tahan lama, easy care.",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Navy", "Black", "Maroon", "Grey"},
		Stock:       50,
		Bestseller:  true,
	},
	{
		ID:          10,
		Name:        "Batik Printing Kawung Contemporary",
		Slug:        "batik-printing-kawung-contemporary",
		Price:       425000,
		Category:    CategoryPrinting,
		Pattern:     PatternKawung,
		Images:      []string{imgKawung, imgModel3, imgModel2},
		Description: "Interpretasi fresh motif Kawung dengan skema warna modern. Perfect untuk profesional muda yang ingin tampil berkelas dengan budaya.",
		Heritage:    "Kawung modern yang tetap menghormati filosofi kesempurnaan dan keadilan, dikemas dalam estetika yang relevan dengan lifestyle urban.",
		Details:     "Reactive printing, anti-kusut, breathable fabric, machine washable.",
		Sizes:       []string{"S", "M", "L", "XL"},
		Colors:      []string{"Light Blue", "Mint Green", "Dusty Pink"},
		Stock:       60,
	},
	{
		ID:          11,
		Name:        "Batik Printing Mega Mendung Rainbow",
		Slug:        "batik-printing-mega-mendung-rainbow",
		Price:       520000,
		Category:    CategoryPrinting,
		Pattern:     PatternMegaMendung,
		Images:      []string{imgMegaMendung, imgModel2, imgModel1},
		Description: "Mega Mendung dengan gradasi warna pelangi yang ceria. Statement piece yang sempurna untuk tampilan bold dan percaya diri.",
		Heritage:    "Mega Mendung dengan interpretasi warna kontemporer, mempertahankan bentuk awan berlapis iconic sambil mengeksplorasi palet warna modern.",
		Details:     "Sublimation print, warna vibrant tahan luntur, kain premium soft-touch.",
		Sizes:       []string{"M", "L", "XL", "XXL"},
		Colors:      []string{"Rainbow Blue", "Rainbow Pink"},
		Stock:       35,
		Featured:    true,
	},
	{
		ID:          12,
		Name:        "Batik Printing Lereng Minimalis",
		Slug:        "batik-printing-lereng-minimalis",
		Price:       450000,
		Category:    CategoryPrinting,
		Pattern:     PatternLereng,
		Images:      []string{imgKontemporer, imgModel3, imgModel1},
		Description: "Motif garis diagonal minimalis yang elegan. Batik modern untuk mereka yang menyukai simplicity dengan karakter kuat.",
		Heritage:    "Lereng melambangkan jalan kehidupan yang tidak selalu lurus. Garis diagonal mengajarkan fleksibilitas dan adaptasi dalam menghadapi tantangan.",
		Details:     "Eco-friendly water-based ink, kain bamboo blend, sustainable production.",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"White Black", "Beige Brown", "Navy White"},
		Stock:       45,
		Bestseller:  true,
	},
	{
		ID:          13,
		Name:        "Batik Printing Sogan Contemporary",
		Slug:        "batik-printing-sogan-contemporary",
		Price:       495000,
		Category:    CategoryPrinting,
		Pattern:     PatternSogan,
		Images:      []string{imgSogan, imgModel1, imgModel2},
		Description: "Warna soga klasik dalam format modern. Keelokan coklat natural batik Jawa yang timeless, cocok untuk segala suasana.",
		Heritage:    "Sogan adalah warna khas batik Jawa dari kulit kayu tingi dan indigo. Warna earth tone ini melambangkan kesederhanaan dan kearifan lokal.",
		Details:     "Natural color tone print, comfortable viscose blend, elegant drape.",
		Sizes:       []string{"M", "L", "XL"},
		Colors:      []string{"Classic Soga", "Dark Soga"},
		Stock:       40,
	},
	{
		ID:       14,
		Name:     "Batik Printing Mix Motif Urban",
		Slug:     "batik-printing-mix-motif-urban",
		Price:    535000,
		Category: CategoryPrinting,
		Pattern:  PatternSekarJagad,
		Images: []string{
			"https://placehold.co/400x500/1B3A52/D4AF37?text=Urban+Mix",
			"https://placehold.co/400x500/3A506B/D4AF37?text=Fusion+Style",
			"https://placehold.co/400x500/5C4033/D4AF37?text=Contemporary",
		},
		Description: "Fusion berbagai motif klasik dalam komposisi urban contemporary. Batik untuk jiwa muda yang berani eksplorasi dengan tetap menghormati akar budaya.",
		Heritage:    "Perpaduan berbagai motif melambangkan Indonesia sebagai negara yang kaya dengan keberagaman. Unity in diversity dalam selembar kain.",
		Details:     "HD digital print, wrinkle-free fabric, modern fit, travel-friendly.",
		Sizes:       []string{"S", "M", "L", "XL", "XXL"},
		Colors:      []string{"Urban Black", "Urban Navy", "Urban Grey"},
		Stock:       55,
		Featured:    true,
		Bestseller:  true,
	},
}
