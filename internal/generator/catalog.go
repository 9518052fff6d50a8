package generator

// Static pools backing the generators. Modeled on Universitas
// Indonesia's actual faculties, programs and campus buildings so the
// synthetic dataset reads like real SIAK data.

type facultyOption struct {
	code string
	name string
}

var facultyOptions = []facultyOption{
	{"FH", "Fakultas Hukum"},
	{"FK", "Fakultas Kedokteran"},
	{"FG", "Fakultas Kedokteran Gigi"},
	{"FKM", "Fakultas Kesehatan Masyarakat"},
	{"FF", "Fakultas Farmasi"},
	{"FIK", "Fakultas Ilmu Keperawatan"},
	{"FMIPA", "Fakultas Matematika dan Ilmu Pengetahuan Alam"},
	{"FT", "Fakultas Teknik"},
	{"FASILKOM", "Fakultas Ilmu Komputer"},
	{"FEB", "Fakultas Ekonomi dan Bisnis"},
	{"FIB", "Fakultas Ilmu Budaya"},
	{"FISIP", "Fakultas Ilmu Sosial dan Ilmu Politik"},
	{"FPsi", "Fakultas Psikologi"},
	{"FIA", "Fakultas Ilmu Administrasi"},
	{"FKUI", "Fakultas Kedokteran Hewan"},
	{"Vokasi", "Sekolah Vokasi"},
}

type programOption struct {
	suffix string
	name   string
}

var programOptions = map[string][]programOption{
	"FH": {
		{"H", "Ilmu Hukum"},
		{"HI", "Hukum Internasional"},
		{"HP", "Hukum Bisnis"},
		{"HAD", "Hukum Administrasi Negara"},
	},
	"FK": {
		{"KD", "Pendidikan Dokter"},
		{"KK", "Ilmu Kedokteran Klinik"},
		{"KB", "Ilmu Biomedik"},
		{"KJ", "Ilmu Kesehatan Jiwa"},
		{"KA", "Ilmu Kesehatan Anak"},
		{"KBD", "Ilmu Bedah"},
	},
	"FG": {
		{"GD", "Pendidikan Dokter Gigi"},
		{"GK", "Ilmu Kedokteran Gigi Klinik"},
		{"GO", "Ilmu Ortodonsia"},
	},
	"FKM": {
		{"KM", "Ilmu Kesehatan Masyarakat"},
		{"KL", "Kesehatan Lingkungan"},
		{"KE", "Epidemiologi"},
		{"KG", "Gizi Kesehatan Masyarakat"},
	},
	"FF": {
		{"FA", "Farmasi"},
		{"FK", "Farmasi Klinik"},
		{"FI", "Ilmu Kefarmasian"},
	},
	"FIK": {
		{"IK", "Ilmu Keperawatan"},
		{"KJ", "Keperawatan Jiwa"},
		{"KA", "Keperawatan Anak"},
		{"KM", "Keperawatan Maternitas"},
	},
	"FMIPA": {
		{"MA", "Matematika"},
		{"FI", "Fisika"},
		{"KM", "Kimia"},
		{"BI", "Biologi"},
		{"GF", "Geofisika"},
		{"ST", "Statistika"},
		{"GG", "Geografi"},
	},
	"FT": {
		{"SI", "Teknik Sipil"},
		{"EL", "Teknik Elektro"},
		{"ME", "Teknik Mesin"},
		{"AR", "Arsitektur"},
		{"KI", "Teknik Kimia"},
		{"MT", "Teknik Metalurgi"},
		{"IN", "Teknik Industri"},
		{"LI", "Teknik Lingkungan"},
		{"PW", "Perencanaan Wilayah dan Kota"},
		{"KB", "Teknik Biomedik"},
		{"PI", "Teknik Perkapalan"},
	},
	"FASILKOM": {
		{"IL", "Ilmu Komputer"},
		{"SI", "Sistem Informasi"},
		{"KJ", "Kecerdasan Buatan"},
		{"MT", "Teknologi Informasi"},
	},
	"FEB": {
		{"EK", "Ilmu Ekonomi"},
		{"AK", "Akuntansi"},
		{"MN", "Manajemen"},
		{"IB", "Ilmu Ekonomi Islam"},
		{"BS", "Bisnis Digital"},
	},
	"FIB": {
		{"SJ", "Sastra Jepang"},
		{"SI", "Sastra Inggris"},
		{"AR", "Arkeologi"},
		{"BL", "Bahasa dan Kebudayaan Korea"},
		{"BC", "Sastra Cina"},
		{"BI", "Sastra Indonesia"},
		{"SP", "Sastra Prancis"},
		{"SA", "Sastra Arab"},
		{"SR", "Sastra Rusia"},
	},
	"FISIP": {
		{"HI", "Hubungan Internasional"},
		{"SO", "Sosiologi"},
		{"KP", "Ilmu Politik"},
		{"KM", "Ilmu Komunikasi"},
		{"AN", "Antropologi Sosial"},
		{"KS", "Kesejahteraan Sosial"},
		{"KR", "Kriminologi"},
	},
	"FPsi": {
		{"PS", "Psikologi"},
		{"PK", "Psikologi Klinis"},
		{"PO", "Psikologi Organisasi"},
		{"PP", "Psikologi Pendidikan"},
	},
	"FIA": {
		{"AN", "Ilmu Administrasi Negara"},
		{"AB", "Ilmu Administrasi Bisnis"},
		{"AFP", "Ilmu Administrasi Fiskal"},
	},
	"FKUI": {
		{"KH", "Kedokteran Hewan"},
		{"BT", "Bioteknologi Hewan"},
	},
	"Vokasi": {
		{"AP", "Administrasi Perkantoran"},
		{"AK", "Akuntansi"},
		{"PR", "Hubungan Masyarakat"},
		{"PW", "Pariwisata"},
		{"BK", "Perbankan"},
		{"PO", "Perpajakan"},
		{"TI", "Teknologi Informasi"},
		{"FK", "Fisioterapi"},
	},
}

var buildingOptions = []string{
	"Balairung",
	"Gedung Rektorat",
	"Perpustakaan Pusat UI",
	"Pusgiwa",
	"Makara Art Center",
	"Gedung Pusat Administrasi UI",
	"Balai Purnomo Prawiro",
	"Balai Sidang",
	"FASILKOM A",
	"FASILKOM B",
	"FEB A",
	"FEB B",
	"FEB C",
	"FT A",
	"FT B",
	"FT C",
	"FH A",
	"FH B",
	"FK A",
	"FK B",
	"FK C",
	"FG A",
	"FISIP A",
	"FISIP B",
	"FISIP C",
	"FIB A",
	"FIB B",
	"FIB C",
	"FMIPA A",
	"FMIPA B",
	"FMIPA C",
	"FPsi A",
	"FPsi B",
	"FIA A",
	"FIA B",
	"FF A",
	"FKM A",
	"FKM B",
	"FIK A",
	"Stadion UI",
	"Gymnasium UI",
	"Student Center",
	"Auditorium FMIPA",
	"Aula FK",
	"Teater FIB",
	"PAU",
	"PAF",
	"RTH",
	"R. Kuliah Bersama I",
	"R. Kuliah Bersama II",
	"R. Kuliah Bersama III",
	"Lab Terpadu FMIPA",
	"Gedung Laboratorium FT",
	"Pusat Riset UI",
	"Vokasi A",
	"Vokasi B",
	"Vokasi C",
	"Vokasi D",
}

// facultyDigits maps a faculty code to the single digit used in student
// numbers. Deliberately non-injective; only the first character of the
// mapped value is ever used.
var facultyDigits = map[string]string{
	"FH":       "1",
	"FK":       "2",
	"FG":       "3",
	"FKM":      "4",
	"FF":       "5",
	"FIK":      "6",
	"FMIPA":    "7",
	"FT":       "8",
	"FASILKOM": "9",
	"FEB":      "0",
	"FIB":      "1",
	"FISIP":    "2",
	"FPsi":     "3",
	"FIA":      "4",
	"FKUI":     "5",
	"Vokasi":   "6",
}

// facultyEmailDomains maps a faculty code to its mail subdomain.
var facultyEmailDomains = map[string]string{
	"FH":       "law",
	"FK":       "med",
	"FG":       "dent",
	"FKM":      "fph",
	"FF":       "farm",
	"FIK":      "nursing",
	"FMIPA":    "sci",
	"FT":       "eng",
	"FASILKOM": "cs",
	"FEB":      "fe",
	"FIB":      "fib",
	"FISIP":    "fisip",
	"FPsi":     "psych",
	"FIA":      "fia",
	"FKUI":     "vet",
	"Vokasi":   "vokasi",
}
