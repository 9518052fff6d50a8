package generator

// Course code prefixes. A faculty either has a single prefix for all of
// its programs or per-program prefixes with an optional "" default.

var facultyCoursePrefixes = map[string]string{
	"FH":     "HKUM",
	"FK":     "MEDI",
	"FG":     "KGUI",
	"FKM":    "KMUI",
	"FF":     "FARM",
	"FIK":    "KPUI",
	"FIB":    "HBUI",
	"FPsi":   "PSYC",
	"FIA":    "ADMI",
	"FKUI":   "VETS",
	"Vokasi": "VOCD",
}

var programCoursePrefixes = map[string]map[string]string{
	"FMIPA": {
		"MA": "MATH", "FI": "PHYS", "KM": "CHEM", "BI": "BIOL",
		"GF": "GEOP", "ST": "STAT", "GG": "GEOG",
	},
	"FT": {
		"SI": "CIVL", "EL": "ELEC", "ME": "MECH", "AR": "ARCH",
		"KI": "CENG", "MT": "METL", "IN": "INEN", "LI": "EVEN",
		"PW": "URPL", "KB": "BIOE", "PI": "NAVE",
	},
	"FASILKOM": {
		"IL": "CSUI", "SI": "ISYS", "KJ": "AINE", "MT": "INFT",
		"": "CSGE",
	},
	"FEB": {
		"EK": "ECEU", "AK": "ACCT", "MN": "MGMT", "IB": "IEUI",
		"BS": "DBUS",
	},
	"FISIP": {
		"HI": "INTS", "SO": "SOCI", "KP": "POLS", "KM": "COMM",
		"AN": "ANTH", "KS": "SOCW", "KR": "CRIM",
	},
}

// Course name templates; %s is filled with a subject word.

var facultyCourseTemplates = map[string][]string{
	"FH": {
		"Hukum %s", "Aspek %s Hukum", "Pengantar %s", "Sistem %s",
		"Praktek %s", "Hukum %s Indonesia", "Teori %s",
	},
	"FK": {
		"Anatomi %s", "Fisiologi %s", "%s Klinik", "Patologi %s",
		"Kedokteran %s", "Ilmu Penyakit %s", "Praktikum %s",
	},
	"FG": {
		"Kedokteran Gigi %s", "Radiologi %s", "Prostodonsia %s",
		"Ortodonsia %s",
	},
	"FKM": {
		"Epidemiologi %s", "Kesehatan %s Masyarakat", "Biostatistika %s",
		"Manajemen %s",
	},
	"FF": {
		"Farmakologi %s", "Farmasetika %s", "Farmasi %s", "Kimia %s",
		"Analisis %s",
	},
	"FIK": {
		"Keperawatan %s", "Praktik Klinik %s", "Manajemen %s",
		"Konsep %s", "Etika %s",
	},
	"FEB": {
		"Ekonomi %s", "Manajemen %s", "%s Keuangan", "Akuntansi %s",
		"Bisnis %s", "Riset %s", "Pemasaran %s", "Ekonometrika %s",
	},
	"FIB": {
		"Bahasa %s", "Sastra %s", "Budaya %s", "Sejarah %s",
		"%s Kontemporer", "Linguistik %s",
	},
	"FISIP": {
		"Politik %s", "Sosiologi %s", "Kebijakan %s", "Teori %s",
		"Metodologi %s", "Diplomasi %s",
	},
	"FPsi": {
		"Psikologi %s", "Psikodiagnostika %s", "Perkembangan %s",
		"Asesmen %s", "Kepribadian %s",
	},
	"FIA": {
		"Administrasi %s", "Manajemen %s", "Kebijakan %s",
		"Organisasi %s", "Kepemimpinan %s",
	},
	"FKUI": {
		"Kesehatan Hewan %s", "Anatomi %s", "Fisiologi %s", "Klinik %s",
		"Patologi %s",
	},
	"Vokasi": {
		"Praktik %s", "Aplikasi %s", "Keterampilan %s", "Manajemen %s",
		"Teknik %s", "Laboratorium %s",
	},
}

var programCourseTemplates = map[string]map[string][]string{
	"FMIPA": {
		"MA": {"Kalkulus %s", "Aljabar %s", "Matematika %s", "Analisis %s", "Pemodelan %s"},
		"FI": {"Fisika %s", "Mekanika %s", "Termodinamika %s", "Elektromagnetisme %s"},
		"KM": {"Kimia %s", "Biokimia %s", "Kimia %s Analitik", "Kimia %s Organik"},
		"BI": {"Biologi %s", "Genetika %s", "Ekologi %s", "Mikrobiologi %s"},
		"GF": {"Geofisika %s", "Eksplorasi %s", "Seismologi %s"},
		"ST": {"Statistika %s", "Probabilitas %s", "Analisis %s"},
		"GG": {"Geografi %s", "Kartografi %s", "Geomorfologi %s", "Hidrologi %s"},
	},
	"FT": {
		"SI": {"Teknik Sipil %s", "Mekanika %s", "Struktur %s", "Konstruksi %s"},
		"EL": {"Teknik Elektro %s", "Elektronika %s", "Rangkaian %s", "Telekomunikasi %s"},
		"ME": {"Teknik Mesin %s", "Dinamika %s", "Termodinamika %s", "Desain %s"},
		"AR": {"Arsitektur %s", "Desain %s", "Perencanaan %s", "Studio %s"},
		"KI": {"Teknik Kimia %s", "Proses %s", "Reaktor %s", "Operasi %s"},
		"":   {"Teknik %s", "Aplikasi %s", "Sistem %s", "Proyek %s", "Metode %s"},
	},
	"FASILKOM": {
		"IL": {"Algoritma dan Struktur Data %s", "Pemrograman %s", "Komputasi %s", "Pembelajaran Mesin %s", "Jaringan Komputer %s"},
		"SI": {"Sistem Informasi %s", "Basis Data %s", "Analisis dan Perancangan %s", "E-bisnis %s"},
		"":   {"Algoritma %s", "Pemrograman %s", "Basis Data %s", "Jaringan %s", "Pengembangan %s"},
	},
}

var defaultCourseTemplates = []string{
	"Mata Kuliah %s", "Pengantar %s", "Dasar %s", "Aplikasi %s",
}

var courseSubjects = []string{
	"Dasar", "Lanjut", "Terapan", "Modern", "Klasik", "Indonesia",
	"Global", "Analitik", "Kuantitatif", "Kualitatif", "Strategis",
	"Etika", "Profesional", "Riset", "Pengembangan", "Teori", "Sistem",
}
