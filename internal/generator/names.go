package generator

import "math/rand"

// Indonesian name and word pools. The original dataset used a locale
// faker for these; no equivalent exists in the Go ecosystem this
// project draws from, so the pools are carried as data.

var maleFirstNames = []string{
	"Agus", "Budi", "Bambang", "Dimas", "Eko", "Fajar", "Gilang",
	"Hendra", "Indra", "Joko", "Krisna", "Lukman", "Muhammad", "Nanda",
	"Oscar", "Putra", "Rizky", "Surya", "Taufik", "Wahyu", "Yusuf",
	"Adi", "Arif", "Dedi", "Firman", "Hadi", "Irfan", "Rudi", "Slamet",
	"Teguh",
}

var femaleFirstNames = []string{
	"Ayu", "Bella", "Citra", "Dewi", "Eka", "Fitri", "Gita", "Hana",
	"Indah", "Kartika", "Lestari", "Maya", "Nadia", "Putri", "Ratna",
	"Sari", "Tari", "Umi", "Vina", "Wulan", "Yuni", "Zahra", "Ajeng",
	"Dina", "Intan", "Laras", "Mega", "Nur", "Rina", "Siti",
}

var lastNames = []string{
	"Santoso", "Wijaya", "Saputra", "Hidayat", "Kusuma", "Pratama",
	"Utami", "Nugroho", "Setiawan", "Rahayu", "Susanto", "Wibowo",
	"Hartono", "Siregar", "Nasution", "Simanjuntak", "Lubis", "Gunawan",
	"Halim", "Suryana", "Maulana", "Firmansyah", "Anggraini", "Permata",
	"Puspita", "Ramadhan", "Salim", "Yulianto", "Hakim", "Purnomo",
}

var indonesianWords = []string{
	"Nusantara", "Cendekia", "Harmoni", "Bahari", "Khatulistiwa",
	"Sejahtera", "Mandiri", "Persada", "Wicaksana", "Adiluhung",
	"Nirwana", "Sentosa", "Pelita", "Candra", "Samudra",
}

var academicTitles = []string{"Dr.", "Prof. Dr.", "", "", ""}

var academicSuffixes = []string{
	"S.T., M.T.", "S.E., M.M.", "S.Kom, M.Kom.", "S.H., M.H.", "Ph.D.",
	"", "",
}

const (
	genderMale = iota
	genderFemale
)

// personName draws a two-part Indonesian name for the given gender.
func personName(rng *rand.Rand, gender int) (first, last string) {
	if gender == genderFemale {
		first = femaleFirstNames[rng.Intn(len(femaleFirstNames))]
	} else {
		first = maleFirstNames[rng.Intn(len(maleFirstNames))]
	}
	last = lastNames[rng.Intn(len(lastNames))]
	return first, last
}

func randomWord(rng *rand.Rand) string {
	return indonesianWords[rng.Intn(len(indonesianWords))]
}

// randomUpperLetter returns a random uppercase ASCII letter.
func randomUpperLetter(rng *rand.Rand) byte {
	return byte('A' + rng.Intn(26))
}
