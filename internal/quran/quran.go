// Package quran holds the static 114-chapter catalog used by the khatmah
// read markers. Verse counts follow the Hafs numbering and total 6236.
package quran

// Surah is one chapter of the Qur'an.
type Surah struct {
	Number     int
	Name       string
	ArabicName string
	Verses     int
}

// Surahs is the full catalog, ordered by chapter number.
var Surahs = []Surah{
	{Number: 1, Name: "Al-Fatihah", ArabicName: "الفاتحة", Verses: 7},
	{Number: 2, Name: "Al-Baqarah", ArabicName: "البقرة", Verses: 286},
	{Number: 3, Name: "Aal-Imran", ArabicName: "آل عمران", Verses: 200},
	{Number: 4, Name: "An-Nisa", ArabicName: "النساء", Verses: 176},
	{Number: 5, Name: "Al-Ma'idah", ArabicName: "المائدة", Verses: 120},
	{Number: 6, Name: "Al-An'am", ArabicName: "الأنعام", Verses: 165},
	{Number: 7, Name: "Al-A'raf", ArabicName: "الأعراف", Verses: 206},
	{Number: 8, Name: "Al-Anfal", ArabicName: "الأنفال", Verses: 75},
	{Number: 9, Name: "At-Tawbah", ArabicName: "التوبة", Verses: 129},
	{Number: 10, Name: "Yunus", ArabicName: "يونس", Verses: 109},
	{Number: 11, Name: "Hud", ArabicName: "هود", Verses: 123},
	{Number: 12, Name: "Yusuf", ArabicName: "يوسف", Verses: 111},
	{Number: 13, Name: "Ar-Ra'd", ArabicName: "الرعد", Verses: 43},
	{Number: 14, Name: "Ibrahim", ArabicName: "إبراهيم", Verses: 52},
	{Number: 15, Name: "Al-Hijr", ArabicName: "الحجر", Verses: 99},
	{Number: 16, Name: "An-Nahl", ArabicName: "النحل", Verses: 128},
	{Number: 17, Name: "Al-Isra", ArabicName: "الإسراء", Verses: 111},
	{Number: 18, Name: "Al-Kahf", ArabicName: "الكهف", Verses: 110},
	{Number: 19, Name: "Maryam", ArabicName: "مريم", Verses: 98},
	{Number: 20, Name: "Ta-Ha", ArabicName: "طه", Verses: 135},
	{Number: 21, Name: "Al-Anbiya", ArabicName: "الأنبياء", Verses: 112},
	{Number: 22, Name: "Al-Hajj", ArabicName: "الحج", Verses: 78},
	{Number: 23, Name: "Al-Mu'minun", ArabicName: "المؤمنون", Verses: 118},
	{Number: 24, Name: "An-Nur", ArabicName: "النور", Verses: 64},
	{Number: 25, Name: "Al-Furqan", ArabicName: "الفرقان", Verses: 77},
	{Number: 26, Name: "Ash-Shu'ara", ArabicName: "الشعراء", Verses: 227},
	{Number: 27, Name: "An-Naml", ArabicName: "النمل", Verses: 93},
	{Number: 28, Name: "Al-Qasas", ArabicName: "القصص", Verses: 88},
	{Number: 29, Name: "Al-Ankabut", ArabicName: "العنكبوت", Verses: 69},
	{Number: 30, Name: "Ar-Rum", ArabicName: "الروم", Verses: 60},
	{Number: 31, Name: "Luqman", ArabicName: "لقمان", Verses: 34},
	{Number: 32, Name: "As-Sajdah", ArabicName: "السجدة", Verses: 30},
	{Number: 33, Name: "Al-Ahzab", ArabicName: "الأحزاب", Verses: 73},
	{Number: 34, Name: "Saba", ArabicName: "سبأ", Verses: 54},
	{Number: 35, Name: "Fatir", ArabicName: "فاطر", Verses: 45},
	{Number: 36, Name: "Ya-Sin", ArabicName: "يس", Verses: 83},
	{Number: 37, Name: "As-Saffat", ArabicName: "الصافات", Verses: 182},
	{Number: 38, Name: "Sad", ArabicName: "ص", Verses: 88},
	{Number: 39, Name: "Az-Zumar", ArabicName: "الزمر", Verses: 75},
	{Number: 40, Name: "Ghafir", ArabicName: "غافر", Verses: 85},
	{Number: 41, Name: "Fussilat", ArabicName: "فصلت", Verses: 54},
	{Number: 42, Name: "Ash-Shura", ArabicName: "الشورى", Verses: 53},
	{Number: 43, Name: "Az-Zukhruf", ArabicName: "الزخرف", Verses: 89},
	{Number: 44, Name: "Ad-Dukhan", ArabicName: "الدخان", Verses: 59},
	{Number: 45, Name: "Al-Jathiyah", ArabicName: "الجاثية", Verses: 37},
	{Number: 46, Name: "Al-Ahqaf", ArabicName: "الأحقاف", Verses: 35},
	{Number: 47, Name: "Muhammad", ArabicName: "محمد", Verses: 38},
	{Number: 48, Name: "Al-Fath", ArabicName: "الفتح", Verses: 29},
	{Number: 49, Name: "Al-Hujurat", ArabicName: "الحجرات", Verses: 18},
	{Number: 50, Name: "Qaf", ArabicName: "ق", Verses: 45},
	{Number: 51, Name: "Adh-Dhariyat", ArabicName: "الذاريات", Verses: 60},
	{Number: 52, Name: "At-Tur", ArabicName: "الطور", Verses: 49},
	{Number: 53, Name: "An-Najm", ArabicName: "النجم", Verses: 62},
	{Number: 54, Name: "Al-Qamar", ArabicName: "القمر", Verses: 55},
	{Number: 55, Name: "Ar-Rahman", ArabicName: "الرحمن", Verses: 78},
	{Number: 56, Name: "Al-Waqi'ah", ArabicName: "الواقعة", Verses: 96},
	{Number: 57, Name: "Al-Hadid", ArabicName: "الحديد", Verses: 29},
	{Number: 58, Name: "Al-Mujadilah", ArabicName: "المجادلة", Verses: 22},
	{Number: 59, Name: "Al-Hashr", ArabicName: "الحشر", Verses: 24},
	{Number: 60, Name: "Al-Mumtahanah", ArabicName: "الممتحنة", Verses: 13},
	{Number: 61, Name: "As-Saff", ArabicName: "الصف", Verses: 14},
	{Number: 62, Name: "Al-Jumu'ah", ArabicName: "الجمعة", Verses: 11},
	{Number: 63, Name: "Al-Munafiqun", ArabicName: "المنافقون", Verses: 11},
	{Number: 64, Name: "At-Taghabun", ArabicName: "التغابن", Verses: 18},
	{Number: 65, Name: "At-Talaq", ArabicName: "الطلاق", Verses: 12},
	{Number: 66, Name: "At-Tahrim", ArabicName: "التحريم", Verses: 12},
	{Number: 67, Name: "Al-Mulk", ArabicName: "الملك", Verses: 30},
	{Number: 68, Name: "Al-Qalam", ArabicName: "القلم", Verses: 52},
	{Number: 69, Name: "Al-Haqqah", ArabicName: "الحاقة", Verses: 52},
	{Number: 70, Name: "Al-Ma'arij", ArabicName: "المعارج", Verses: 44},
	{Number: 71, Name: "Nuh", ArabicName: "نوح", Verses: 28},
	{Number: 72, Name: "Al-Jinn", ArabicName: "الجن", Verses: 28},
	{Number: 73, Name: "Al-Muzzammil", ArabicName: "المزمل", Verses: 20},
	{Number: 74, Name: "Al-Muddathir", ArabicName: "المدثر", Verses: 56},
	{Number: 75, Name: "Al-Qiyamah", ArabicName: "القيامة", Verses: 40},
	{Number: 76, Name: "Al-Insan", ArabicName: "الإنسان", Verses: 31},
	{Number: 77, Name: "Al-Mursalat", ArabicName: "المرسلات", Verses: 50},
	{Number: 78, Name: "An-Naba", ArabicName: "النبأ", Verses: 40},
	{Number: 79, Name: "An-Nazi'at", ArabicName: "النازعات", Verses: 46},
	{Number: 80, Name: "Abasa", ArabicName: "عبس", Verses: 42},
	{Number: 81, Name: "At-Takwir", ArabicName: "التكوير", Verses: 29},
	{Number: 82, Name: "Al-Infitar", ArabicName: "الانفطار", Verses: 19},
	{Number: 83, Name: "Al-Mutaffifin", ArabicName: "المطففين", Verses: 36},
	{Number: 84, Name: "Al-Inshiqaq", ArabicName: "الانشقاق", Verses: 25},
	{Number: 85, Name: "Al-Buruj", ArabicName: "البروج", Verses: 22},
	{Number: 86, Name: "At-Tariq", ArabicName: "الطارق", Verses: 17},
	{Number: 87, Name: "Al-A'la", ArabicName: "الأعلى", Verses: 19},
	{Number: 88, Name: "Al-Ghashiyah", ArabicName: "الغاشية", Verses: 26},
	{Number: 89, Name: "Al-Fajr", ArabicName: "الفجر", Verses: 30},
	{Number: 90, Name: "Al-Balad", ArabicName: "البلد", Verses: 20},
	{Number: 91, Name: "Ash-Shams", ArabicName: "الشمس", Verses: 15},
	{Number: 92, Name: "Al-Layl", ArabicName: "الليل", Verses: 21},
	{Number: 93, Name: "Ad-Duha", ArabicName: "الضحى", Verses: 11},
	{Number: 94, Name: "Ash-Sharh", ArabicName: "الشرح", Verses: 8},
	{Number: 95, Name: "At-Tin", ArabicName: "التين", Verses: 8},
	{Number: 96, Name: "Al-Alaq", ArabicName: "العلق", Verses: 19},
	{Number: 97, Name: "Al-Qadr", ArabicName: "القدر", Verses: 5},
	{Number: 98, Name: "Al-Bayyinah", ArabicName: "البينة", Verses: 8},
	{Number: 99, Name: "Az-Zalzalah", ArabicName: "الزلزلة", Verses: 8},
	{Number: 100, Name: "Al-Adiyat", ArabicName: "العاديات", Verses: 11},
	{Number: 101, Name: "Al-Qari'ah", ArabicName: "القارعة", Verses: 11},
	{Number: 102, Name: "At-Takathur", ArabicName: "التكاثر", Verses: 8},
	{Number: 103, Name: "Al-Asr", ArabicName: "العصر", Verses: 3},
	{Number: 104, Name: "Al-Humazah", ArabicName: "الهمزة", Verses: 9},
	{Number: 105, Name: "Al-Fil", ArabicName: "الفيل", Verses: 5},
	{Number: 106, Name: "Quraysh", ArabicName: "قريش", Verses: 4},
	{Number: 107, Name: "Al-Ma'un", ArabicName: "الماعون", Verses: 7},
	{Number: 108, Name: "Al-Kawthar", ArabicName: "الكوثر", Verses: 3},
	{Number: 109, Name: "Al-Kafirun", ArabicName: "الكافرون", Verses: 6},
	{Number: 110, Name: "An-Nasr", ArabicName: "النصر", Verses: 3},
	{Number: 111, Name: "Al-Masad", ArabicName: "المسد", Verses: 5},
	{Number: 112, Name: "Al-Ikhlas", ArabicName: "الإخلاص", Verses: 4},
	{Number: 113, Name: "Al-Falaq", ArabicName: "الفلق", Verses: 5},
	{Number: 114, Name: "An-Nas", ArabicName: "الناس", Verses: 6},
}

// ByNumber returns the surah with the given chapter number. The second
// return reports whether the number is in range.
func ByNumber(n int) (Surah, bool) {
	if n < 1 || n > len(Surahs) {
		return Surah{}, false
	}
	return Surahs[n-1], true
}

// VerseSum returns the total verse count of the given chapter numbers.
// Unknown numbers contribute zero.
func VerseSum(numbers []int) int {
	sum := 0
	for _, n := range numbers {
		if s, ok := ByNumber(n); ok {
			sum += s.Verses
		}
	}
	return sum
}
