package service

// subjectLabels maps subtest subject codes to the display names used in
// reports and score emails. Unknown codes pass through verbatim.
var subjectLabels = map[string]string{
	"pu":    "Penalaran Umum",
	"ppu":   "Pengetahuan dan Pemahaman Umum",
	"pbm":   "Pemahaman Bacaan dan Menulis",
	"pk":    "Pengetahuan Kuantitatif",
	"lbi":   "Literasi Bahasa Indonesia",
	"lbe":   "Literasi Bahasa Inggris",
	"pm":    "Penalaran Matematika",
	"tka":   "Tes Kemampuan Akademik",
	"essay": "Esai",
}

// SubjectLabel resolves a subtest code to its display label.
func SubjectLabel(code string) string {
	if label, ok := subjectLabels[code]; ok {
		return label
	}
	return code
}
