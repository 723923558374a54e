package airline

import "strings"

// Directory maps carrier codes to display names.
type Directory struct {
	names map[string]string
}

func NewDirectory(names map[string]string) *Directory {
	d := &Directory{names: make(map[string]string, len(names))}
	for code, name := range names {
		d.names[strings.ToUpper(code)] = name
	}
	return d
}

// Name falls back to the raw code for unknown carriers.
func (d *Directory) Name(code string) string {
	if name, ok := d.names[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return name
	}
	return code
}

func NewDefaultDirectory() *Directory {
	return NewDirectory(map[string]string{
		"LH": "Lufthansa",
		"EW": "Eurowings",
		"DE": "Condor",
		"FR": "Ryanair",
		"U2": "EasyJet",
		"A3": "Aegean Airlines",
		"AF": "Air France",
		"OS": "Austrian Airlines",
		"IB": "Iberia",
		"KL": "KLM Royal Dutch Airlines",
		"LX": "Swiss International Air Lines",
		"SN": "Brussels Airlines",
		"TP": "TAP Air Portugal",
		"TK": "Turkish Airlines",
		"W6": "Wizz Air",
		"JU": "Air Serbia",
		"A9": "Georgian Airways",
		"SU": "Aeroflot",
	})
}
