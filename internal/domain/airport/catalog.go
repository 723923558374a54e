package airport

// Catalog is the immutable airport table used for the search form and result display.
type Catalog struct {
	origins      []Airport
	destinations []Airport
	byCode       map[string]Airport
}

func NewCatalog(origins, destinations []Airport) *Catalog {
	c := &Catalog{
		origins:      append([]Airport(nil), origins...),
		destinations: append([]Airport(nil), destinations...),
		byCode:       make(map[string]Airport, len(origins)+len(destinations)),
	}
	for _, a := range c.origins {
		c.byCode[a.IATA] = a
	}
	for _, a := range c.destinations {
		if a.IsSeparator() {
			continue
		}
		c.byCode[a.IATA] = a
	}
	return c
}

func (c *Catalog) Lookup(iata string) (Airport, bool) {
	a, ok := c.byCode[iata]
	return a, ok
}

// Display returns the display string for iata, or the code itself when unknown.
func (c *Catalog) Display(iata string) string {
	if a, ok := c.Lookup(iata); ok {
		return a.DisplayName()
	}
	return iata
}

func (c *Catalog) Origins() []Airport {
	return append([]Airport(nil), c.origins...)
}

// Destinations includes the grouping sentinels in display order.
func (c *Catalog) Destinations() []Airport {
	return append([]Airport(nil), c.destinations...)
}

func NewDefaultCatalog() *Catalog {
	return NewCatalog(germanAirports, destinationAirports)
}

var germanAirports = []Airport{
	{IATA: "BER", City: "Berlin", Name: `Flughafen Berlin Brandenburg "Willy Brandt"`, Category: CategoryGermany},
	{IATA: "BRE", City: "Bremen", Name: "Bremen Airport Hans Koschnick", Category: CategoryGermany},
	{IATA: "DTM", City: "Dortmund", Name: "Dortmund Airport 21", Category: CategoryGermany},
	{IATA: "DRS", City: "Dresden", Name: "Flughafen Dresden International", Category: CategoryGermany},
	{IATA: "DUS", City: "Düsseldorf", Name: "Düsseldorf Airport", Category: CategoryGermany},
	{IATA: "ERF", City: "Erfurt", Name: "Flughafen Erfurt-Weimar", Category: CategoryGermany},
	{IATA: "FRA", City: "Frankfurt", Name: "Flughafen Frankfurt am Main", Category: CategoryGermany},
	{IATA: "HHN", City: "Frankfurt", Name: "Flughafen Frankfurt-Hahn", Category: CategoryGermany},
	{IATA: "FDH", City: "Friedrichshafen", Name: "Bodensee-Airport Friedrichshafen", Category: CategoryGermany},
	{IATA: "HAM", City: "Hamburg", Name: "Hamburg Airport Helmut Schmidt", Category: CategoryGermany},
	{IATA: "HAJ", City: "Hannover", Name: "Hannover Airport", Category: CategoryGermany},
	{IATA: "FKB", City: "Karlsruhe", Name: "Flughafen Karlsruhe/Baden-Baden", Category: CategoryGermany},
	{IATA: "CGN", City: "Köln/Bonn", Name: `Köln Bonn Airport "Konrad Adenauer"`, Category: CategoryGermany},
	{IATA: "LEJ", City: "Leipzig/Halle", Name: "Flughafen Leipzig/Halle", Category: CategoryGermany},
	{IATA: "FMM", City: "Memmingen", Name: "Memmingen Airport", Category: CategoryGermany},
	{IATA: "MUC", City: "München", Name: `Flughafen München "Franz Josef Strauß"`, Category: CategoryGermany},
	{IATA: "FMO", City: "Münster/Osnabrück", Name: "Flughafen Münster/Osnabrück", Category: CategoryGermany},
	{IATA: "NUE", City: "Nürnberg", Name: "Albrecht Dürer Airport Nürnberg", Category: CategoryGermany},
	{IATA: "PAD", City: "Paderborn/Lippstadt", Name: "Flughafen Paderborn/Lippstadt", Category: CategoryGermany},
	{IATA: "RLG", City: "Rostock", Name: "Flughafen Rostock-Laage", Category: CategoryGermany},
	{IATA: "SCN", City: "Saarbrücken", Name: "Flughafen Saarbrücken", Category: CategoryGermany},
	{IATA: "STR", City: "Stuttgart", Name: "Flughafen Stuttgart", Category: CategoryGermany},
	{IATA: "NRN", City: "Weeze", Name: "Airport Weeze", Category: CategoryGermany},
}

var destinationAirports = []Airport{
	{IATA: SeparatorCode, Name: "Schengen-Raum", Category: CategorySchengen},
	{IATA: "VIE", City: "Wien", Name: "Flughafen Wien-Schwechat", Category: CategorySchengen},
	{IATA: "CDG", City: "Paris", Name: "Flughafen Paris-Charles-de-Gaulle", Category: CategorySchengen},
	{IATA: "MAD", City: "Madrid", Name: "Flughafen Adolfo Suárez Madrid-Barajas", Category: CategorySchengen},
	{IATA: SeparatorCode, Name: "Nicht-Schengen-Raum", Category: CategoryNonSchengen},
	{IATA: "TBS", City: "Tiflis", Name: "Internationaler Flughafen Tiflis", Category: CategoryNonSchengen},
	{IATA: "SKP", City: "Skopje", Name: "Internationaler Flughafen Skopje", Category: CategoryNonSchengen},
	{IATA: "TIA", City: "Tirana", Name: "Flughafen Tirana Nënë Tereza", Category: CategoryNonSchengen},
	{IATA: "BEG", City: "Belgrad", Name: "Flughafen Belgrad Nikola Tesla", Category: CategoryNonSchengen},
	{IATA: "PRN", City: "Pristina", Name: "Flughafen Pristina", Category: CategoryNonSchengen},
	{IATA: "RMO", City: "Bălți", Name: "Internationaler Flughafen Bălți-Leadoveni", Category: CategoryNonSchengen},
	{IATA: "SJJ", City: "Sarajevo", Name: "Flughafen Sarajevo", Category: CategoryNonSchengen},
	{IATA: "EVN", City: "Jerewan", Name: "Internationaler Flughafen Swartnoz", Category: CategoryNonSchengen},
	{IATA: "SOF", City: "Sofia", Name: "Flughafen Sofia", Category: CategoryNonSchengen},
	{IATA: "SVO", City: "Moskau", Name: "Sheremetyevo International Airport", Category: CategoryNonSchengen},
	{IATA: "TGD", City: "Podgorica", Name: "Flughafen Podgorica", Category: CategoryNonSchengen},
}
