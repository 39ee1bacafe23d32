package extract

// Locale holds the language-specific strings the extractor matches against.
type Locale struct {
	// SolutionWord is the trimmed text of the element that opens the solution.
	SolutionWord string
	// PointsWord is the start of the point unit in "(12 bodů)" title suffixes.
	PointsWord string
	// UnknownName is used as the task name when the title cannot be parsed.
	UnknownName string
	// SkipParagraphs are whitespace-normalized texts of elements to drop.
	SkipParagraphs []string
}

// CzechLocale matches the markup of the KSP site.
var CzechLocale = Locale{
	SolutionWord: "Řešení",
	PointsWord:   "bod",
	UnknownName:  "Neznámé jméno úlohy",
	SkipParagraphs: []string{
		"Toto je praktická open-data úloha. V odevzdávacím systému si necháte vygenerovat vstupy a odevzdáte příslušné výstupy. Záleží jen na vás, jak výstupy vyrobíte.",
	},
}
