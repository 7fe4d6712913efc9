package superfaktura

// Invoice types accepted by the service.
const (
	InvoiceTypeRegular  = "regular"
	InvoiceTypeProforma = "proforma"
)

// Currency codes accepted by the service.
const (
	CurrencyCZK = "CZK"
	CurrencyEUR = "EUR"
)

// Language codes for rendered documents.
const (
	LanguageCzech     = "cze"
	LanguageGerman    = "deu"
	LanguageEnglish   = "eng"
	LanguageCroatian  = "hrv"
	LanguageHungarian = "hun"
	LanguageItalian   = "ita"
	LanguageDutch     = "nld"
	LanguagePolish    = "pol"
	LanguageRomanian  = "rom"
	LanguageRussian   = "rus"
	LanguageSlovak    = "slo"
	LanguageSlovene   = "slv"
	LanguageSpanish   = "spa"
	LanguageUkrainian = "ukr"
)
