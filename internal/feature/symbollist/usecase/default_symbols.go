package usecase

// defaultCodes is the instrument list seeded into an empty symbol table:
// large-cap US equities across sectors.
var defaultCodes = []string{
	"AAPL", "MSFT", "CSCO", "WMT", "INTC", "PG", "JNJ", "KO", "PEP", "MCD",
	"MO", "BA", "XOM", "CVX", "GE", "CAT", "MMM", "HPQ", "DD", "MRK",
	"JPM", "AXP", "BAC", "C", "WFC", "GS", "VZ", "T", "IBM", "TXN",
	"HON", "LMT", "GD", "NOC", "GM", "F", "PFE", "ABT", "BMY", "LLY",
	"AIG", "MET", "HIG", "ALL", "TRV", "PGR", "CINF", "BRK-A", "DIS", "TGT",
	"CMCSA", "NWSA", "AMCX", "MDLZ", "CPB", "K", "GIS", "HSY",
	"HRL", "SJM", "MKC", "FLO", "ADM", "BG", "INGR", "TSN", "HOG", "HD",
	"LOW", "WHR", "NWL", "LEG", "MHK", "MAS", "PHM", "DHI", "LEN", "KBH",
	"BZH", "ORCL", "GLW", "EMR", "ETN", "SLB", "HAL", "DE", "CL", "EOG",
	"OXY", "DVN", "MRO", "SWN", "RRC", "CVS", "EQT", "FTI",
}
