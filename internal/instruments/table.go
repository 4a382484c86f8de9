package instruments

var (
	usdQuote = func(dp int) Info { return Info{PipDecimalPlace: dp, USDIsQuote: true} }
	usdBase  = func(dp int) Info { return Info{PipDecimalPlace: dp, USDIsBase: true} }
	noUSD    = func(dp int) Info { return Info{PipDecimalPlace: dp} }
)

var builtin = map[string]Info{
	// FX majors
	"EURUSD": usdQuote(4),
	"GBPUSD": usdQuote(4),
	"AUDUSD": usdQuote(4),
	"NZDUSD": usdQuote(4),
	"USDJPY": usdBase(2),
	"USDCAD": usdBase(4),
	"USDCHF": usdBase(4),

	// JPY crosses
	"EURJPY": noUSD(2),
	"GBPJPY": noUSD(2),
	"AUDJPY": noUSD(2),
	"NZDJPY": noUSD(2),
	"CADJPY": noUSD(2),
	"CHFJPY": noUSD(2),

	// Other crosses
	"EURGBP": noUSD(4),
	"EURAUD": noUSD(4),
	"EURNZD": noUSD(4),
	"EURCAD": noUSD(4),
	"EURCHF": noUSD(4),
	"GBPAUD": noUSD(4),
	"GBPNZD": noUSD(4),
	"GBPCAD": noUSD(4),
	"GBPCHF": noUSD(4),
	"AUDNZD": noUSD(4),
	"AUDCAD": noUSD(4),
	"AUDCHF": noUSD(4),
	"NZDCAD": noUSD(4),
	"NZDCHF": noUSD(4),
	"CADCHF": noUSD(4),

	// USD exotics
	"USDSEK": usdBase(4),
	"USDNOK": usdBase(4),
	"USDDKK": usdBase(4),
	"USDPLN": usdBase(4),
	"USDHUF": usdBase(2),
	"USDCZK": usdBase(4),
	"USDTRY": usdBase(4),
	"USDZAR": usdBase(4),
	"USDMXN": usdBase(4),
	"USDSGD": usdBase(4),
	"USDHKD": usdBase(4),

	// Indices
	"US30":    noUSD(2),
	"SPX500":  noUSD(2),
	"NAS100":  noUSD(2),
	"UK100":   noUSD(2),
	"GER40":   noUSD(2),
	"FRA40":   noUSD(2),
	"ESP35":   noUSD(2),
	"ITA40":   noUSD(2),
	"AUS200":  noUSD(2),
	"JPN225":  noUSD(2),
	"HK50":    noUSD(2),
	"CHINA50": noUSD(2),
	"EUSTX50": noUSD(2),

	// Metals and energy
	"XAUUSD": usdQuote(2),
	"XAGUSD": usdQuote(3),
	"XPTUSD": usdQuote(2),
	"XPDUSD": usdQuote(2),
	"USOIL":  noUSD(2),
	"UKOIL":  noUSD(2),
	"NATGAS": noUSD(3),

	// Crypto
	"BTCUSD":  usdQuote(2),
	"ETHUSD":  usdQuote(2),
	"LTCUSD":  usdQuote(2),
	"XRPUSD":  usdQuote(4),
	"ADAUSD":  usdQuote(4),
	"DOTUSD":  usdQuote(3),
	"LINKUSD": usdQuote(3),
	"SOLUSD":  usdQuote(2),
	"BTCEUR":  noUSD(2),
	"ETHEUR":  noUSD(2),
	"BTCGBP":  noUSD(2),
}
