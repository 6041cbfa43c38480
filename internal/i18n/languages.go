package i18n

// Language describes one supported site language. Subdomain is the
// DNS label the language is served from (e.g. tr.livescores.example.com).
type Language struct {
	Code      string `json:"code"`
	Subdomain string `json:"subdomain"`
	Name      string `json:"name"`
	RTL       bool   `json:"rtl"`
}

// DefaultCode is used when a host or preference resolves to nothing.
const DefaultCode = "en"

// languages is the full static table, fixed at process start. Order is
// meaningful: sitemap expansion iterates it as-is to keep output diffs
// reproducible.
var languages = []Language{
	{Code: "en", Subdomain: "www", Name: "English"},
	{Code: "es", Subdomain: "es", Name: "Español"},
	{Code: "de", Subdomain: "de", Name: "Deutsch"},
	{Code: "fr", Subdomain: "fr", Name: "Français"},
	{Code: "it", Subdomain: "it", Name: "Italiano"},
	{Code: "pt", Subdomain: "pt", Name: "Português"},
	{Code: "pt-BR", Subdomain: "br", Name: "Português (Brasil)"},
	{Code: "nl", Subdomain: "nl", Name: "Nederlands"},
	{Code: "pl", Subdomain: "pl", Name: "Polski"},
	{Code: "tr", Subdomain: "tr", Name: "Türkçe"},
	{Code: "ru", Subdomain: "ru", Name: "Русский"},
	{Code: "uk", Subdomain: "uk", Name: "Українська"},
	{Code: "ar", Subdomain: "ar", Name: "العربية", RTL: true},
	{Code: "he", Subdomain: "he", Name: "עברית", RTL: true},
	{Code: "fa", Subdomain: "fa", Name: "فارسی", RTL: true},
	{Code: "ur", Subdomain: "ur", Name: "اردو", RTL: true},
	{Code: "hi", Subdomain: "hi", Name: "हिन्दी"},
	{Code: "bn", Subdomain: "bn", Name: "বাংলা"},
	{Code: "ta", Subdomain: "ta", Name: "தமிழ்"},
	{Code: "te", Subdomain: "te", Name: "తెలుగు"},
	{Code: "ml", Subdomain: "ml", Name: "മലയാളം"},
	{Code: "mr", Subdomain: "mr", Name: "मराठी"},
	{Code: "gu", Subdomain: "gu", Name: "ગુજરાતી"},
	{Code: "kn", Subdomain: "kn", Name: "ಕನ್ನಡ"},
	{Code: "pa", Subdomain: "pa", Name: "ਪੰਜਾਬੀ"},
	{Code: "ne", Subdomain: "ne", Name: "नेपाली"},
	{Code: "si", Subdomain: "si", Name: "සිංහල"},
	{Code: "zh-CN", Subdomain: "zh-cn", Name: "简体中文"},
	{Code: "zh-TW", Subdomain: "zh-tw", Name: "繁體中文"},
	{Code: "ja", Subdomain: "ja", Name: "日本語"},
	{Code: "ko", Subdomain: "ko", Name: "한국어"},
	{Code: "vi", Subdomain: "vi", Name: "Tiếng Việt"},
	{Code: "th", Subdomain: "th", Name: "ไทย"},
	{Code: "id", Subdomain: "id", Name: "Bahasa Indonesia"},
	{Code: "ms", Subdomain: "ms", Name: "Bahasa Melayu"},
	{Code: "tl", Subdomain: "tl", Name: "Filipino"},
	{Code: "km", Subdomain: "km", Name: "ខ្មែរ"},
	{Code: "my", Subdomain: "my", Name: "မြန်မာ"},
	{Code: "lo", Subdomain: "lo", Name: "ລາວ"},
	{Code: "sv", Subdomain: "sv", Name: "Svenska"},
	{Code: "no", Subdomain: "no", Name: "Norsk"},
	{Code: "da", Subdomain: "da", Name: "Dansk"},
	{Code: "fi", Subdomain: "fi", Name: "Suomi"},
	{Code: "is", Subdomain: "is", Name: "Íslenska"},
	{Code: "et", Subdomain: "et", Name: "Eesti"},
	{Code: "lv", Subdomain: "lv", Name: "Latviešu"},
	{Code: "lt", Subdomain: "lt", Name: "Lietuvių"},
	{Code: "cs", Subdomain: "cs", Name: "Čeština"},
	{Code: "sk", Subdomain: "sk", Name: "Slovenčina"},
	{Code: "sl", Subdomain: "sl", Name: "Slovenščina"},
	{Code: "hr", Subdomain: "hr", Name: "Hrvatski"},
	{Code: "sr", Subdomain: "sr", Name: "Српски"},
	{Code: "bs", Subdomain: "bs", Name: "Bosanski"},
	{Code: "mk", Subdomain: "mk", Name: "Македонски"},
	{Code: "bg", Subdomain: "bg", Name: "Български"},
	{Code: "ro", Subdomain: "ro", Name: "Română"},
	{Code: "hu", Subdomain: "hu", Name: "Magyar"},
	{Code: "el", Subdomain: "el", Name: "Ελληνικά"},
	{Code: "sq", Subdomain: "sq", Name: "Shqip"},
	{Code: "az", Subdomain: "az", Name: "Azərbaycanca"},
	{Code: "hy", Subdomain: "hy", Name: "Հայերեն"},
	{Code: "ka", Subdomain: "ka", Name: "ქართული"},
	{Code: "kk", Subdomain: "kk", Name: "Қазақша"},
	{Code: "uz", Subdomain: "uz", Name: "Oʻzbekcha"},
	{Code: "ky", Subdomain: "ky", Name: "Кыргызча"},
	{Code: "mn", Subdomain: "mn", Name: "Монгол"},
	{Code: "sw", Subdomain: "sw", Name: "Kiswahili"},
	{Code: "am", Subdomain: "am", Name: "አማርኛ"},
	{Code: "ha", Subdomain: "ha", Name: "Hausa"},
	{Code: "yo", Subdomain: "yo", Name: "Yorùbá"},
	{Code: "ig", Subdomain: "ig", Name: "Igbo"},
	{Code: "zu", Subdomain: "zu", Name: "isiZulu"},
	{Code: "af", Subdomain: "af", Name: "Afrikaans"},
	{Code: "ca", Subdomain: "ca", Name: "Català"},
	{Code: "eu", Subdomain: "eu", Name: "Euskara"},
	{Code: "gl", Subdomain: "gl", Name: "Galego"},
	{Code: "ga", Subdomain: "ga", Name: "Gaeilge"},
	{Code: "cy", Subdomain: "cy", Name: "Cymraeg"},
	{Code: "mt", Subdomain: "mt", Name: "Malti"},
	{Code: "lb", Subdomain: "lb", Name: "Lëtzebuergesch"},
	{Code: "be", Subdomain: "be", Name: "Беларуская"},
}

var (
	byCode      = make(map[string]Language, len(languages))
	bySubdomain = make(map[string]Language, len(languages))
)

func init() {
	for _, lang := range languages {
		byCode[lang.Code] = lang
		bySubdomain[lang.Subdomain] = lang
	}
}

// Languages returns the supported language table in canonical order.
// Callers must not mutate the returned slice.
func Languages() []Language {
	return languages
}

// ByCode looks up a language by its BCP-47-like code.
func ByCode(code string) (Language, bool) {
	lang, ok := byCode[code]
	return lang, ok
}

// BySubdomain looks up a language by its serving subdomain.
func BySubdomain(subdomain string) (Language, bool) {
	lang, ok := bySubdomain[subdomain]
	return lang, ok
}

// Default returns the fallback language.
func Default() Language {
	lang, _ := byCode[DefaultCode]
	return lang
}
