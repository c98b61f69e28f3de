// Package i18n holds the user facing messages of zenith and their translations.
//
// Messages are keyed by their English text and registered in the default
// golang.org/x/text/message catalog, so any message.Printer can render them.
package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"golang.org/x/text/message"
)

// Message keys. The key is also the English text.
const (
	NotConfigured  = "API key is not configured"
	AdvisoryFailed = "Failed to get AI suggestions. Please check your API key and network connection."
	Unexpected     = "An unexpected error occurred."

	Dashboard    = "Dashboard"
	Wallets      = "Wallets"
	Transactions = "Transactions"
	Reports      = "Reports"
	Advisor      = "AI Portfolio Advisor"

	DashboardWelcome = "Welcome back, here is an overview of your portfolio."
	TotalBalance     = "Total Balance"
	Change24h        = "24h Change"
	RealizedPL       = "Realized P/L"
	UnrealizedPL     = "Unrealized P/L"
	History          = "Portfolio Value (7 days)"
	Allocation       = "Asset Allocation"
	MyAssets         = "My Assets"
	DaysAgo          = "%d days ago"
	Yesterday        = "Yesterday"
	Today            = "Today"

	WalletsSubtitle = "All your custody accounts in one place."
	ExchangeType    = "Exchange"
	HardwareType    = "Hardware wallet"
	FiatAccountType = "Bank account"

	TransactionsSubtitle = "Review your complete transaction history."
	AllTypes             = "All"
	FilterLabel          = "Filter: %s"
	StatusCompleted      = "Completed"
	StatusPending        = "Pending"
	StatusFailed         = "Failed"
	FromTo               = "from %s to %s"
	NoTransactions       = "No transactions."

	ReportsSubtitle = "Analyze your trading performance."
	TradeHistory    = "Trade History"
	ProfitLoss      = "Monthly Profit & Loss"
	Distribution    = "Distribution by Wallet"

	AdvisorSubtitle  = "Get smart rebalancing suggestions for your portfolio powered by Gemini."
	AdvisorIdle      = "Ready for an AI analysis? Run `analyze` to get suggestions."
	AdvisorLoading   = "Analyzing..."
	AdvisorFailed    = "Analysis failed"
	AdvisorDone      = "Analysis complete"
	AdvisorCancelled = "Analysis cancelled."
	AdvisorReasoning = "AI Reasoning"
	AdvisorActions   = "Actionable Suggestions"
	Target           = "target: %s"

	// table columns
	Day        = "Day"
	Month      = "Month"
	Value      = "Value"
	Asset      = "Asset"
	Balance    = "Balance"
	Price      = "Price"
	Share      = "Share"
	Type       = "Type"
	Date       = "Date"
	Amount     = "Amount"
	Status     = "Status"
	Details    = "Details"
	Buys       = "Buys"
	Sells      = "Sells"
	Profit     = "Profit"
	Realized   = "Realized"
	Unrealized = "Unrealized"
	Wallet     = "Wallet"

	LoginRequired = "Please log in first: `login [email]`."
	LoggedIn      = "Welcome to Zenith, %s."
	LoggedOut     = "Logged out."
)

var fa = map[string]string{
	NotConfigured:  "کلید API پیکربندی نشده است.",
	AdvisoryFailed: "دریافت پیشنهادهای هوش مصنوعی ناموفق بود. لطفاً کلید API و اتصال شبکه خود را بررسی کنید.",
	Unexpected:     "خطای غیرمنتظره‌ای رخ داد.",

	Dashboard:    "داشبورد",
	Wallets:      "کیف پول‌ها",
	Transactions: "تراکنش‌ها",
	Reports:      "گزارش‌ها",
	Advisor:      "مشاور هوش مصنوعی پورتفوی",

	DashboardWelcome: "خوش آمدید، این نمای کلی پورتفوی شماست.",
	TotalBalance:     "موجودی کل",
	Change24h:        "تغییرات ۲۴ ساعته پورتفوی",
	RealizedPL:       "سود/زیان محقق شده",
	UnrealizedPL:     "سود/زیان محقق نشده",
	History:          "ارزش پورتفوی (۷ روز)",
	Allocation:       "تخصیص دارایی",
	MyAssets:         "دارایی‌های من",
	DaysAgo:          "%d روز پیش",
	Yesterday:        "دیروز",
	Today:            "امروز",

	WalletsSubtitle: "همه حساب‌های شما در یک جا.",
	ExchangeType:    "صرافی",
	HardwareType:    "کیف پول سخت‌افزاری",
	FiatAccountType: "حساب بانکی",

	TransactionsSubtitle: "تاریخچه کامل تراکنش‌های خود را مرور کنید.",
	AllTypes:             "همه",
	FilterLabel:          "فیلتر: %s",
	StatusCompleted:      "تکمیل شده",
	StatusPending:        "در حال انتظار",
	StatusFailed:         "ناموفق",
	FromTo:               "از %s به %s",
	NoTransactions:       "تراکنشی وجود ندارد.",

	ReportsSubtitle: "عملکرد معاملاتی خود را تحلیل کنید.",
	TradeHistory:    "تاریخچه معاملات",
	ProfitLoss:      "سود و زیان ماهانه",
	Distribution:    "توزیع بر اساس کیف پول",

	AdvisorSubtitle:  "پیشنهادهای هوشمند برای توازن مجدد پورتفوی با قدرت Gemini دریافت کنید.",
	AdvisorIdle:      "برای تحلیل مبتنی بر هوش مصنوعی آماده‌اید؟ دستور `analyze` را اجرا کنید.",
	AdvisorLoading:   "در حال تحلیل...",
	AdvisorFailed:    "تحلیل ناموفق بود",
	AdvisorDone:      "تحلیل تکمیل شد",
	AdvisorCancelled: "تحلیل لغو شد.",
	AdvisorReasoning: "استدلال هوش مصنوعی",
	AdvisorActions:   "پیشنهادهای عملی",
	Target:           "هدف: %s",

	Day:        "روز",
	Month:      "ماه",
	Value:      "ارزش",
	Asset:      "دارایی",
	Balance:    "موجودی",
	Price:      "قیمت",
	Share:      "سهم",
	Type:       "نوع",
	Date:       "تاریخ",
	Amount:     "مقدار",
	Status:     "وضعیت",
	Details:    "جزئیات",
	Buys:       "خریدها",
	Sells:      "فروش‌ها",
	Profit:     "سود",
	Realized:   "محقق شده",
	Unrealized: "محقق نشده",
	Wallet:     "کیف پول",

	LoginRequired: "لطفاً ابتدا وارد شوید: `login [email]`.",
	LoggedIn:      "به Zenith خوش آمدید، %s.",
	LoggedOut:     "خارج شدید.",
}

// Supported lists the available languages, the first one is the default.
var Supported = []language.Tag{language.English, language.Persian}

var matcher = language.NewMatcher(Supported)

func init() {
	for key, msg := range fa {
		if err := message.SetString(language.Persian, key, msg); err != nil {
			panic(err)
		}
	}
}

// Parse returns the supported language matching s (e.g. "fa", "fa-IR", "en-US").
func Parse(s string) (language.Tag, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", s, err)
	}
	_, index, conf := matcher.Match(tag)
	if conf == language.No {
		return language.Und, fmt.Errorf("unsupported locale %q, expected one of %v", s, Supported)
	}
	return Supported[index], nil
}

// Text renders a message key in the given language.
func Text(tag language.Tag, key string, args ...any) string {
	return message.NewPrinter(tag).Sprintf(key, args...)
}

// LanguageName returns the English name of the language, e.g. "Persian".
func LanguageName(tag language.Tag) string {
	return display.English.Tags().Name(tag)
}
