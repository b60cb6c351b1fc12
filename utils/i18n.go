package utils

import (
	"golang.org/x/text/language"
)

type Language string

const (
	English Language = "en"
	Turkish Language = "tr"
	German  Language = "de"
)

var supported = []language.Tag{language.English, language.Turkish, language.German}

var matcher = language.NewMatcher(supported)

func normalize(l Language) Language {
	switch l {
	case English, Turkish, German:
		return l
	}
	return English
}

// ParseLanguage maps a tag or Accept-Language header onto a supported
// language, falling back to fallback when nothing matches.
func ParseLanguage(fallback Language, prefs ...string) Language {
	var candidates []string
	for _, p := range prefs {
		if p != "" {
			candidates = append(candidates, p)
		}
	}
	if len(candidates) == 0 {
		return normalize(fallback)
	}

	_, index, confidence := matcher.Match(parseTags(candidates)...)
	if confidence == language.No {
		return normalize(fallback)
	}
	base, _ := supported[index].Base()
	return normalize(Language(base.String()))
}

func parseTags(prefs []string) []language.Tag {
	var tags []language.Tag
	for _, p := range prefs {
		parsed, _, err := language.ParseAcceptLanguage(p)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	return tags
}

// Localizer is the per-request translation and price formatting service.
type Localizer struct {
	Lang Language
}

func NewLocalizer(lang Language) Localizer {
	return Localizer{Lang: normalize(lang)}
}

// T returns the translation for key, or the key itself when missing.
func (l Localizer) T(key string) string {
	if entry, ok := translations[key]; ok {
		if s, ok := entry[normalize(l.Lang)]; ok && s != "" {
			return s
		}
	}
	return key
}

func (l Localizer) FormatPrice(amount float64) string {
	return FormatPrice(l.Lang, amount)
}

var translations = map[string]map[Language]string{
	"table":              {English: "Table", Turkish: "Masa", German: "Tisch"},
	"tables":             {English: "Tables", Turkish: "Masalar", German: "Tische"},
	"capacity":           {English: "Capacity", Turkish: "Kapasite", German: "Kapazität"},
	"status":             {English: "Status", Turkish: "Durum", German: "Status"},
	"available":          {English: "Available", Turkish: "Müsait", German: "Verfügbar"},
	"occupied":           {English: "Occupied", Turkish: "Dolu", German: "Besetzt"},
	"reserved":           {English: "Reserved", Turkish: "Rezerve", German: "Reserviert"},
	"todaysOrders":       {English: "Today's Orders", Turkish: "Bugünkü Siparişler", German: "Heutige Bestellungen"},
	"noOrders":           {English: "No orders for today", Turkish: "Bugün için sipariş bulunmuyor", German: "Keine Bestellungen für heute"},
	"orderTime":          {English: "Order time", Turkish: "Sipariş zamanı", German: "Bestellzeit"},
	"pending":            {English: "Pending", Turkish: "Bekliyor", German: "Ausstehend"},
	"confirmed":          {English: "Confirmed", Turkish: "Onaylandı", German: "Bestätigt"},
	"preparing":          {English: "Preparing", Turkish: "Hazırlanıyor", German: "In Zubereitung"},
	"ready":              {English: "Ready", Turkish: "Hazır", German: "Fertig"},
	"delivered":          {English: "Delivered", Turkish: "Teslim Edildi", German: "Geliefert"},
	"price":              {English: "Price", Turkish: "Fiyat", German: "Preis"},
	"category":           {English: "Category", Turkish: "Kategori", German: "Kategorie"},
	"finance":            {English: "Finance", Turkish: "Finans", German: "Finanzen"},
	"totalRevenue":       {English: "Total revenue", Turkish: "Toplam gelir", German: "Gesamtumsatz"},
	"averageOrder":       {English: "Average order value", Turkish: "Ortalama sipariş tutarı", German: "Durchschnittlicher Bestellwert"},
	"orderCount":         {English: "Orders", Turkish: "Siparişler", German: "Bestellungen"},
	"customer":           {English: "Customer", Turkish: "Müşteri", German: "Kunde"},
	"orderReadySms":      {English: "Your order is ready for pickup!", Turkish: "Siparişiniz teslim almaya hazır!", German: "Ihre Bestellung ist abholbereit!"},
	"dailyFinanceReport": {English: "Daily finance report", Turkish: "Günlük finans raporu", German: "Täglicher Finanzbericht"},
}
