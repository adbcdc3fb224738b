package grocery

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// ParsedBillItem is one grocery line extracted from raw OCR text.
type ParsedBillItem struct {
	Name       string
	Quantity   float64
	Unit       string
	Price      float64
	ExpiryDate time.Time
}

// Shelf-life estimates in days, keyed by keywords looked up in the item line.
// Used to guess an expiry date since bills never carry one.
var categoryShelfLife = map[string]int{
	"MILK":      7,
	"YOGURT":    10,
	"CHEESE":    14,
	"BREAD":     4,
	"MEAT":      3,
	"CHICKEN":   3,
	"FISH":      2,
	"EGG":       21,
	"RICE":      365,
	"PASTA":     365,
	"FLOUR":     180,
	"OIL":       365,
	"VEGETABLE": 7,
	"FRUIT":     7,
}

const defaultShelfLifeDays = 30

var (
	itemStartRegex = regexp.MustCompile(`^\d+\.\s+`)
	percentRegex   = regexp.MustCompile(`^\d+\.?\d*%$`)
	thousandsRegex = regexp.MustCompile(`,(\d{3})`)
)

// ParseBillText turns raw OCR output into grocery items. Bill lines are
// numbered ("1. Milk 2 3.50"); OCR often wraps a line, so continuation lines
// are folded into the current item before tokenizing. Lines that do not yield
// a parsable quantity and price are dropped.
func ParseBillText(text string, purchaseDate time.Time) []ParsedBillItem {
	// strip common OCR artifacts and normalize thousands separators
	text = strings.NewReplacer("|", "", "’", "").Replace(text)
	text = thousandsRegex.ReplaceAllString(text, ".$1")

	var items []ParsedBillItem
	var current string

	flush := func() {
		if current == "" {
			return
		}
		if item, ok := parseBillLine(current, purchaseDate); ok {
			items = append(items, item)
		}
		current = ""
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if itemStartRegex.MatchString(line) {
			flush()
			current = line
		} else if current != "" {
			current += " " + line
		}
	}
	flush()

	return items
}

// parseBillLine expects "<n>. <name tokens...> <quantity> <price>", tolerating
// a tax-percent column between name and quantity.
func parseBillLine(line string, purchaseDate time.Time) (ParsedBillItem, bool) {
	tokens := strings.Fields(line)
	if len(tokens) < 4 || !itemStartRegex.MatchString(tokens[0]+" ") {
		return ParsedBillItem{}, false
	}

	price, err := strconv.ParseFloat(tokens[len(tokens)-1], 64)
	if err != nil {
		return ParsedBillItem{}, false
	}
	quantity, err := strconv.ParseFloat(tokens[len(tokens)-2], 64)
	if err != nil || quantity <= 0 {
		return ParsedBillItem{}, false
	}

	var nameTokens []string
	for _, token := range tokens[1 : len(tokens)-2] {
		if percentRegex.MatchString(token) {
			continue
		}
		nameTokens = append(nameTokens, token)
	}
	if len(nameTokens) == 0 {
		return ParsedBillItem{}, false
	}

	return ParsedBillItem{
		Name:       strings.Join(nameTokens, " "),
		Quantity:   quantity,
		Unit:       "pcs",
		Price:      price,
		ExpiryDate: purchaseDate.AddDate(0, 0, shelfLifeDays(line)),
	}, true
}

func shelfLifeDays(line string) int {
	upper := strings.ToUpper(line)
	for keyword, days := range categoryShelfLife {
		if strings.Contains(upper, keyword) {
			return days
		}
	}
	return defaultShelfLifeDays
}
