package classify

import "github.com/tsawler/tablature/model"

// Vocabulary holds the literal strings the classifier recognizes. It is
// plain configuration data: callers may supply their own lists to extend
// or localize recognition without touching the classification rules.
type Vocabulary struct {
	// Variants maps each column semantic to the literal header strings
	// that name it (lowercase).
	Variants map[model.ColumnSemantic][]string

	// SummaryKeywords mark rows such as totals that close an item and
	// pass through the row merger verbatim.
	SummaryKeywords []string

	// NonTableKeywords flag rows of surrounding prose (cover pages,
	// terms, footers) that are filtered before header detection.
	NonTableKeywords []string
}

// DefaultVocabulary returns the built-in recognition lists. Each call
// returns a fresh copy, so callers can modify the result freely.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Variants: map[model.ColumnSemantic][]string{
			model.SemanticSerial: {
				"s.no", "s.no.", "sl.no", "sl.no.", "serial", "serial no", "serial number",
				"sn", "si.no", "si.no.", "s no", "sl no", "serial no.", "s#", "sl#",
				"item no", "item number", "#", "sr.no", "sr.no.", "sr no", "sr. no.",
				"item #", "no", "no.", "number",
			},
			model.SemanticLocation: {
				"location", "room", "area", "space", "zone", "section", "place",
				"position", "room name", "area name", "room/area", "location/room",
			},
			model.SemanticImage: {
				"image", "images", "photo", "photos", "picture", "pictures",
				"reference", "references", "ref", "img", "image reference",
				"indicative image", "indicative", "image ref", "photo reference",
				"picture reference", "img reference", "visual reference",
				"product image", "item image", "pic", "pics", "photograph",
				"thumbnail", "illustration", "figure", "diagram", "visual",
			},
			model.SemanticDescription: {
				"description", "item description", "specification", "specifications",
				"item details", "details", "item detail", "item specification",
				"product description", "product details", "spec", "specs",
				"item name", "name", "product name", "item", "product", "article",
				"particulars", "item specifications", "product spec",
			},
			model.SemanticQuantity: {
				"qty", "quantity", "quantities", "qty.", "qty:", "qty :",
				"quantity.", "quantities.", "qty (nos)", "qty (units)", "nos",
				"number of units", "quantity required", "required qty",
				"no. of units", "no of units", "units required",
			},
			model.SemanticUnit: {
				"unit", "units", "uom", "unit of measure", "unit of measurement",
				"uom.", "unit.", "units.", "measurement unit", "measuring unit",
				"measure", "unit type",
			},
			model.SemanticRate: {
				"rate", "unit rate", "unit price", "price", "cost", "value",
				"amount per unit", "rate per unit", "unit cost", "unit value",
				"price per unit", "cost per unit", "rate/unit", "price/unit",
				"cost/unit", "unit amount", "per unit", "per piece", "each",
				"rate each",
			},
			model.SemanticAmount: {
				"amount", "total", "total value", "total amount", "sum", "subtotal",
				"line total", "row total", "item total", "total price", "total cost",
				"amount total", "grand total", "net amount", "line amount",
				"item amount", "cost total",
			},
			model.SemanticSupplier: {
				"supplier", "vendor", "manufacturer", "brand", "make", "origin",
				"source", "from", "supplied by", "manufactured by", "maker",
				"provider",
			},
			model.SemanticActions: {
				"actions", "action", "edit", "delete", "modify", "remove",
				"manage", "control",
			},
		},
		SummaryKeywords: []string{
			"total", "subtotal", "vat", "grand total", "balance", "net total",
			"final total",
		},
		NonTableKeywords: []string{
			"date:", "ref:", "reference:", "ref no:", "ref no.", "ref number",
			"cr no.:", "vat:", "address:", "mobile:", "mob:", "p.o box",
			"postal code", "cover page", "terms & conditions",
			"terms and conditions", "general conditions", "project:",
			"with reference", "inquiry", "kindly find", "for any further",
			"clarifications", "we hope", "our proposal", "looking forward",
			"prices quoted", "inclusive of", "valid for", "days only",
			"based on the",
		},
	}
}
