package fact

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"

	"github.com/de-tools/fact-atlas/pkg/models/domain"
	"github.com/de-tools/fact-atlas/pkg/services/locale"
)

// ReadableValue renders the fact's value for the inspector. Malformed
// values and explicit nils take priority over every other rendering branch.
func (f *Fact) ReadableValue() string {
	switch {
	case f.IsInvalidIXValue():
		return f.strings.Resolve(locale.KeyInvalidValue, "Invalid value")
	case f.IsNil():
		return f.strings.Resolve(locale.KeyNilValue, "nil")
	case f.IsNumeric():
		return f.readableNumericValue()
	case f.IsEnumeration():
		return f.readableEnumerationValue()
	case f.IsEscaped():
		return flattenMarkup(f.Value())
	default:
		return f.Value()
	}
}

func (f *Fact) readableNumericValue() string {
	v, err := strconv.ParseFloat(f.Value(), 64)
	if err != nil {
		return f.Value()
	}
	formatted := f.strings.FormatNumber(v, f.Decimals())
	u, ok := f.Unit()
	if !ok {
		return formatted
	}
	if u.IsMonetary() {
		// Currency symbol goes before the magnitude.
		return f.strings.CurrencySymbol(u.CurrencyCode()) + " " + formatted
	}
	return formatted + " " + u.Numerator.LocalName
}

// Enumeration values are a space-separated member list; members render as
// their standard labels in listed order.
func (f *Fact) readableEnumerationValue() string {
	members := strings.Fields(f.Value())
	labels := make([]string, 0, len(members))
	for _, m := range members {
		labels = append(labels, f.report.LabelOrName(m, domain.LabelRoleStandard))
	}
	return strings.Join(labels, ", ")
}

// ReadableAccuracy renders the decimals indicator: a fixed marker for
// non-numeric or nil facts, infinite/unspecified markers for the exact and
// null states, otherwise the decimals number with its locale name. Monetary
// facts rounded to hundredths prefer the currency's own name for cents.
func (f *Fact) ReadableAccuracy() string {
	if !f.IsNumeric() || f.IsNil() {
		return f.strings.Resolve(locale.KeyNotApplicable, "n/a")
	}
	d := f.Decimals()
	if d.IsExact() {
		return f.strings.Resolve(locale.KeyAccuracyInfinite, "Infinite")
	}
	if d.IsUnspecified() {
		return f.strings.Resolve(locale.KeyUnspecified, "Unspecified")
	}
	n, _ := d.Value()

	name := ""
	if n == 2 {
		if u, ok := f.Unit(); ok && u.IsMonetary() {
			name = f.strings.Resolve(locale.KeyCentsPrefix+u.CurrencyCode(), "")
		}
	}
	if name == "" {
		name = f.strings.Resolve(locale.KeyAccuracyPrefix+strconv.Itoa(n), "")
	}
	if name == "" {
		return strconv.Itoa(n)
	}
	return fmt.Sprintf("%d (%s)", n, name)
}

// Block-level elements get a boundary space so flattening cannot run two
// paragraphs' words together.
var blockElements = map[string]bool{
	"address": true, "article": true, "blockquote": true, "br": true,
	"div": true, "h1": true, "h2": true, "h3": true, "h4": true,
	"h5": true, "h6": true, "hr": true, "li": true, "ol": true,
	"p": true, "section": true, "table": true, "td": true, "th": true,
	"tr": true, "ul": true,
}

var whitespaceRuns = regexp.MustCompile(`[\s\x{00a0}]+`)

func collapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRuns.ReplaceAllString(s, " "))
}

// flattenMarkup reduces escaped HTML to plain text: block elements are
// padded with a boundary space, then whitespace runs (non-breaking space
// included) collapse to a single space and the result is trimmed.
func flattenMarkup(markup string) string {
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return collapseWhitespace(markup)
	}
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			if blockElements[n.Data] {
				b.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && blockElements[n.Data] {
			b.WriteByte(' ')
		}
	}
	walk(doc)
	return collapseWhitespace(b.String())
}
