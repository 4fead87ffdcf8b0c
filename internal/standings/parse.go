package standings

import (
	"errors"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/dmather/lhl-data/internal/htmltext"
)

// Structural failures. A standings page with the wrong shape is unusable:
// no partial result is meaningful, so these propagate to the caller.
var (
	ErrNoTable  = errors.New("no standings table found")
	ErrNoHeader = errors.New("standings table is missing a header row")
	ErrNoRows   = errors.New("no standings rows were parsed")
)

// columnAliases maps normalized header text to the closed output schema.
// Headers not listed here are ignored.
var columnAliases = map[string]string{
	"team": "team", "team_name": "team",
	"gp": "gp", "games_played": "gp", "games": "gp",
	"w": "w", "wins": "w",
	"l": "l", "losses": "l",
	"t": "t", "ties": "t",
	"pts": "pts", "points": "pts",
	"w_pct": "w_pct", "win_pct": "w_pct",
	"gf": "gf", "ga": "ga",
	"diff": "diff", "gd": "diff",
	"gf_pct": "gf_pct",
	"l10":    "l10", "strk": "strk",
}

var nonAlnumRE = regexp.MustCompile(`[^a-z0-9]+`)

// normalizeHeader canonicalizes a header cell: lowercase, "%" becomes "pct",
// runs of non-alphanumerics collapse to single underscores, underscores
// trimmed from both ends. "Win %" -> "win_pct".
func normalizeHeader(header string) string {
	text := strings.ToLower(strings.TrimSpace(header))
	text = strings.ReplaceAll(text, "%", "pct")
	text = nonAlnumRE.ReplaceAllString(text, "_")
	return strings.Trim(text, "_")
}

// Parse extracts standings rows from a page. It reads the first table,
// takes headers from the thead row (or the table's first row when there is
// no thead), maps them through the alias table, and pairs each body row's
// cells positionally with the headers. Rows whose team column is empty are
// dropped. Returns a structural error when no table, no header, or zero
// valid rows are found.
func Parse(r io.Reader) ([]Row, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	table := doc.Find("table").First()
	if table.Length() == 0 {
		return nil, ErrNoTable
	}

	headerRow := table.Find("thead tr").First()
	headerInBody := false
	if headerRow.Length() == 0 {
		headerRow = table.Find("tr").First()
		headerInBody = true
	}
	if headerRow.Length() == 0 {
		return nil, ErrNoHeader
	}

	var headers []string
	headerRow.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, normalizeHeader(cell.Text()))
	})
	if len(headers) == 0 {
		return nil, ErrNoHeader
	}

	body := table.Find("tbody")
	if body.Length() == 0 {
		body = table
	}

	scrapedAt := time.Now().UTC().Format(time.RFC3339)
	var rows []Row

	body.Find("tr").Each(func(i int, tr *goquery.Selection) {
		if headerInBody && i == 0 {
			return
		}

		var cells []string
		tr.Find("th,td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, htmltext.Collapse(cell.Text()))
		})
		if len(cells) == 0 {
			return
		}

		row := Row{ScrapedAt: scrapedAt}
		for idx, text := range cells {
			if idx >= len(headers) {
				break
			}
			setColumn(&row, columnAliases[headers[idx]], text)
		}
		if row.Team == "" {
			return
		}
		rows = append(rows, row)
	})

	if len(rows) == 0 {
		return nil, ErrNoRows
	}
	return rows, nil
}

func setColumn(row *Row, column, value string) {
	switch column {
	case "team":
		row.Team = value
	case "gp":
		row.GP = value
	case "w":
		row.W = value
	case "l":
		row.L = value
	case "t":
		row.T = value
	case "pts":
		row.Pts = value
	case "w_pct":
		row.WPct = value
	case "gf":
		row.GF = value
	case "ga":
		row.GA = value
	case "diff":
		row.Diff = value
	case "gf_pct":
		row.GFPct = value
	case "l10":
		row.L10 = value
	case "strk":
		row.Strk = value
	}
}
