// Package quotepdf renders a priced quote as a one page PDF with a flat
// schematic of the route.
package quotepdf

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/ijalalfrz/charter-quote-service/internal/app/dto"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/geo"
	"github.com/ijalalfrz/charter-quote-service/internal/pkg/utils"
)

const (
	pageMargin   = 15.0
	diagramWidth = 180.0
	// canvas units to millimetres
	diagramScale = diagramWidth / CanvasWidth
)

type Renderer struct {
	airports *geo.Registry
	now      func() time.Time
}

func NewRenderer(airports *geo.Registry) *Renderer {
	return &Renderer{
		airports: airports,
		now:      time.Now,
	}
}

// Filename is the inline download name for a quote.
func Filename(quote dto.Quote) string {
	return fmt.Sprintf("quote_%s_%s.pdf", quote.Route.Depart, quote.Route.Arrive)
}

func (r *Renderer) Render(quote dto.Quote) ([]byte, error) {
	depart, ok := r.airports.Lookup(quote.Route.Depart)
	if !ok {
		return nil, fmt.Errorf("unknown depart airport %q", quote.Route.Depart)
	}

	arrive, ok := r.airports.Lookup(quote.Route.Arrive)
	if !ok {
		return nil, fmt.Errorf("unknown arrive airport %q", quote.Route.Arrive)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Charter Quote %s-%s", depart.ICAO, arrive.ICAO), false)
	pdf.SetCreationDate(r.now())
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	pdf.AddPage()

	// header
	pdf.SetFont("Helvetica", "B", 22)
	pdf.CellFormat(120, 12, "Charter Quote", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(60, 12, utils.FormatUSD(quote.SellPriceUSD), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, fmt.Sprintf("Route: %s -> %s  |  %d nm", depart.ICAO, arrive.ICAO, quote.Route.DistanceNM),
		"", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Aircraft: %s (%s)", quote.Aircraft.Model, quote.Aircraft.Category),
		"", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, fmt.Sprintf("Block time: %s", utils.ConvertHourToDuration(quote.Time.BlockHr)),
		"", 1, "L", false, 0, "")
	pdf.Ln(4)

	drawRoute(pdf, depart, arrive, pdf.GetY())
	pdf.SetY(pdf.GetY() + CanvasHeight*diagramScale + 6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, "Breakdown", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	for _, line := range []string{
		fmt.Sprintf("DOC: %s", utils.FormatUSD(quote.Costs.DOCTotal)),
		fmt.Sprintf("Airport Fees: %s", utils.FormatUSD(quote.Costs.AirportFees)),
		fmt.Sprintf("Cost Basis: %s", utils.FormatUSD(quote.Costs.CostBasis)),
		fmt.Sprintf("Margin: %g%%", quote.Assumptions.MarginPct),
	} {
		pdf.CellFormat(0, 6, "- "+line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render quote pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func drawRoute(pdf *fpdf.Fpdf, depart, arrive geo.Airport, top float64) {
	bounds := RouteBounds(depart.Lon, depart.Lat, arrive.Lon, arrive.Lat)
	from := bounds.Project(depart.Lon, depart.Lat)
	to := bounds.Project(arrive.Lon, arrive.Lat)

	toPage := func(p Point) (float64, float64) {
		return pageMargin + p.X*diagramScale, top + p.Y*diagramScale
	}

	pdf.SetFillColor(247, 250, 252)
	pdf.SetDrawColor(229, 231, 235)
	pdf.Rect(pageMargin, top, CanvasWidth*diagramScale, CanvasHeight*diagramScale, "FD")

	x1, y1 := toPage(from)
	x2, y2 := toPage(to)

	pdf.SetDrawColor(26, 115, 232)
	pdf.SetLineWidth(0.6)
	pdf.Line(x1, y1, x2, y2)

	pdf.SetFillColor(17, 17, 17)
	pdf.SetFont("Helvetica", "", 9)
	for _, end := range []struct {
		x, y float64
		code string
	}{{x1, y1, depart.ICAO}, {x2, y2, arrive.ICAO}} {
		pdf.Circle(end.x, end.y, 1.4, "F")
		pdf.Text(end.x+2, end.y-2, end.code)
	}
}
