// Package report renders aggregate statistics into fixed-width bordered text
// documents and drives their generation and delivery.
package report

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"farmtrack/internal/domain/models"
	"farmtrack/internal/service/aggregate"
)

// Kind identifies one of the four report documents.
type Kind string

const (
	KindSales     Kind = "sales"
	KindCrop      Kind = "crop"
	KindLivestock Kind = "livestock"
	KindFinancial Kind = "financial"
)

// ErrUnknownKind indicates an unsupported report kind.
var ErrUnknownKind = errors.New("unknown report kind")

// Valid reports whether the kind is one of the four supported documents.
func (k Kind) Valid() bool {
	switch k {
	case KindSales, KindCrop, KindLivestock, KindFinancial:
		return true
	}
	return false
}

// Filename is the artifact name the report is delivered under.
func (k Kind) Filename() string {
	switch k {
	case KindSales:
		return "sales-performance-report.txt"
	case KindCrop:
		return "crop-analytics-report.txt"
	case KindLivestock:
		return "livestock-health-report.txt"
	case KindFinancial:
		return "financial-summary-report.txt"
	}
	return ""
}

const (
	innerWidth = 50
	dateLayout = "02 Jan 2006"
)

func currency(v float64) string {
	return fmt.Sprintf("N$ %.2f", v)
}

// doc accumulates a bordered fixed-width text document.
type doc struct {
	b strings.Builder
}

func (d *doc) top()    { d.b.WriteString("╔" + strings.Repeat("═", innerWidth) + "╗\n") }
func (d *doc) sep()    { d.b.WriteString("╠" + strings.Repeat("═", innerWidth) + "╣\n") }
func (d *doc) bottom() { d.b.WriteString("╚" + strings.Repeat("═", innerWidth) + "╝\n") }
func (d *doc) blank()  { d.line("") }

// line renders one bordered row, left-padded by two spaces and truncated to
// the inner width.
func (d *doc) line(s string) {
	content := "  " + s
	if len([]rune(content)) > innerWidth {
		content = string([]rune(content)[:innerWidth])
	}
	pad := innerWidth - len([]rune(content))
	d.b.WriteString("║" + content + strings.Repeat(" ", pad) + "║\n")
}

func (d *doc) center(s string) {
	if len([]rune(s)) > innerWidth {
		s = string([]rune(s)[:innerWidth])
	}
	left := (innerWidth - len([]rune(s))) / 2
	right := innerWidth - len([]rune(s)) - left
	d.b.WriteString("║" + strings.Repeat(" ", left) + s + strings.Repeat(" ", right) + "║\n")
}

func (d *doc) header(title, farmName string, asOf time.Time) {
	d.top()
	d.center("FARM PRODUCE TRACKER")
	d.center(title)
	d.sep()
	d.blank()
	d.line("Report Generated: " + asOf.Format(dateLayout))
	d.line("Farmer: " + farmName)
}

func (d *doc) section(title string) {
	d.blank()
	d.sep()
	d.center(title)
	d.sep()
	d.blank()
}

func (d *doc) list(items []string) {
	for _, item := range items {
		d.line("- " + item)
	}
}

func (d *doc) footer(quote string) {
	d.blank()
	d.bottom()
	d.b.WriteString("\n\"" + quote + "\"\n")
}

// Format renders the report of the given kind over the snapshot, evaluated as
// of the given instant. farmName identifies the report owner in the header.
func Format(kind Kind, s aggregate.Snapshot, farmName string, asOf time.Time) (string, error) {
	switch kind {
	case KindSales:
		return formatSales(s, farmName, asOf), nil
	case KindCrop:
		return formatCrop(s, farmName, asOf), nil
	case KindLivestock:
		return formatLivestock(s, farmName, asOf), nil
	case KindFinancial:
		return formatFinancial(s, farmName, asOf), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, kind)
}

func formatSales(s aggregate.Snapshot, farmName string, asOf time.Time) string {
	total := aggregate.SalesTotal(s.Sales)
	monthly := aggregate.SalesTotal(aggregate.SalesInMonth(s.Sales, asOf.Month(), asOf.Year()))

	var d doc
	d.header("SALES PERFORMANCE REPORT", farmName, asOf)

	d.section("FINANCIAL SUMMARY")
	d.line(fmt.Sprintf("Total Revenue:       %s", currency(total)))
	d.line(fmt.Sprintf("This Month:          %s", currency(monthly)))
	d.line(fmt.Sprintf("Total Transactions:  %d", len(s.Sales)))

	d.section("TOP PERFORMERS")
	for i, p := range aggregate.TopProducts(s.Sales, 3) {
		d.line(fmt.Sprintf("%d. %-16s %s", i+1, p.Name, currency(p.Amount)))
	}

	d.section("BUYER NETWORK")
	for _, b := range aggregate.TopBuyers(s.Sales, 3) {
		d.line(fmt.Sprintf("%-20s %d purchases", b.Name, b.Count))
	}

	d.section("RECOMMENDATIONS")
	d.list(aggregate.SalesRecommendations(s.Sales))

	d.footer("Your success grows from the seeds you plant today")
	return d.b.String()
}

func formatCrop(s aggregate.Snapshot, farmName string, asOf time.Time) string {
	var d doc
	d.header("CROP ANALYTICS REPORT", farmName, asOf)
	d.line(fmt.Sprintf("Total Crop Types: %d", len(s.Crops)))

	d.section("CROP OVERVIEW")
	d.line(fmt.Sprintf("Total Quantity:    %.1f kg", aggregate.TotalCropQuantity(s.Crops)))
	d.line(fmt.Sprintf("Ready to Harvest:  %d crops", aggregate.CropStatusCount(s.Crops, models.CropReady)))
	d.line(fmt.Sprintf("Still Growing:     %d crops", aggregate.CropStatusCount(s.Crops, models.CropGrowing)))

	d.section("CROP BREAKDOWN")
	for _, c := range s.Crops {
		d.line(fmt.Sprintf("%-14s %8.1fkg %s", c.Name, c.Quantity, c.Status))
	}

	d.section("ACTION PLAN")
	d.list(aggregate.CropRecommendations(s.Crops))

	d.footer("Every harvest begins with a single seed planted with care")
	return d.b.String()
}

func formatLivestock(s aggregate.Snapshot, farmName string, asOf time.Time) string {
	healthy := aggregate.HealthyHerds(s.Livestock)

	var d doc
	d.header("LIVESTOCK HEALTH REPORT", farmName, asOf)
	d.line(fmt.Sprintf("Total Animals: %d", aggregate.TotalAnimals(s.Livestock)))

	d.section("HEALTH SUMMARY")
	d.line(fmt.Sprintf("Healthy Herds: %d/%d", healthy, len(s.Livestock)))
	d.line(fmt.Sprintf("Animal Types:  %d", len(s.Livestock)))
	d.line(fmt.Sprintf("Health Score:  %d%%", aggregate.HealthScore(s.Livestock)))

	d.section("HERD BREAKDOWN")
	for _, l := range s.Livestock {
		d.line(fmt.Sprintf("%-10s %4d %s", l.Type, l.Quantity, l.HealthStatus))
	}

	d.section("HEALTH TIPS")
	d.list(aggregate.LivestockRecommendations(s.Livestock))

	d.footer("Healthy animals are the heartbeat of a thriving farm")
	return d.b.String()
}

func formatFinancial(s aggregate.Snapshot, farmName string, asOf time.Time) string {
	total := aggregate.SalesTotal(s.Sales)
	monthly := aggregate.SalesTotal(aggregate.SalesInMonth(s.Sales, asOf.Month(), asOf.Year()))

	var d doc
	d.header("FINANCIAL SUMMARY REPORT", farmName, asOf)
	d.line("Business Health: " + aggregate.BusinessHealthTier(total))

	d.section("REVENUE ANALYSIS")
	d.line(fmt.Sprintf("Total Revenue:      %s", currency(total)))
	d.line(fmt.Sprintf("Monthly Average:    %s", currency(aggregate.AverageSaleAmount(s.Sales))))
	d.line(fmt.Sprintf("This Month:         %s", currency(monthly)))

	d.section("ASSETS OVERVIEW")
	d.line(fmt.Sprintf("Crop Value:         %s", currency(aggregate.CropValue(s.Crops))))
	d.line(fmt.Sprintf("Livestock Value:    %s", currency(aggregate.LivestockValue(s.Livestock))))
	d.line(fmt.Sprintf("Total Assets:       %s", currency(aggregate.InventoryValue(s))))

	d.section("GROWTH STRATEGY")
	d.list(aggregate.FinancialRecommendations(total))

	d.footer("Your farm's financial growth is cultivated one wise decision at a time")
	return d.b.String()
}
