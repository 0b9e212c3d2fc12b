package services

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// PDFData carries everything the travel brief renders. It mirrors the plan
// response so export works without any stored state.
type PDFData struct {
	Destination string
	Origin      string
	Days        int
	Month       string
	Weather     *Weather
	Narrative   string
	Hotels      []Hotel
	Flights     []Flight
}

// GeneratePDFBytes renders a trip plan to a PDF and returns raw bytes
// (no filesystem needed).
func GeneratePDFBytes(data PDFData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.AddPage()

	// ── Header Bar ───────────────────────────────────────────
	pdf.SetFillColor(13, 24, 37)
	pdf.Rect(0, 0, 210, 28, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.SetXY(20, 8)
	pdf.CellFormat(100, 10, "TripAtlas", "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(212, 168, 67)
	pdf.SetXY(20, 18)
	pdf.CellFormat(170, 6, "AI-Powered Travel Brief", "", 1, "L", false, 0, "")

	pdf.SetY(35)
	pdf.SetTextColor(0, 0, 0)

	// ── Section Helpers ──────────────────────────────────────
	sectionHeader := func(title string) {
		pdf.SetFillColor(13, 24, 37)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(170, 8, "  "+title, "", 1, "L", true, 0, "")
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(2)
	}

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(100, 100, 100)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetTextColor(20, 20, 20)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(115, 7, value, "", 1, "L", false, 0, "")
	}

	text := func(s string) {
		pdf.SetFont("Helvetica", "", 10)
		pdf.SetTextColor(40, 40, 40)
		pdf.MultiCell(170, 5, s, "", "L", false)
	}

	// ── Trip Overview ─────────────────────────────────────────
	sectionHeader("Trip Overview")
	row("Destination", data.Destination)
	row("Departure City", data.Origin)
	row("Duration", fmt.Sprintf("%d days in %s", data.Days, data.Month))
	row("Generated", time.Now().Format("02 Jan 2006, 15:04 UTC"))
	pdf.Ln(4)

	// ── Weather ───────────────────────────────────────────────
	sectionHeader("Current Weather")
	if data.Weather != nil {
		row("Temperature", fmt.Sprintf("%.1f C", data.Weather.TemperatureC))
		row("Conditions", data.Weather.Description)
	} else {
		text("Weather data not available.")
	}
	pdf.Ln(4)

	// ── Narrative ─────────────────────────────────────────────
	if data.Narrative != "" {
		sectionHeader("Trip Plan")
		text(data.Narrative)
		pdf.Ln(4)
	}

	// ── Hotels ────────────────────────────────────────────────
	sectionHeader("Hotel Options")
	if len(data.Hotels) == 0 {
		text("No hotel data available. Please check hotel booking websites directly.")
	}
	for _, h := range data.Hotels {
		row("Hotel", h.Name)
		row("Address", fmt.Sprintf("%s, %s, %s", h.Address.Street, h.Address.City, h.Address.Country))
		if h.Stars != "N/A" {
			row("Rating", h.Stars+" stars")
		}
		if h.Phone != "Phone not available" {
			row("Phone", h.Phone)
		}
		pdf.Ln(2)
	}
	pdf.Ln(2)

	// ── Flights ───────────────────────────────────────────────
	sectionHeader("Flight Options")
	if len(data.Flights) == 0 {
		text("No real-time flight data available. Please check airline websites directly.")
	}
	for _, f := range data.Flights {
		row("Flight", fmt.Sprintf("%s - Flight %s", f.Airline, f.FlightNumber))
		row("Departure", f.Departure)
		row("Arrival", f.Arrival)
		pdf.Ln(2)
	}

	// ── Footer ────────────────────────────────────────────────
	pdf.SetY(-22)
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.3)
	pdf.Line(20, pdf.GetY(), 190, pdf.GetY())
	pdf.SetFont("Helvetica", "I", 8)
	pdf.SetTextColor(150, 150, 150)
	pdf.CellFormat(0, 8,
		"Generated by TripAtlas · Not a booking confirmation · Verify details with providers",
		"", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("PDF output failed: %w", err)
	}
	return buf.Bytes(), nil
}
