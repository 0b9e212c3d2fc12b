package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripatlas/logger"
	"tripatlas/services"
)

// ExportHandler renders a previously returned plan payload to a PDF travel
// brief. The client posts the plan back, so nothing is stored server-side.
func ExportHandler(c *gin.Context) {
	var plan PlanResponse
	if err := c.ShouldBindJSON(&plan); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if plan.Destination == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing destination"})
		return
	}

	data := services.PDFData{
		Destination: plan.Destination,
		Origin:      plan.Origin,
		Days:        plan.Days,
		Month:       plan.Month,
		Narrative:   plan.Narrative,
		Hotels:      plan.Hotels.Hotels,
		Flights:     plan.Flights.Flights,
	}
	if plan.Weather.Available && plan.Weather.TemperatureC != nil {
		data.Weather = &services.Weather{
			TemperatureC: *plan.Weather.TemperatureC,
			Description:  plan.Weather.Description,
		}
	}

	pdfBytes, err := services.GeneratePDFBytes(data)
	if err != nil {
		logger.ErrorLogger.Error("PDF generation failed: ", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	c.Header("Content-Disposition", "attachment; filename=tripatlas-travel-brief.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
