package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sublab/internal/lab"
	"github.com/san-kum/sublab/internal/sim"
)

// CurveSVG draws the temperature curve as a polyline, with a dot for every
// recorded observation. It returns "" for fewer than two readings.
func CurveSVG(curve []sim.Reading, observations []lab.Observation, width, height int, strokeColor string) string {
	if len(curve) < 2 {
		return ""
	}

	minX, maxX := float64(curve[0].Minute), float64(curve[0].Minute)
	minY, maxY := curve[0].Temperature, curve[0].Temperature
	for _, r := range curve {
		x := float64(r.Minute)
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if r.Temperature < minY {
			minY = r.Temperature
		}
		if r.Temperature > maxY {
			maxY = r.Temperature
		}
	}

	// Add padding
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minX -= rangeX * 0.1
	maxX += rangeX * 0.1
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeX = maxX - minX
	rangeY = maxY - minY

	project := func(minute int, temp float64) (float64, float64) {
		x := (float64(minute) - minX) / rangeX * float64(width)
		y := float64(height) - (temp-minY)/rangeY*float64(height)
		return x, y
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, r := range curve {
		x, y := project(r.Minute, r.Temperature)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	if len(observations) > 0 {
		sb.WriteString(`<g fill="#ffffff">` + "\n")
		for _, o := range observations {
			x, y := project(o.Time, float64(o.Temperature))
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3"><title>%d min: %d°C</title></circle>`+"\n", x, y, o.Time, o.Temperature))
		}
		sb.WriteString("</g>\n")
	}

	sb.WriteString("</svg>")
	return sb.String()
}
