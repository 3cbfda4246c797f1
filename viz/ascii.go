package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"

	"dyno/model"
)

// Sketch renders the torque and horsepower curves of a result series as two
// terminal plots. Meant for the demo mode and quick eyeballing; the real
// chart lives on the far side of the websocket.
func Sketch(result *model.SimulationResult) string {
	if result == nil || len(result.Points) == 0 {
		return "(empty result)"
	}
	torque := make([]float64, len(result.Points))
	hp := make([]float64, len(result.Points))
	for i, p := range result.Points {
		torque[i] = p.TorqueLbFt
		hp[i] = p.HorsepowerHp
	}
	first := result.Points[0].Rpm
	last := result.Points[len(result.Points)-1].Rpm

	var b strings.Builder
	b.WriteString(asciigraph.Plot(torque,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("torque lb-ft, %d-%d rpm", first, last))))
	b.WriteString("\n\n")
	b.WriteString(asciigraph.Plot(hp,
		asciigraph.Height(12),
		asciigraph.Width(72),
		asciigraph.Caption(fmt.Sprintf("horsepower, %d-%d rpm", first, last))))
	return b.String()
}
