package main

import (
	"flag"
	"fmt"
	"net/http"

	"github.com/gorilla/websocket"
	log "github.com/sirupsen/logrus"

	"dyno/model"
	"dyno/server"
	"dyno/simulator"
	"dyno/viz"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

func main() {
	addr := flag.String("addr", simulator.Cfg().Addr, "listen address")
	demo := flag.Bool("demo", false, "run a sample simulation, print the curves and exit")
	flag.Parse()

	if *demo {
		runDemo()
		return
	}

	upgrader.CheckOrigin = func(r *http.Request) bool {
		return true
	}
	s := server.NewServer(*addr, upgrader)
	s.Serve()
}

func runDemo() {
	cfg := model.EngineConfig{
		Cylinders:         4,
		BoreMm:            87,
		StrokeMm:          99,
		CompressionRatio:  9.5,
		RedlineRpm:        7500,
		RpmStep:           250,
		Fuel:              model.FuelGasoline,
		Induction:         model.InductionTurbocharged,
		BoostPsi:          14,
		Valvetrain:        model.ValvetrainDOHC,
		ValvesPerCylinder: 4,
	}
	result, err := simulator.NewSimulator().Run(&cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(viz.Sketch(result))
	fmt.Printf("%.2f L, %.1f psi effective boost\n", result.DisplacementLiters, result.EffectiveBoostPsi)
	fmt.Printf("peak %.0f hp @ %d rpm, %.0f lb-ft @ %d rpm, %.1f hp/L\n",
		result.Summary.PeakHp, result.Summary.PeakHpRpm,
		result.Summary.PeakTorqueLbFt, result.Summary.PeakTorqueRpm,
		result.Summary.HpPerLiter)
}
