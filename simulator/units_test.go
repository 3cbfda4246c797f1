package simulator

import (
	"math"
	"testing"
)

func TestDisplacementLiters(t *testing.T) {
	got := DisplacementLiters(4, 87, 99)
	if got < 2.34 || got > 2.38 {
		t.Errorf("DisplacementLiters(4, 87, 99) = %v, want ~2.36", got)
	}
}

func TestDisplacementScalesWithCylinders(t *testing.T) {
	four := DisplacementLiters(4, 87, 99)
	eight := DisplacementLiters(8, 87, 99)
	if math.Abs(eight-2*four) > 1e-9 {
		t.Errorf("doubling cylinders: got %v, want %v", eight, 2*four)
	}
}

func TestDisplacementFailsClosed(t *testing.T) {
	cases := []struct {
		cylinders int
		bore      float64
		stroke    float64
	}{
		{0, 87, 99},
		{4, 0, 99},
		{4, 87, 0},
		{-2, 87, 99},
	}
	for _, c := range cases {
		if got := DisplacementLiters(c.cylinders, c.bore, c.stroke); got != 0 {
			t.Errorf("DisplacementLiters(%d, %v, %v) = %v, want 0", c.cylinders, c.bore, c.stroke, got)
		}
	}
}

func TestLitersToCubicInches(t *testing.T) {
	if got := LitersToCubicInches(1); math.Abs(got-61.023744) > 1e-9 {
		t.Errorf("LitersToCubicInches(1) = %v", got)
	}
}

func TestMeanPistonSpeed(t *testing.T) {
	// 99mm stroke at 6000 rpm: 2 * 0.099 * 6000 / 60 = 19.8 m/s
	if got := MeanPistonSpeedMps(99, 6000); math.Abs(got-19.8) > 1e-9 {
		t.Errorf("MeanPistonSpeedMps(99, 6000) = %v, want 19.8", got)
	}
	if got := MeanPistonSpeedMps(0, 6000); got != 0 {
		t.Errorf("zero stroke: got %v, want 0", got)
	}
}

func TestBmepTorqueRoundTrip(t *testing.T) {
	// 150.8 is a rounded constant; the SI and psi forms agree within ~0.1%.
	disp := 2.36
	torque := TorqueFromBmep(11.5, disp)
	if torque <= 0 {
		t.Fatalf("TorqueFromBmep = %v", torque)
	}
	psi := BmepFromTorque(torque, disp)
	wantPsi := 11.5 * 14.503774
	if math.Abs(psi-wantPsi)/wantPsi > 0.005 {
		t.Errorf("round trip: got %v psi, want ~%v", psi, wantPsi)
	}
}

func TestBmepGuards(t *testing.T) {
	if got := BmepFromTorque(100, 0); got != 0 {
		t.Errorf("zero displacement: got %v, want 0", got)
	}
	if got := TorqueFromBmep(0, 2); got != 0 {
		t.Errorf("zero bmep: got %v, want 0", got)
	}
}

func TestAirflowCfm(t *testing.T) {
	// 2L at 6000 rpm, 100% VE: 122.05 CID * 6000 / 3456 = 211.9 cfm
	got := AirflowCfm(2, 6000, 1)
	if math.Abs(got-211.89) > 0.1 {
		t.Errorf("AirflowCfm(2, 6000, 1) = %v, want ~211.9", got)
	}
	if AirflowCfm(0, 6000, 1) != 0 || AirflowCfm(2, 0, 1) != 0 || AirflowCfm(2, 6000, 0) != 0 {
		t.Error("degenerate inputs must return 0")
	}
}

func TestHorsepower(t *testing.T) {
	// At 5252 rpm horsepower equals torque.
	if got := Horsepower(300, 5252); math.Abs(got-300) > 1e-9 {
		t.Errorf("Horsepower(300, 5252) = %v, want 300", got)
	}
}

func TestPressureRatio(t *testing.T) {
	if got := PressureRatio(14.7); math.Abs(got-2) > 1e-9 {
		t.Errorf("PressureRatio(14.7) = %v, want 2", got)
	}
	if got := PressureRatio(0); got != 1 {
		t.Errorf("PressureRatio(0) = %v, want 1", got)
	}
}
