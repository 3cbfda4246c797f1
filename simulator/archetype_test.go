package simulator

import (
	"testing"

	"dyno/model"
)

func TestResolveArchetype(t *testing.T) {
	cases := []struct {
		name         string
		fuel         model.FuelType
		induction    model.InductionType
		valvetrain   model.ValvetrainType
		displacement float64
		want         Archetype
	}{
		{"na pushrod", model.FuelGasoline, model.InductionNaturallyAspirated, model.ValvetrainPushrod, 5.7, ArchNAPushrod},
		{"na sohc", model.FuelGasoline, model.InductionNaturallyAspirated, model.ValvetrainSOHC, 2.0, ArchNAOhc},
		{"na dohc", model.FuelGasoline, model.InductionNaturallyAspirated, model.ValvetrainDOHC, 2.0, ArchNAOhc},
		{"turbo", model.FuelGasoline, model.InductionTurbocharged, model.ValvetrainDOHC, 2.0, ArchTurbo},
		{"supercharged", model.FuelGasoline, model.InductionSupercharged, model.ValvetrainPushrod, 6.2, ArchSupercharged},
		{"diesel light", model.FuelDiesel, model.InductionTurbocharged, model.ValvetrainSOHC, 6.7, ArchDieselLight},
		{"diesel heavy", model.FuelDiesel, model.InductionTurbocharged, model.ValvetrainSOHC, 12.8, ArchDieselHeavy},
		{"methanol na", model.FuelMethanol, model.InductionNaturallyAspirated, model.ValvetrainDOHC, 2.6, ArchMethanol},
		{"methanol turbo", model.FuelMethanol, model.InductionTurbocharged, model.ValvetrainDOHC, 2.6, ArchTurbo},
	}
	for _, c := range cases {
		cfg := &model.EngineConfig{Fuel: c.fuel, Induction: c.induction, Valvetrain: c.valvetrain}
		arch, _, err := resolveArchetype(cfg, c.displacement)
		if err != nil {
			t.Errorf("%s: %v", c.name, err)
			continue
		}
		if arch != c.want {
			t.Errorf("%s: got %q, want %q", c.name, arch, c.want)
		}
	}
}

func TestResolveArchetypeUnknown(t *testing.T) {
	cfg := &model.EngineConfig{Fuel: "hydrogen", Induction: model.InductionNaturallyAspirated}
	if _, _, err := resolveArchetype(cfg, 2.0); err == nil {
		t.Error("unknown fuel should not dispatch")
	}
	cfg = &model.EngineConfig{Fuel: model.FuelGasoline, Induction: "twincharged"}
	if _, _, err := resolveArchetype(cfg, 2.0); err == nil {
		t.Error("unknown induction should not dispatch")
	}
}

func TestNAPeakFracFollowsValvetrain(t *testing.T) {
	sohc := &model.EngineConfig{Fuel: model.FuelGasoline, Induction: model.InductionNaturallyAspirated, Valvetrain: model.ValvetrainSOHC}
	dohc := &model.EngineConfig{Fuel: model.FuelGasoline, Induction: model.InductionNaturallyAspirated, Valvetrain: model.ValvetrainDOHC}
	_, sSpec, _ := resolveArchetype(sohc, 2.0)
	_, dSpec, _ := resolveArchetype(dohc, 2.0)
	if !(dSpec.PeakRpmFrac > sSpec.PeakRpmFrac) {
		t.Errorf("DOHC peak frac %v should sit above SOHC %v", dSpec.PeakRpmFrac, sSpec.PeakRpmFrac)
	}
}

func TestTechFactor(t *testing.T) {
	pushrod := techFactor(model.ValvetrainPushrod, 2)
	dohc4v := techFactor(model.ValvetrainDOHC, 4)
	if pushrod >= 1 {
		t.Errorf("pushrod factor = %v, want < 1", pushrod)
	}
	if dohc4v <= 1 {
		t.Errorf("dohc 4v factor = %v, want > 1", dohc4v)
	}
}
