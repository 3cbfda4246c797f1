package model

// Message envelope between the chart front end and the simulation service.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

type FuelType string

const (
	FuelGasoline FuelType = "gasoline"
	FuelDiesel   FuelType = "diesel"
	FuelMethanol FuelType = "methanol"
)

type InductionType string

const (
	InductionNaturallyAspirated InductionType = "naturally_aspirated"
	InductionTurbocharged       InductionType = "turbocharged"
	InductionSupercharged       InductionType = "supercharged"
)

type ValvetrainType string

const (
	ValvetrainPushrod ValvetrainType = "pushrod"
	ValvetrainSOHC    ValvetrainType = "sohc"
	ValvetrainDOHC    ValvetrainType = "dohc"
)

// EngineConfig is one dyno request: geometry, archetype selection and the
// tuning knobs. Zero-valued knobs fall back to the configured defaults.
type EngineConfig struct {
	Cylinders         int            `json:"cylinders"`
	BoreMm            float64        `json:"bore_mm"`
	StrokeMm          float64        `json:"stroke_mm"`
	CompressionRatio  float64        `json:"compression_ratio"`
	RedlineRpm        int            `json:"redline_rpm"`
	RpmStep           int            `json:"rpm_step"`
	Fuel              FuelType       `json:"fuel"`
	Induction         InductionType  `json:"induction"`
	BoostPsi          float64        `json:"boost_psi"`
	Valvetrain        ValvetrainType `json:"valvetrain"`
	ValvesPerCylinder int            `json:"valves_per_cylinder"`

	PeakVEPercent              float64 `json:"peak_ve_percent"`
	SizePenaltyPercentPerLiter float64 `json:"size_penalty_percent_per_liter"`
	PistonSpeedLimitMps        float64 `json:"piston_speed_limit_mps"`
}

// RpmPoint is one sampled point of the output curve.
type RpmPoint struct {
	Rpm            int     `json:"rpm"`
	TorqueLbFt     float64 `json:"torque_lb_ft"`
	HorsepowerHp   float64 `json:"horsepower_hp"`
	EffectiveVE    float64 `json:"effective_ve"`
	PistonSpeedMps float64 `json:"piston_speed_mps"`
	BmepPsi        float64 `json:"bmep_psi"`
	AirflowCfm     float64 `json:"airflow_cfm"`
	FuelLbPerHr    float64 `json:"fuel_lb_per_hr"`
	FuelGalPerHr   float64 `json:"fuel_gal_per_hr"`
}

type Summary struct {
	PeakHp               float64 `json:"peak_hp"`
	PeakHpRpm            int     `json:"peak_hp_rpm"`
	PeakTorqueLbFt       float64 `json:"peak_torque_lb_ft"`
	PeakTorqueRpm        int     `json:"peak_torque_rpm"`
	HpPerLiter           float64 `json:"hp_per_liter"`
	BmepAtPeakHpPsi      float64 `json:"bmep_at_peak_hp_psi"`
	AirflowAtPeakHpCfm   float64 `json:"airflow_at_peak_hp_cfm"`
	FuelAtPeakHpLbPerHr  float64 `json:"fuel_at_peak_hp_lb_per_hr"`
	FuelAtPeakHpGalPerHr float64 `json:"fuel_at_peak_hp_gal_per_hr"`
}

// SimulationResult is the full ordered series plus the resolved run constants.
// Points ascend by exactly the configured rpm step.
type SimulationResult struct {
	Points             []RpmPoint `json:"points"`
	DisplacementLiters float64    `json:"displacement_liters"`
	FuelDensityLbGal   float64    `json:"fuel_density_lb_gal"`
	EffectiveBoostPsi  float64    `json:"effective_boost_psi"`
	Summary            Summary    `json:"summary"`
	Warnings           []string   `json:"warnings,omitempty"`
}
