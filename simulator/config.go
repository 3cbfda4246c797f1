package simulator

import (
	log "github.com/sirupsen/logrus"
	"gopkg.in/ini.v1"
)

var simCfg Config

// Config holds the deployment tunables of the simulator: grid limits, the
// reference VE that user VE percentages are normalized against, and the
// defaults for tuning knobs the request leaves at zero.
type Config struct {
	RpmStart       int
	RedlineFloor   int
	RedlineCeiling int

	ReferenceVEPercent         float64
	DefaultPistonSpeedLimitMps float64
	DefaultSizePenaltyPerLiter float64

	Addr string
}

func init() {
	file, err := ini.Load("conf/config.ini")
	if err != nil {
		log.Warn("config file not readable, using defaults: ", err)
		file = ini.Empty()
	}
	loadCfg(file)
}

func loadCfg(file *ini.File) {
	simCfg = Config{
		RpmStart:       file.Section("simulator").Key("RpmStart").MustInt(1000),
		RedlineFloor:   file.Section("simulator").Key("RedlineFloor").MustInt(3000),
		RedlineCeiling: file.Section("simulator").Key("RedlineCeiling").MustInt(15000),

		ReferenceVEPercent:         file.Section("simulator").Key("ReferenceVEPercent").MustFloat64(95),
		DefaultPistonSpeedLimitMps: file.Section("simulator").Key("DefaultPistonSpeedLimitMps").MustFloat64(20),
		DefaultSizePenaltyPerLiter: file.Section("simulator").Key("DefaultSizePenaltyPercentPerLiter").MustFloat64(1.5),

		Addr: file.Section("server").Key("Addr").MustString(":9000"),
	}
}

func Cfg() Config {
	return simCfg
}
