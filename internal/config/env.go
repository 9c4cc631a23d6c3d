package config

import "rsrsi-chart/internal/utils"

// Environment overrides, applied after the YAML file
const (
	EnvMode     = "RSCHART_MODE"
	EnvBackend  = "RSCHART_BACKEND"
	EnvTitle    = "RSCHART_TITLE"
	EnvOutput   = "RSCHART_OUTPUT"
	EnvAddr     = "RSCHART_ADDR"
	EnvLogLevel = "RSCHART_LOG_LEVEL"
	EnvWidth    = "RSCHART_WIDTH"
	EnvHeight   = "RSCHART_HEIGHT"
)

func (c *Config) applyEnv() {
	utils.EnvString(EnvMode, &c.Chart.Mode)
	utils.EnvString(EnvTitle, &c.Chart.Title)
	utils.EnvString(EnvBackend, &c.Render.Backend)
	utils.EnvString(EnvOutput, &c.Render.Output)
	utils.EnvInt(EnvWidth, &c.Render.Width)
	utils.EnvInt(EnvHeight, &c.Render.Height)
	utils.EnvString(EnvAddr, &c.Viewer.Addr)
	utils.EnvString(EnvLogLevel, &c.Log.Level)
}
