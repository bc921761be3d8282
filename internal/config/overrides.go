package config

// Overrides carries command-line values that win over the file. Zero values
// mean "not set".
type Overrides struct {
	ModelPath      string
	Debug          bool
	LogFile        string
	FrameRate      float64
	CameraDistance float64
	Axis           string
	Frames         int
	OutDir         string
}

// Apply copies every set override into the config.
func (c *Config) Apply(o Overrides) {
	if o.ModelPath != "" {
		c.Model.Path = o.ModelPath
	}
	if o.Debug {
		c.Logging.Level = "debug"
	}
	if o.LogFile != "" {
		c.Logging.LogFile = o.LogFile
	}
	if o.FrameRate > 0 {
		c.Render.FrameRate = o.FrameRate
	}
	if o.CameraDistance != 0 {
		c.Render.CameraDistance = o.CameraDistance
	}
	if o.Axis != "" {
		c.Render.Axis = o.Axis
	}
	if o.Frames > 0 {
		c.Snapshot.Frames = o.Frames
	}
	if o.OutDir != "" {
		c.Snapshot.OutDir = o.OutDir
	}
}
