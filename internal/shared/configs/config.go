package configs

// Config holds all configuration for the application.
type Config struct {
	Slurm      SlurmConfig      `mapstructure:"slurm" validate:"required"`
	Processing ProcessingConfig `mapstructure:"processing" validate:"required"`
	Plotting   PlottingConfig   `mapstructure:"plotting" validate:"required"`
	Output     OutputConfig     `mapstructure:"output" validate:"required"`
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Log        LogConfig        `mapstructure:"log" validate:"required"`
}

// SlurmConfig controls how accounting records are pulled from the cluster.
type SlurmConfig struct {
	SacctCommand string `mapstructure:"sacct_command" validate:"required"`
	Timeout      int    `mapstructure:"timeout" validate:"required,min=1"` // seconds
}

// ProcessingConfig holds the units the pipeline assumes. Memory arrives
// already normalized at extraction; both values affect labeling only.
type ProcessingConfig struct {
	MemoryUnit string `mapstructure:"memory_unit" validate:"required"`
	TimeUnit   string `mapstructure:"time_unit" validate:"required"`
}

// PlottingConfig holds chart rendering options.
type PlottingConfig struct {
	FigureWidth  int    `mapstructure:"figure_width" validate:"required,min=1"`  // inches
	FigureHeight int    `mapstructure:"figure_height" validate:"required,min=1"` // inches, per metric group
	DPI          int    `mapstructure:"dpi" validate:"required,min=1"`
	Theme        string `mapstructure:"theme" validate:"required"` // HTML chart theme
	Grid         bool   `mapstructure:"grid"`
	Legend       bool   `mapstructure:"legend"`
}

// OutputConfig holds artifact output configuration.
type OutputConfig struct {
	Directory   string `mapstructure:"directory" validate:"required"`
	Transparent bool   `mapstructure:"transparent"`
}

// ServerConfig holds server-related configuration for serve mode.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required"`
}
