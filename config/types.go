package config

// TimetableConfig names the on-disk timetable directory and the date a
// query falls back to when it omits one.
type TimetableConfig struct {
	Directory   string `yaml:"directory" validate:"required"`
	DefaultDate string `yaml:"defaultDate" validate:"omitempty"`
}

// QueryConfig holds facade-level defaults applied after the router has
// already computed the full Pareto frontier.
type QueryConfig struct {
	MaxChanges int `yaml:"maxChanges" validate:"gte=0"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Timetable TimetableConfig `yaml:"timetable" validate:"required"`
	Query     QueryConfig     `yaml:"query"`
}
