package modes

type Mode string

const (
	ModeProduction  Mode = "production"
	ModeDevelopment Mode = "development"
)
