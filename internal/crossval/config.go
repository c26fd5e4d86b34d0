package crossval

type Config struct {
	Folds int `envconfig:"PETAL_FOLDS" default:"5"`
}
