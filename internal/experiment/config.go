package experiment

type Config struct {
	Path string `envconfig:"PETAL_EXPERIMENTS"`
}
