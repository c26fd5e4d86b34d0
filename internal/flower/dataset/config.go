package dataset

type Config struct {
	Path      string `envconfig:"PETAL_DATASET" default:"iris.csv"`
	Normalize bool   `envconfig:"PETAL_NORMALIZE" default:"true"`
}
