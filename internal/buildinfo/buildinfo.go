package buildinfo

const Graffiti = " ______ _____ _____ ___   _     \n" +
	"| ___ \\  ___|_   _/ _ \\ | |    \n" +
	"| |_/ / |__   | |/ /_\\ \\| |    \n" +
	"|  __/|  __|  | ||  _  || |    \n" +
	"| |   | |___  | || | | || |____\n" +
	"\\_|   \\____/  \\_/\\_| |_/\\_____/\n\n"

var (
	BuildTag string = "v0.0.0"
	Name     string = "PETAL"
	Time     string = ""
)

type buildinfo struct{}

func (buildinfo) Tag() string {
	return BuildTag
}

func (buildinfo) Name() string {
	return Name
}

func (buildinfo) Time() string {
	return Time
}

var Info buildinfo
