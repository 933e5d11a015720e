package version

const AppName = "texty"

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

func GetVersion() string {
	return Version
}

func GetFullVersion() string {
	return AppName + " " + Version + " (" + Commit + ") built at " + BuildTime
}
