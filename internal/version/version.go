package version

var (
	AppName     = "house-maid"
	AppFullName = "The Maid • Household System"
	AppVersion  = "dev"
)
