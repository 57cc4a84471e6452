package types

// CLIArgs represents the command-line arguments shared across commands.
type CLIArgs struct {
	ConfigFile string
	APIBaseURL string
	DataDir    string
	Offline    bool
	ReportName string
	ReportType []string
	Dir        string
	ChatWidth  int
}
